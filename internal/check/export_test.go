package check

import (
	"github.com/iyhunko/getenv/envmap"
	"github.com/iyhunko/getenv/internal/metrics"
)

// NewCheckerWith creates a Checker over a fixed "KEY=value" environment.
func NewCheckerWith(environ []string, recorder *metrics.Recorder) *Checker {
	src := envmap.ParseEnviron(environ)
	return &Checker{
		lookup: func(key string) (string, bool) {
			v, ok := src[key].(string)
			return v, ok
		},
		environ:  func() []string { return environ },
		recorder: recorder,
	}
}
