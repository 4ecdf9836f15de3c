package check

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/iyhunko/getenv/envmap"
	"github.com/iyhunko/getenv/internal/metrics"
)

// Mode selects the validator applied to the requested keys.
type Mode string

const (
	ModeStatic  Mode = "static"
	ModePublic  Mode = "public"
	ModeDynamic Mode = "dynamic"
)

// ErrUnknownMode is returned for a mode other than static, public or dynamic.
var ErrUnknownMode = errors.New("unknown validation mode")

// ParseMode converts s into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeStatic, ModePublic, ModeDynamic:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Request describes one validation run.
type Request struct {
	Mode   Mode
	Keys   []string
	Prefix string
}

// Checker validates variables from the process environment.
type Checker struct {
	lookup   func(string) (string, bool)
	environ  func() []string
	recorder *metrics.Recorder
}

// NewChecker creates a Checker reading the real process environment.
// recorder may be nil.
func NewChecker(recorder *metrics.Recorder) *Checker {
	return &Checker{
		lookup:   os.LookupEnv,
		environ:  os.Environ,
		recorder: recorder,
	}
}

// Run validates req.Keys with the validator for req.Mode.
//
// Static and public modes look each key up individually, the same way a
// call site would name them; dynamic mode narrows the whole environment.
func (c *Checker) Run(req Request) (envmap.EnvMap, error) {
	var (
		env envmap.EnvMap
		err error
	)
	switch req.Mode {
	case ModeStatic:
		env, err = envmap.Static(envmap.Collect(c.lookup, req.Keys...))
	case ModePublic:
		prefix := req.Prefix
		if prefix == "" {
			prefix = envmap.PublicPrefix
		}
		env, err = envmap.Prefixed(prefix, envmap.Collect(c.lookup, req.Keys...))
	case ModeDynamic:
		env, err = envmap.Dynamic(envmap.ParseEnviron(c.environ()), req.Keys)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, req.Mode)
	}

	if c.recorder != nil {
		c.recorder.Observe(string(req.Mode), env, err)
	}

	if err != nil {
		attrs := []any{slog.String("mode", string(req.Mode)), slog.Any("err", err)}
		var verr *envmap.ValidationError
		if errors.As(err, &verr) {
			attrs = append(attrs, slog.String("key", verr.Key), slog.String("kind", verr.Kind.String()))
		}
		slog.Error("environment validation failed", attrs...)
		return nil, fmt.Errorf("validating %s environment: %w", req.Mode, err)
	}

	slog.Info("environment validated", slog.String("mode", string(req.Mode)), slog.Int("keys", len(env)))
	return env, nil
}
