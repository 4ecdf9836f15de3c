package envmap

import (
	"os"
	"strings"
)

// Lookup reads key from the process environment. It returns nil when the
// variable is unset, so the result can be placed straight into a Source.
func Lookup(key string) any {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return nil
}

// Collect builds a Source holding keys as reported by lookup. Keys for which
// lookup reports false are present with a nil value.
func Collect(lookup func(string) (string, bool), keys ...string) Source {
	src := make(Source, len(keys))
	for _, key := range keys {
		if value, ok := lookup(key); ok {
			src[key] = value
		} else {
			src[key] = nil
		}
	}
	return src
}

// Environ returns the whole process environment as a Source.
func Environ() Source {
	return ParseEnviron(os.Environ())
}

// ParseEnviron converts "KEY=value" pairs into a Source. Entries without '='
// are skipped; a later duplicate key wins.
func ParseEnviron(environ []string) Source {
	src := make(Source, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		src[key] = value
	}
	return src
}
