package envmap

import (
	"maps"
	"slices"
	"strings"
)

// PublicPrefix is the prefix a key must carry to be exposed to client bundles.
const PublicPrefix = "NEXT_PUBLIC_"

// Source is a raw key/value mapping. A nil value means the variable is unset.
// Only values whose dynamic type is string are accepted by the validators.
type Source map[string]any

// EnvMap is a validated mapping in which every value is a defined string.
type EnvMap map[string]string

// Source returns m as a Source, e.g. to validate it again.
func (m EnvMap) Source() Source {
	src := make(Source, len(m))
	for key, value := range m {
		src[key] = value
	}
	return src
}

// FromStrings converts a plain string map into a Source.
func FromStrings(values map[string]string) Source {
	return EnvMap(values).Source()
}

// Static checks that every value in src is a string and returns a new map
// with the same keys and whitespace-trimmed values.
func Static(src Source) (EnvMap, error) {
	env := make(EnvMap, len(src))
	for _, key := range sortedKeys(src) {
		value, ok := src[key].(string)
		if !ok {
			return nil, notString(key, src[key])
		}
		env[key] = strings.TrimSpace(value)
	}
	return env, nil
}

// Public is Static restricted to keys that begin with PublicPrefix.
func Public(src Source) (EnvMap, error) {
	return Prefixed(PublicPrefix, src)
}

// Prefixed is Static restricted to keys that begin with prefix. The prefix is
// checked before the value type, so a key with the wrong prefix is always
// reported as such.
func Prefixed(prefix string, src Source) (EnvMap, error) {
	env := make(EnvMap, len(src))
	for _, key := range sortedKeys(src) {
		if !strings.HasPrefix(key, prefix) {
			return nil, &ValidationError{Kind: KindMissingPrefix, Key: key, Prefix: prefix}
		}
		value, ok := src[key].(string)
		if !ok {
			return nil, notString(key, src[key])
		}
		env[key] = strings.TrimSpace(value)
	}
	return env, nil
}

// Dynamic returns the subset of src named by keys. Each requested key must be
// present in src with a string value. Values are returned as-is, not trimmed.
func Dynamic(src Source, keys []string) (EnvMap, error) {
	env := make(EnvMap, len(keys))
	for _, key := range keys {
		value, ok := src[key].(string)
		if !ok {
			return nil, &ValidationError{Kind: KindMissingOrNotString, Key: key, Value: src[key]}
		}
		env[key] = value
	}
	return env, nil
}

func notString(key string, value any) error {
	return &ValidationError{Kind: KindNotString, Key: key, Value: value}
}

// sortedKeys gives the validators a stable walk so the first reported key
// does not depend on map iteration order.
func sortedKeys(src Source) []string {
	return slices.Sorted(maps.Keys(src))
}
