package config

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/iyhunko/getenv/envmap"
)

const (
	// DebugModeEnv is the environment variable for debug mode.
	DebugModeEnv = "DEBUG_MODE"

	// ModeEnv is the environment variable for the validation mode.
	ModeEnv = "ENVCHECK_MODE"

	// KeysEnv is the environment variable for the comma separated list of keys to check.
	KeysEnv = "ENVCHECK_KEYS"

	// PrefixEnv is the environment variable for the prefix required in public mode.
	PrefixEnv = "ENVCHECK_PREFIX"

	// MetricsFileEnv is the environment variable for the metrics textfile path.
	MetricsFileEnv = "ENVCHECK_METRICS_FILE"

	// DefaultMode is used when ModeEnv is unset.
	DefaultMode = "dynamic"
)

// Modes lists the accepted values of ModeEnv.
var Modes = []string{"static", "public", "dynamic"}

var (
	// ErrMissingConfig is returned when required configuration values are missing.
	ErrMissingConfig = errors.New("missing config data")

	// ErrInvalidConfig is returned when a configuration value is not allowed.
	ErrInvalidConfig = errors.New("invalid config data")
)

// Config represents the envcheck configuration.
type Config struct {
	DebugMode   bool
	Mode        string
	Keys        []string
	Prefix      string
	MetricsFile string
}

func allNonEmpty(keyValues map[string]string) error {
	for _, key := range slices.Sorted(maps.Keys(keyValues)) {
		if keyValues[key] == "" {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("error", "value is empty"))
			return fmt.Errorf("%w for key: %s", ErrMissingConfig, key)
		}
	}
	return nil
}

func oneOf(key, value string, allowed []string) error {
	if !slices.Contains(allowed, value) {
		slog.Error("configuration validation failed", slog.String("key", key), slog.String("value", value), slog.String("error", "value not allowed"))
		return fmt.Errorf("%w for key %s: %q is not one of %s", ErrInvalidConfig, key, value, strings.Join(allowed, ", "))
	}
	return nil
}

// Validate checks the configuration once flags and environment are merged.
func (c *Config) Validate() error {
	if err := oneOf(ModeEnv, c.Mode, Modes); err != nil {
		return fmt.Errorf("mode configuration invalid: %w", err)
	}

	if c.Mode == "public" {
		if err := allNonEmpty(map[string]string{PrefixEnv: c.Prefix}); err != nil {
			return fmt.Errorf("public mode configuration incomplete: %w", err)
		}
	}

	if len(c.Keys) == 0 {
		return fmt.Errorf("key configuration incomplete: %w for key: %s", ErrMissingConfig, KeysEnv)
	}
	return nil
}

func getEnvAsBool(name string, defaultValue bool) bool {
	if val, err := strconv.ParseBool(os.Getenv(name)); err == nil {
		return val
	}
	return defaultValue
}

// SplitKeys parses a comma separated key list, dropping blanks.
func SplitKeys(raw string) []string {
	var keys []string
	for _, key := range strings.Split(raw, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// defaults holds the value used for each variable when it is unset.
var defaults = map[string]string{
	ModeEnv:        DefaultMode,
	KeysEnv:        "",
	PrefixEnv:      envmap.PublicPrefix,
	MetricsFileEnv: "",
}

// LoadFromEnv loads configuration from environment variables. Unset
// variables fall back to defaults; call Validate once flags are applied.
func LoadFromEnv() (*Config, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (*Config, error) {
	src := envmap.Collect(lookup, slices.Sorted(maps.Keys(defaults))...)
	for key, value := range src {
		if value == nil {
			src[key] = defaults[key]
		}
	}
	env, err := envmap.Static(src)
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}

	conf := &Config{
		DebugMode:   getEnvAsBool(DebugModeEnv, false),
		Mode:        strings.ToLower(env[ModeEnv]),
		Keys:        SplitKeys(env[KeysEnv]),
		Prefix:      env[PrefixEnv],
		MetricsFile: env[MetricsFileEnv],
	}
	return conf, nil
}
