package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iyhunko/getenv/envmap"
	"github.com/iyhunko/getenv/internal/check"
	"github.com/iyhunko/getenv/internal/config"
	"github.com/iyhunko/getenv/internal/metrics"
)

func runEnvcheck(t *testing.T, conf *config.Config, args ...string) (string, string, error) {
	t.Helper()
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(conf, check.NewChecker, &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func defaultConfig() *config.Config {
	return &config.Config{Mode: config.DefaultMode, Prefix: envmap.PublicPrefix}
}

func TestEnvcheck_Dynamic(t *testing.T) {
	t.Setenv("ENVCHECK_TEST_B", "bravo")
	t.Setenv("ENVCHECK_TEST_A", "alpha")

	stdout, stderr, err := runEnvcheck(t, defaultConfig(), "ENVCHECK_TEST_B", "ENVCHECK_TEST_A")

	require.NoError(t, err)
	assert.Equal(t, "ENVCHECK_TEST_A\nENVCHECK_TEST_B\n", stdout)
	assert.Contains(t, stderr, "environment validated")
	assert.NotContains(t, stdout, "alpha")
}

func TestEnvcheck_MissingKey(t *testing.T) {
	_, stderr, err := runEnvcheck(t, defaultConfig(), "ENVCHECK_TEST_DEFINITELY_UNSET")

	require.ErrorIs(t, err, envmap.ErrMissingOrNotString)
	assert.Contains(t, stderr, "environment validation failed")
}

func TestEnvcheck_PublicRejectsServerKey(t *testing.T) {
	t.Setenv("ENVCHECK_TEST_SECRET", "value")

	_, _, err := runEnvcheck(t, defaultConfig(), "--mode", "public", "ENVCHECK_TEST_SECRET")

	assert.ErrorIs(t, err, envmap.ErrMissingPrefix)
}

func TestEnvcheck_KeysFromConfig(t *testing.T) {
	t.Setenv("NEXT_PUBLIC_ENVCHECK_TEST", " value ")
	conf := defaultConfig()
	conf.Mode = "public"
	conf.Keys = []string{"NEXT_PUBLIC_ENVCHECK_TEST"}

	stdout, _, err := runEnvcheck(t, conf)

	require.NoError(t, err)
	assert.Equal(t, "NEXT_PUBLIC_ENVCHECK_TEST\n", stdout)
}

func TestEnvcheck_NoKeys(t *testing.T) {
	_, _, err := runEnvcheck(t, defaultConfig())

	assert.ErrorIs(t, err, config.ErrMissingConfig)
}

func TestEnvcheck_UnknownMode(t *testing.T) {
	_, _, err := runEnvcheck(t, defaultConfig(), "--mode", "strict", "PATH")

	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestEnvcheck_WritesMetricsFile(t *testing.T) {
	t.Setenv("ENVCHECK_TEST_A", "alpha")
	path := filepath.Join(t.TempDir(), "envcheck.prom")

	_, _, err := runEnvcheck(t, defaultConfig(), "--mode", "static", "--metrics-file", path, "ENVCHECK_TEST_A", "ENVCHECK_TEST_UNSET")

	require.ErrorIs(t, err, envmap.ErrNotString)
	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Contains(t, string(content), `envcheck_validations_total{mode="static",result="not_string"} 1`)
}

func TestEnvcheck_UsesCheckerFactory(t *testing.T) {
	var got *metrics.Recorder
	factory := func(r *metrics.Recorder) *check.Checker {
		got = r
		return check.NewChecker(r)
	}
	t.Setenv("ENVCHECK_TEST_A", "alpha")

	var stdout, stderr bytes.Buffer
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })
	cmd := newRootCmd(defaultConfig(), factory, &stdout, &stderr)
	cmd.SetArgs([]string{"ENVCHECK_TEST_A"})

	require.NoError(t, cmd.Execute())
	assert.NotNil(t, got)
}
