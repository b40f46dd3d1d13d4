package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"hops.csv"}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.NotNil(t, cfg)
	assert.Equal(t, []string{"hops.csv"}, cfg.Inputs)
	assert.Equal(t, "canonical", cfg.Layout)
	assert.Equal(t, "auto", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Grouped)
	assert.False(t, cfg.NoPrune)
	assert.Zero(t, cfg.HealthcheckPort)
	assert.Empty(t, out.String())
}

func TestParse_AllFlags(t *testing.T) {
	args := []string{
		"--layout", "PIPE",
		"--layout-file", "layout.hcl",
		"--delimiter", ";",
		"--skip-header",
		"--grouped",
		"--no-prune",
		"--summary", "out.yaml",
		"--healthcheck-port", "9090",
		"--log-format", "json",
		"--log-level", "debug",
		"a.psv", "data/**/*.psv", "-",
	}

	cfg, shouldExit, err := Parse(args, &bytes.Buffer{})

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, []string{"a.psv", "data/**/*.psv", "-"}, cfg.Inputs)
	assert.Equal(t, "pipe", cfg.Layout)
	assert.Equal(t, "layout.hcl", cfg.LayoutFile)
	assert.Equal(t, ";", cfg.Delimiter)
	assert.True(t, cfg.SkipHeader)
	assert.True(t, cfg.Grouped)
	assert.True(t, cfg.NoPrune)
	assert.Equal(t, "out.yaml", cfg.SummaryPath)
	assert.Equal(t, 9090, cfg.HealthcheckPort)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_HelpExitsCleanly(t *testing.T) {
	for _, flag := range []string{"-h", "--help"} {
		t.Run(flag, func(t *testing.T) {
			out := &bytes.Buffer{}

			cfg, shouldExit, err := Parse([]string{flag}, out)

			require.NoError(t, err)
			require.True(t, shouldExit)
			require.Nil(t, cfg)
			assert.Contains(t, out.String(), "Usage:")
			assert.Contains(t, out.String(), "--no-prune")
		})
	}
}

func TestParse_NoInputPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unknown flag", []string{"--bogus", "x"}, "unknown flag: --bogus"},
		{"bad layout", []string{"--layout", "xml", "x"}, "invalid Layout"},
		{"bad log format", []string{"--log-format", "yaml", "x"}, "invalid LogFormat"},
		{"bad log level", []string{"--log-level", "loud", "x"}, "invalid LogLevel"},
		{"bad port", []string{"--healthcheck-port", "70000", "x"}, "HealthcheckPort"},
		{"non numeric port", []string{"--healthcheck-port", "abc", "x"}, "invalid argument"},
		{"empty input", []string{""}, "must not contain empty values"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			require.Error(t, err)
			assert.False(t, shouldExit)
			assert.Nil(t, cfg)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
