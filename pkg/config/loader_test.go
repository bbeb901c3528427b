package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/aoc/pkg/config"
)

const (
	testRingSize  = 360
	testRingStart = 90
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig_EmptyFile_UsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultInputDir, cfg.Input.Dir)
	assert.Equal(t, config.DefaultInputExample, cfg.Input.Example)
	assert.Equal(t, int64(config.DefaultRingSize), cfg.Ring.Size)
	assert.Equal(t, int64(config.DefaultRingStart), cfg.Ring.Start)
	assert.Equal(t, config.DefaultOutputFormat, cfg.Output.Format)
	assert.Equal(t, config.DefaultLogLevel, cfg.Logging.Level)
	assert.Empty(t, cfg.Telemetry.OTLPEndpoint)
	assert.Empty(t, cfg.Telemetry.MetricsTextfile)
}

func TestLoadConfig_ValidFile_Unmarshals(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `input:
  dir: inputs
  example: true
ring:
  size: 360
  start: 90
output:
  format: JSON
  no_color: true
logging:
  level: debug
  json: true
telemetry:
  otlp_endpoint: localhost:4317
  otlp_insecure: true
  metrics_textfile: /tmp/aoc.prom
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "inputs", cfg.Input.Dir)
	assert.True(t, cfg.Input.Example)
	assert.Equal(t, int64(testRingSize), cfg.Ring.Size)
	assert.Equal(t, int64(testRingStart), cfg.Ring.Start)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Output.NoColor)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.JSON)
	assert.Equal(t, "localhost:4317", cfg.Telemetry.OTLPEndpoint)
	assert.True(t, cfg.Telemetry.OTLPInsecure)
	assert.Equal(t, "/tmp/aoc.prom", cfg.Telemetry.MetricsTextfile)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("AOC_RING_START", "7")
	t.Setenv("AOC_INPUT_DIR", "/tmp/env-inputs")

	cfg, err := config.LoadConfig(writeConfig(t, "ring:\n  start: 3\n"))
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Ring.Start)
	assert.Equal(t, "/tmp/env-inputs", cfg.Input.Dir)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		content string
		want    error
	}{
		{"ring:\n  size: 0\n", config.ErrInvalidRingSize},
		{"ring:\n  start: 100\n", config.ErrInvalidRingStart},
		{"ring:\n  start: -1\n", config.ErrInvalidRingStart},
		{"output:\n  format: xml\n", config.ErrInvalidFormat},
		{"logging:\n  level: loud\n", config.ErrInvalidLogLevel},
	}

	for _, tc := range cases {
		_, err := config.LoadConfig(writeConfig(t, tc.content))
		require.ErrorIs(t, err, tc.want, tc.content)
	}
}
