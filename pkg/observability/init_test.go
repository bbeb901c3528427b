package observability_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/aoc/pkg/observability"
	"github.com/Sumatoshi-tech/aoc/pkg/puzzle"
)

func TestInit_NoopWithoutExporters(t *testing.T) {
	t.Parallel()

	cfg := observability.DefaultConfig()
	cfg.LogOutput = &bytes.Buffer{}

	providers, err := observability.Init(context.Background(), cfg)
	require.NoError(t, err)

	require.NotNil(t, providers.Tracer)
	require.NotNil(t, providers.Meter)
	require.NotNil(t, providers.Logger)

	_, span := providers.Tracer.Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, providers.Shutdown(context.Background()))
}

func TestInit_WritesMetricsTextfile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "aoc.prom")

	cfg := observability.DefaultConfig()
	cfg.ServiceVersion = "test"
	cfg.MetricsTextfile = path
	cfg.LogOutput = &bytes.Buffer{}

	providers, err := observability.Init(context.Background(), cfg)
	require.NoError(t, err)

	sm, err := observability.NewSolveMetrics(providers.Meter)
	require.NoError(t, err)

	sm.RecordSolve(context.Background(), 1, puzzle.StatusOK, testRecords, time.Millisecond)

	require.NoError(t, providers.Shutdown(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), "aoc_solves")
	assert.Contains(t, string(data), "aoc_records_parsed")
	assert.Contains(t, string(data), "aoc_solve_duration_seconds")
}

func TestParseOTLPHeaders(t *testing.T) {
	t.Parallel()

	assert.Nil(t, observability.ParseOTLPHeaders(""))
	assert.Nil(t, observability.ParseOTLPHeaders("garbage"))
	assert.Equal(t,
		map[string]string{"api-key": "secret", "tenant": "aoc"},
		observability.ParseOTLPHeaders(" api-key = secret ,tenant=aoc"),
	)
}
