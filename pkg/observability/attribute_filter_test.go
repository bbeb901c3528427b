package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Sumatoshi-tech/aoc/pkg/observability"
)

func TestAttributeFilter(t *testing.T) {
	t.Parallel()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(observability.NewAttributeFilter(sdktrace.NewSimpleSpanProcessor(exporter), nil)),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	_, span := tp.Tracer("test").Start(context.Background(), "puzzle.solve")
	span.SetAttributes(
		attribute.Int("puzzle.day", 5),
		attribute.String("error.type", "parse"),
		attribute.String("puzzle.input", "3-5"),
		attribute.String("host.name", "box"),
	)
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	attrs := make(map[string]attribute.Value)
	for _, kv := range spans[0].Attributes {
		attrs[string(kv.Key)] = kv.Value
	}

	assert.Equal(t, int64(5), attrs["puzzle.day"].AsInt64())
	assert.Equal(t, "parse", attrs["error.type"].AsString())
	assert.NotContains(t, attrs, "puzzle.input")
	assert.NotContains(t, attrs, "host.name")
}
