package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricSolvesTotal   = "aoc.solves.total"
	metricSolveDuration = "aoc.solve.duration.seconds"
	metricErrorsTotal   = "aoc.solve.errors.total"
	metricRecordsTotal  = "aoc.records.parsed.total"

	attrDay    = "day"
	attrStatus = "status"

	statusError = "error"
)

// durationBucketBoundaries covers 100µs to 10s.
var durationBucketBoundaries = []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10}

// SolveMetrics holds the OTel instruments recorded once per solved day.
type SolveMetrics struct {
	solvesTotal   metric.Int64Counter
	solveDuration metric.Float64Histogram
	errorsTotal   metric.Int64Counter
	recordsTotal  metric.Int64Counter
}

// NewSolveMetrics creates the solve instruments from the given meter.
func NewSolveMetrics(mt metric.Meter) (*SolveMetrics, error) {
	solves, err := mt.Int64Counter(metricSolvesTotal,
		metric.WithDescription("Total number of attempted puzzle solves"),
		metric.WithUnit("{solve}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricSolvesTotal, err)
	}

	duration, err := mt.Float64Histogram(metricSolveDuration,
		metric.WithDescription("Time spent loading and solving one day"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricSolveDuration, err)
	}

	errs, err := mt.Int64Counter(metricErrorsTotal,
		metric.WithDescription("Total number of failed puzzle solves"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricErrorsTotal, err)
	}

	records, err := mt.Int64Counter(metricRecordsTotal,
		metric.WithDescription("Total number of parsed input records"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricRecordsTotal, err)
	}

	return &SolveMetrics{
		solvesTotal:   solves,
		solveDuration: duration,
		errorsTotal:   errs,
		recordsTotal:  records,
	}, nil
}

// RecordSolve records one attempted day. It satisfies puzzle.Recorder.
func (sm *SolveMetrics) RecordSolve(ctx context.Context, day int, status string, records int, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.Int(attrDay, day),
		attribute.String(attrStatus, status),
	)

	sm.solvesTotal.Add(ctx, 1, attrs)
	sm.solveDuration.Record(ctx, elapsed.Seconds(), attrs)

	dayOnly := metric.WithAttributes(attribute.Int(attrDay, day))

	if status == statusError {
		sm.errorsTotal.Add(ctx, 1, dayOnly)

		return
	}

	sm.recordsTotal.Add(ctx, int64(records), dayOnly)
}
