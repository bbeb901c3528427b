package puzzle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Sumatoshi-tech/aoc/pkg/input"
)

const (
	spanSolve = "puzzle.solve"

	attrDay     = "puzzle.day"
	attrTitle   = "puzzle.title"
	attrRecords = "puzzle.records"
)

// Solve outcome labels passed to a Recorder.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Source provides the input lines of a day.
type Source interface {
	Lines(day int, mode input.Mode) ([]string, error)
}

// Recorder receives one observation per attempted day.
type Recorder interface {
	RecordSolve(ctx context.Context, day int, status string, records int, elapsed time.Duration)
}

// Runner loads input for each solver, solves it and collects results.
type Runner struct {
	source   Source
	logger   *slog.Logger
	tracer   trace.Tracer
	recorder Recorder
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = logger }
}

// WithTracer sets the tracer. The default is a no-op tracer.
func WithTracer(tracer trace.Tracer) RunnerOption {
	return func(r *Runner) { r.tracer = tracer }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(recorder Recorder) RunnerOption {
	return func(r *Runner) { r.recorder = recorder }
}

// NewRunner creates a runner reading input from source.
func NewRunner(source Source, opts ...RunnerOption) *Runner {
	r := &Runner{
		source: source,
		logger: slog.New(slog.DiscardHandler),
		tracer: nooptrace.NewTracerProvider().Tracer(""),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run solves every solver in order. The first failure aborts the run.
func (r *Runner) Run(ctx context.Context, solvers []Solver) ([]Result, error) {
	results := make([]Result, 0, len(solvers))

	for _, solver := range solvers {
		err := ctx.Err()
		if err != nil {
			return nil, fmt.Errorf("run cancelled: %w", err)
		}

		result, err := r.RunOne(ctx, solver)
		if err != nil {
			return nil, err
		}

		results = append(results, result)
	}

	return results, nil
}

// RunOne loads input for a single solver and solves it.
func (r *Runner) RunOne(ctx context.Context, solver Solver) (Result, error) {
	desc := solver.Descriptor()

	ctx, span := r.tracer.Start(ctx, spanSolve, trace.WithAttributes(
		attribute.Int(attrDay, desc.Day),
		attribute.String(attrTitle, desc.Title),
	))
	defer span.End()

	start := time.Now()

	lines, err := r.source.Lines(desc.Day, desc.Input)
	if err != nil {
		return Result{}, r.fail(ctx, span, desc, start, fmt.Errorf("day %02d: load input: %w", desc.Day, err))
	}

	r.logger.DebugContext(ctx, "solving", "day", desc.Day, "lines", len(lines))

	solution, err := solver.Solve(ctx, lines)
	if err != nil {
		return Result{}, r.fail(ctx, span, desc, start, fmt.Errorf("day %02d: %w", desc.Day, err))
	}

	elapsed := time.Since(start)

	span.SetAttributes(attribute.Int(attrRecords, solution.Records))

	if r.recorder != nil {
		r.recorder.RecordSolve(ctx, desc.Day, StatusOK, solution.Records, elapsed)
	}

	r.logger.DebugContext(ctx, "solved", "day", desc.Day, "records", solution.Records, "elapsed", elapsed)

	return Result{
		Day:     desc.Day,
		Title:   desc.Title,
		Answers: solution.Answers,
		Records: solution.Records,
		Elapsed: elapsed,
	}, nil
}

func (r *Runner) fail(ctx context.Context, span trace.Span, desc Descriptor, start time.Time, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	if r.recorder != nil {
		r.recorder.RecordSolve(ctx, desc.Day, StatusError, 0, time.Since(start))
	}

	r.logger.ErrorContext(ctx, "solve failed", "day", desc.Day, "error", err)

	return err
}
