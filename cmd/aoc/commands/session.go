package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/aoc/pkg/alg/ring"
	"github.com/Sumatoshi-tech/aoc/pkg/config"
	"github.com/Sumatoshi-tech/aoc/pkg/input"
	"github.com/Sumatoshi-tech/aoc/pkg/observability"
	"github.com/Sumatoshi-tech/aoc/pkg/puzzle"
	"github.com/Sumatoshi-tech/aoc/pkg/report"
	"github.com/Sumatoshi-tech/aoc/pkg/solvers/cafeteria"
	"github.com/Sumatoshi-tech/aoc/pkg/solvers/dial"
	"github.com/Sumatoshi-tech/aoc/pkg/solvers/giftshop"
	"github.com/Sumatoshi-tech/aoc/pkg/solvers/lobby"
	"github.com/Sumatoshi-tech/aoc/pkg/solvers/printing"
	"github.com/Sumatoshi-tech/aoc/pkg/solvers/worksheet"
	"github.com/Sumatoshi-tech/aoc/pkg/version"
)

// envOTLPHeaders is the standard OTel env var for exporter headers.
const envOTLPHeaders = "OTEL_EXPORTER_OTLP_HEADERS"

// NewRegistry registers every solver, configured from cfg.
func NewRegistry(cfg *config.Config) (*puzzle.Registry, error) {
	return puzzle.NewRegistry(
		dial.New(dial.Options{Size: ring.Size(cfg.Ring.Size), Start: ring.Position(cfg.Ring.Start)}),
		giftshop.New(),
		lobby.New(),
		printing.New(),
		cafeteria.New(),
		worksheet.New(),
	)
}

// session holds everything a command needs to solve and report.
type session struct {
	cfg       *config.Config
	providers observability.Providers
	registry  *puzzle.Registry
	runner    *puzzle.Runner
	renderer  *report.Renderer
}

func openSession(ctx context.Context, cmd *cobra.Command, opts *Options, mode observability.AppMode) (*session, error) {
	cfg, err := opts.resolve(cmd)
	if err != nil {
		return nil, err
	}

	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	registry, err := NewRegistry(cfg)
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}

	obsCfg, err := observabilityConfig(cfg, mode)
	if err != nil {
		return nil, err
	}

	obsCfg.LogOutput = cmd.ErrOrStderr()

	providers, err := observability.Init(ctx, obsCfg)
	if err != nil {
		return nil, fmt.Errorf("init observability: %w", err)
	}

	metrics, err := observability.NewSolveMetrics(providers.Meter)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("init metrics: %w", err), providers.Shutdown(ctx))
	}

	runner := puzzle.NewRunner(
		input.Dir{Path: cfg.Input.Dir, Example: cfg.Input.Example},
		puzzle.WithLogger(providers.Logger),
		puzzle.WithTracer(providers.Tracer),
		puzzle.WithRecorder(metrics),
	)

	return &session{
		cfg:       cfg,
		providers: providers,
		registry:  registry,
		runner:    runner,
		renderer:  report.NewRenderer(format, cfg.Output.NoColor),
	}, nil
}

func observabilityConfig(cfg *config.Config, mode observability.AppMode) (observability.Config, error) {
	level, err := observability.ParseLogLevel(cfg.Logging.Level)
	if err != nil {
		return observability.Config{}, err
	}

	obsCfg := observability.DefaultConfig()
	obsCfg.ServiceVersion = version.Version
	obsCfg.Mode = mode
	obsCfg.OTLPEndpoint = cfg.Telemetry.OTLPEndpoint
	obsCfg.OTLPInsecure = cfg.Telemetry.OTLPInsecure
	obsCfg.OTLPHeaders = observability.ParseOTLPHeaders(os.Getenv(envOTLPHeaders))
	obsCfg.MetricsTextfile = cfg.Telemetry.MetricsTextfile
	obsCfg.LogLevel = level
	obsCfg.LogJSON = cfg.Logging.JSON

	return obsCfg, nil
}

// solve runs the selected days.
func (s *session) solve(ctx context.Context, days []int) ([]puzzle.Result, error) {
	solvers, err := s.registry.Select(days)
	if err != nil {
		return nil, err
	}

	ctx, span := s.providers.Tracer.Start(ctx, "aoc.command")
	defer span.End()

	return s.runner.Run(ctx, solvers)
}

// close flushes telemetry. The returned error joins err with any shutdown
// failure.
func (s *session) close(ctx context.Context, err error) error {
	shutdownErr := s.providers.Shutdown(ctx)
	if shutdownErr != nil {
		shutdownErr = fmt.Errorf("shutdown observability: %w", shutdownErr)
	}

	return errors.Join(err, shutdownErr)
}
