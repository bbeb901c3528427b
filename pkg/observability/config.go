// Package observability provides OpenTelemetry tracing and metrics, a
// Prometheus textfile sink and structured logging for the aoc command.
package observability

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// AppMode identifies the command being executed.
type AppMode string

const (
	// ModeRun solves puzzles and prints answers.
	ModeRun AppMode = "run"
	// ModeCheck solves puzzles and compares them with expected answers.
	ModeCheck AppMode = "check"
	// ModeList lists registered puzzles.
	ModeList AppMode = "list"
)

const (
	// defaultServiceName is the default OTel service name.
	defaultServiceName = "aoc"

	// defaultShutdownTimeoutSec is the default shutdown timeout in seconds.
	defaultShutdownTimeoutSec = 5
)

// Config holds all observability configuration.
type Config struct {
	// ServiceName is the OTel resource service name.
	ServiceName string

	// ServiceVersion is the semantic version of the running binary.
	ServiceVersion string

	// Mode identifies which command was launched.
	Mode AppMode

	// OTLPEndpoint is the OTLP gRPC collector address (e.g. "localhost:4317").
	// Empty disables OTLP export.
	OTLPEndpoint string

	// OTLPHeaders are additional gRPC metadata headers for the OTLP exporter.
	OTLPHeaders map[string]string

	// OTLPInsecure disables TLS for the OTLP gRPC connection.
	OTLPInsecure bool

	// MetricsTextfile is the path of a Prometheus text-format file written on
	// shutdown. Empty disables it.
	MetricsTextfile string

	// LogLevel controls the minimum slog severity.
	LogLevel slog.Level

	// LogJSON enables JSON-formatted log output.
	LogJSON bool

	// LogOutput receives log records. Nil means stderr.
	LogOutput io.Writer

	// ShutdownTimeoutSec is the maximum seconds to wait for flush on shutdown.
	ShutdownTimeoutSec int
}

// DefaultConfig returns a Config for zero-config startup.
func DefaultConfig() Config {
	return Config{
		ServiceName:        defaultServiceName,
		Mode:               ModeRun,
		LogLevel:           slog.LevelInfo,
		ShutdownTimeoutSec: defaultShutdownTimeoutSec,
	}
}

func (c Config) logOutput() io.Writer {
	if c.LogOutput == nil {
		return os.Stderr
	}

	return c.LogOutput
}

// ParseLogLevel converts a level name such as "debug" or "WARN".
func ParseLogLevel(name string) (slog.Level, error) {
	var level slog.Level

	err := level.UnmarshalText([]byte(strings.TrimSpace(name)))
	if err != nil {
		return slog.LevelInfo, fmt.Errorf("parse log level: %w", err)
	}

	return level, nil
}
