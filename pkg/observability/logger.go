package observability

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

const (
	attrTraceID = "trace_id"
	attrSpanID  = "span_id"
	attrService = "service"
	attrVersion = "version"
	attrMode    = "mode"
)

// TracingHandler is an [slog.Handler] that adds the active trace_id and
// span_id to every record. Service attributes are attached once at
// construction so they stay at the top level when groups are used.
type TracingHandler struct {
	inner slog.Handler
}

// NewTracingHandler wraps inner with trace context and service metadata.
func NewTracingHandler(inner slog.Handler, service, version string, appMode AppMode) *TracingHandler {
	attrs := []slog.Attr{
		slog.String(attrService, service),
		slog.String(attrMode, string(appMode)),
	}

	if version != "" {
		attrs = append(attrs, slog.String(attrVersion, version))
	}

	return &TracingHandler{
		inner: inner.WithAttrs(attrs),
	}
}

// Enabled delegates to the inner handler.
func (th *TracingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return th.inner.Enabled(ctx, level)
}

// Handle adds trace context attributes from the span context, then delegates.
func (th *TracingHandler) Handle(ctx context.Context, record slog.Record) error {
	sc := trace.SpanContextFromContext(ctx)
	if sc.IsValid() {
		record.AddAttrs(
			slog.String(attrTraceID, sc.TraceID().String()),
			slog.String(attrSpanID, sc.SpanID().String()),
		)
	}

	err := th.inner.Handle(ctx, record)
	if err != nil {
		return fmt.Errorf("tracing handler: %w", err)
	}

	return nil
}

// WithAttrs implements slog.Handler.
func (th *TracingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TracingHandler{inner: th.inner.WithAttrs(attrs)}
}

// WithGroup implements slog.Handler.
func (th *TracingHandler) WithGroup(name string) slog.Handler {
	return &TracingHandler{inner: th.inner.WithGroup(name)}
}

// NewLogger builds the process logger described by cfg.
func NewLogger(cfg Config) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: cfg.LogLevel}

	var inner slog.Handler
	if cfg.LogJSON {
		inner = slog.NewJSONHandler(cfg.logOutput(), handlerOpts)
	} else {
		inner = slog.NewTextHandler(cfg.logOutput(), handlerOpts)
	}

	return slog.New(NewTracingHandler(inner, cfg.ServiceName, cfg.ServiceVersion, cfg.Mode))
}
