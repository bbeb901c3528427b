package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// textfileSink collects OTel instruments into a private Prometheus registry
// and writes them in the node_exporter textfile format.
type textfileSink struct {
	path     string
	registry *prometheus.Registry
	reader   sdkmetric.Reader
}

// newTextfileSink creates the exporter that feeds the registry. Each sink has
// its own registry so repeated calls do not conflict.
func newTextfileSink(path string) (*textfileSink, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(
		promexporter.WithRegisterer(registry),
	)
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}

	return &textfileSink{path: path, registry: registry, reader: exporter}, nil
}

// write gathers the registry into the textfile. It must run before the meter
// provider shuts down.
func (s *textfileSink) write() error {
	err := prometheus.WriteToTextfile(s.path, s.registry)
	if err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}

	return nil
}
