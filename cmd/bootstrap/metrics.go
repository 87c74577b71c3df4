package bootstrap

import (
	"lucky-draw/internal/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetricsRegistry,
	),
)

// NewMetricsRegistry returns nil when metrics are disabled; the router skips
// the middleware and the /metrics route in that case.
func NewMetricsRegistry(cfg config.Config) *prometheus.Registry {
	if !cfg.Metrics.Enabled {
		return nil
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
