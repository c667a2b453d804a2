package bootstrap

import (
	"net/http"

	"courtside/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

// one registry per app so several apps (e2e) can share a process
var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		fx.Annotate(
			func(reg *prometheus.Registry) *metrics.Service { return metrics.NewService(reg) },
			fx.As(new(metrics.Metrics)),
		),
		fx.Annotate(
			func(reg *prometheus.Registry) http.Handler { return metrics.NewMetricsHandler(reg) },
			fx.ResultTags(`name:"metrics"`),
		),
	),
)

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
