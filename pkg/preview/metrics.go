package preview

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the preview server's Prometheus instruments.
type metrics struct {
	renders        prometheus.Counter
	renderErrors   prometheus.Counter
	renderDuration prometheus.Histogram
	reloadClients  prometheus.Gauge
	reloadsSent    prometheus.Counter
}

// newMetrics registers the preview metrics with the given registerer,
// defaulting to the process-wide registerer.
func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &metrics{
		renders: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "markup",
			Subsystem: "preview",
			Name:      "renders_total",
			Help:      "Total number of manifest renders served.",
		}),
		renderErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "markup",
			Subsystem: "preview",
			Name:      "render_errors_total",
			Help:      "Total number of failed manifest renders.",
		}),
		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "markup",
			Subsystem: "preview",
			Name:      "render_duration_seconds",
			Help:      "Time spent loading, building, and rendering the manifest.",
			Buckets:   prometheus.DefBuckets,
		}),
		reloadClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "markup",
			Subsystem: "preview",
			Name:      "livereload_clients",
			Help:      "Number of connected live-reload websocket clients.",
		}),
		reloadsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "markup",
			Subsystem: "preview",
			Name:      "livereload_messages_total",
			Help:      "Total number of reload notifications broadcast.",
		}),
	}
}
