package preview

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus metrics for the preview server.
type metrics struct {
	pagesRendered  prometheus.Counter
	renderDuration prometheus.Histogram
	reloadsSent    prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &metrics{
		pagesRendered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "aframe",
			Subsystem: "preview",
			Name:      "pages_rendered_total",
			Help:      "Total number of pages rendered.",
		}),
		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "aframe",
			Subsystem: "preview",
			Name:      "render_duration_seconds",
			Help:      "Time spent parsing and rendering the previewed file.",
			Buckets:   prometheus.DefBuckets,
		}),
		reloadsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "aframe",
			Subsystem: "preview",
			Name:      "reloads_sent_total",
			Help:      "Total number of reload notifications broadcast.",
		}),
	}
}
