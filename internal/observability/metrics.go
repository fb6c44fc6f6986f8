// Package observability exposes prometheus metrics for the sync pipeline.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "post_publisher"

type Metrics struct {
	JobsEnqueued  prometheus.Counter
	JobsSucceeded prometheus.Counter
	JobsFailed    prometheus.Counter
	JobsDropped   prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		JobsEnqueued: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_jobs_enqueued_total",
			Help:      "Sync jobs handed to the task runner.",
		}),
		JobsSucceeded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_jobs_succeeded_total",
			Help:      "Sync jobs that committed successfully.",
		}),
		JobsFailed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_jobs_failed_total",
			Help:      "Sync jobs that ended in an error status.",
		}),
		JobsDropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_jobs_dropped_total",
			Help:      "Jobs dropped as stale or suppressed by the per-post lock.",
		}),
	}
}

// Handler serves the metrics endpoint for the given registry.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
