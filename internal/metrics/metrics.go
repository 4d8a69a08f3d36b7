// Package metrics defines the Prometheus collectors exported by the estimator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "suilipse"

// Metrics holds the estimator collectors.
type Metrics struct {
	// Estimates counts estimate requests by operation and outcome
	// (ok, invalid, not_found, error).
	Estimates *prometheus.CounterVec

	// PoolReads counts pool snapshot lookups by source (cache, rpc).
	PoolReads *prometheus.CounterVec

	// RPCLatency observes sui_getObject round trips.
	RPCLatency prometheus.Histogram
}

// New creates the collectors and registers them with reg. A nil reg leaves
// them unregistered, which is what tests want.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Estimates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "estimates_total",
			Help:      "Estimate requests by operation and outcome.",
		}, []string{"op", "outcome"}),
		PoolReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pool_reads_total",
			Help:      "Pool snapshot lookups by source.",
		}, []string{"source"}),
		RPCLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_latency_seconds",
			Help:      "Latency of sui_getObject calls.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Estimates, m.PoolReads, m.RPCLatency)
	}
	return m
}
