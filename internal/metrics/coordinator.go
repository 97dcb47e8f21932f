package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	coordinatorBroadcastTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "coordinator",
		Name:      "broadcasts_total",
		Help:      "Count of transaction broadcasts.",
	}, []string{"tx_type", "status"})
	coordinatorBroadcastDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "coordinator",
		Name:      "broadcast_duration_seconds",
		Help:      "Duration of transaction broadcasts.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"tx_type", "status"})
	coordinatorTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "coordinator",
		Name:      "transitions_total",
		Help:      "Count of transaction status transitions.",
	}, []string{"tx_type", "from", "to"})
)

// Coordinator tracks the transaction lifecycle.
type Coordinator struct{}

// NewCoordinator constructs a Coordinator collector.
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// ObserveBroadcast records a broadcast outcome and duration.
func (m Coordinator) ObserveBroadcast(txType string, err error, started time.Time) {
	s := status(err)
	coordinatorBroadcastTotal.WithLabelValues(txType, s).Inc()
	coordinatorBroadcastDuration.WithLabelValues(txType, s).Observe(time.Since(started).Seconds())
}

// ObserveTransition counts a status transition.
func (m Coordinator) ObserveTransition(txType, from, to string) {
	coordinatorTransitionsTotal.WithLabelValues(txType, from, to).Inc()
}
