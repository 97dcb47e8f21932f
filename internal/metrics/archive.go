package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	archiveFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "archive",
		Name:      "flush_total",
		Help:      "Count of archive batch flushes.",
	}, []string{"kind", "status"})
	archiveFlushSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "archive",
		Name:      "flush_size",
		Help:      "Number of rows per archive flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"kind"})
	archiveDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "archive",
		Name:      "dropped_total",
		Help:      "Count of rows dropped because the archive queue was full.",
	}, []string{"kind"})
)

// Archive tracks the analytics archive writer.
type Archive struct{}

// NewArchive constructs an Archive collector.
func NewArchive() *Archive {
	return &Archive{}
}

// ObserveFlush records a flush of size rows.
func (m Archive) ObserveFlush(kind string, size int, err error) {
	archiveFlushTotal.WithLabelValues(kind, status(err)).Inc()
	archiveFlushSize.WithLabelValues(kind).Observe(float64(size))
}

// ObserveDropped counts rows that could not be queued.
func (m Archive) ObserveDropped(kind string) {
	archiveDroppedTotal.WithLabelValues(kind).Inc()
}
