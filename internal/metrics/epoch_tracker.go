package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	epochPollTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "epoch_tracker",
		Name:      "poll_total",
		Help:      "Count of chain epoch polls.",
	}, []string{"status"})
	epochPollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "epoch_tracker",
		Name:      "poll_duration_seconds",
		Help:      "Duration of chain epoch polls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	epochChangesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "epoch_tracker",
		Name:      "challenge_changes_total",
		Help:      "Count of observed challenge changes.",
	})
	epochCurrent = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "epoch_tracker",
		Name:      "current_epoch",
		Help:      "Epoch count of the current challenge.",
	})
)

// EpochTracker tracks chain epoch polling.
type EpochTracker struct{}

// NewEpochTracker constructs an EpochTracker collector.
func NewEpochTracker() *EpochTracker {
	return &EpochTracker{}
}

// ObservePoll records a poll outcome and duration.
func (m EpochTracker) ObservePoll(err error, started time.Time) {
	s := status(err)
	epochPollTotal.WithLabelValues(s).Inc()
	epochPollDuration.WithLabelValues(s).Observe(time.Since(started).Seconds())
}

// ObserveChange records a challenge change to epoch.
func (m EpochTracker) ObserveChange(epoch uint64) {
	epochChangesTotal.Inc()
	epochCurrent.Set(float64(epoch))
}
