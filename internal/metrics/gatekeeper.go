package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gatekeeperSharesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "gatekeeper",
		Name:      "shares_total",
		Help:      "Count of share submissions by outcome.",
	}, []string{"outcome"})
	gatekeeperShareDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "gatekeeper",
		Name:      "share_duration_seconds",
		Help:      "Duration of share validation.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"outcome"})
	gatekeeperCreditedDifficulty = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "gatekeeper",
		Name:      "credited_difficulty_total",
		Help:      "Sum of difficulty credited to miners.",
	}, []string{"class"})
	gatekeeperSolutionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "gatekeeper",
		Name:      "solutions_total",
		Help:      "Count of shares that solved a block.",
	})
	gatekeeperIntakeQueued = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "gatekeeper",
		Name:      "intake_queued",
		Help:      "Shares waiting in the intake queue.",
	})
)

// Gatekeeper tracks share validation metrics.
type Gatekeeper struct{}

// NewGatekeeper constructs a Gatekeeper collector.
func NewGatekeeper() *Gatekeeper {
	return &Gatekeeper{}
}

// ObserveShare records the outcome of a share submission.
func (m Gatekeeper) ObserveShare(outcome string, started time.Time) {
	if outcome == "" {
		outcome = "unknown"
	}
	gatekeeperSharesTotal.WithLabelValues(outcome).Inc()
	gatekeeperShareDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}

// ObserveCredit records difficulty credited for a class.
func (m Gatekeeper) ObserveCredit(class string, difficulty uint64) {
	gatekeeperCreditedDifficulty.WithLabelValues(class).Add(float64(difficulty))
}

// ObserveSolution counts a block solution.
func (m Gatekeeper) ObserveSolution() {
	gatekeeperSolutionsTotal.Inc()
}

// SetIntakeQueued reports the intake queue depth.
func (m Gatekeeper) SetIntakeQueued(n int) {
	gatekeeperIntakeQueued.Set(float64(n))
}
