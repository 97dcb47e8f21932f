package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	schedulerRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scheduler",
		Name:      "task_runs_total",
		Help:      "Count of scheduled task iterations.",
	}, []string{"task", "status"})
	schedulerRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "scheduler",
		Name:      "task_duration_seconds",
		Help:      "Duration of scheduled task iterations.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"task", "status"})
)

// Scheduler tracks scheduled task iterations.
type Scheduler struct{}

// NewScheduler constructs a Scheduler collector.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// ObserveTask records the outcome of one task iteration.
func (m Scheduler) ObserveTask(task string, err error, started time.Time) {
	s := status(err)
	schedulerRunsTotal.WithLabelValues(task, s).Inc()
	schedulerRunDuration.WithLabelValues(task, s).Observe(time.Since(started).Seconds())
}
