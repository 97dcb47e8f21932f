package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store_repository",
		Name:      "operations_total",
		Help:      "Count of ledger store operations.",
	}, []string{"driver", "operation", "status"})
	storeRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "store_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger store operations.",
		Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"driver", "operation", "status"})
)

// StoreRepository tracks metrics for ledger store operations.
type StoreRepository struct {
	driver string
}

// NewStoreRepository creates a StoreRepository collector labelled with the database driver.
func NewStoreRepository(driver string) *StoreRepository {
	if driver == "" {
		driver = "unknown"
	}
	return &StoreRepository{driver: driver}
}

// Observe records duration and status of a store operation.
func (m StoreRepository) Observe(operation string, err error, started time.Time) {
	s := status(err)
	storeRepositoryRequestsTotal.WithLabelValues(m.driver, operation, s).Inc()
	storeRepositoryRequestDuration.WithLabelValues(m.driver, operation, s).Observe(time.Since(started).Seconds())
}
