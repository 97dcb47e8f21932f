package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	paymentRunTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "payment_builder",
		Name:      "runs_total",
		Help:      "Count of payment builder passes.",
	}, []string{"pass", "status"})
	paymentRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "payment_builder",
		Name:      "run_duration_seconds",
		Help:      "Duration of payment builder passes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"pass", "status"})
	paymentCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "payment_builder",
		Name:      "payments_created_total",
		Help:      "Count of balance payments created.",
	})
	paymentBatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "payment_builder",
		Name:      "batch_size",
		Help:      "Number of payments per queued batch.",
		Buckets:   prometheus.LinearBuckets(5, 5, 10),
	})
)

// PaymentBuilder tracks payment accrual and batching.
type PaymentBuilder struct{}

// NewPaymentBuilder constructs a PaymentBuilder collector.
func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{}
}

// ObservePass records the outcome of an accrual or batching pass.
func (m PaymentBuilder) ObservePass(pass string, err error, started time.Time) {
	s := status(err)
	paymentRunTotal.WithLabelValues(pass, s).Inc()
	paymentRunDuration.WithLabelValues(pass, s).Observe(time.Since(started).Seconds())
}

// ObservePayments counts created balance payments.
func (m PaymentBuilder) ObservePayments(n int) {
	paymentCreatedTotal.Add(float64(n))
}

// ObserveBatch records the size of a queued batch.
func (m PaymentBuilder) ObserveBatch(size int) {
	paymentBatchSize.Observe(float64(size))
}
