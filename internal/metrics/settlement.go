package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	settlementMintsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "settlement",
		Name:      "mints_total",
		Help:      "Count of settled mints by final status.",
	}, []string{"result", "status"})
	settlementMintDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "settlement",
		Name:      "mint_duration_seconds",
		Help:      "Duration of settling a mint.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"result", "status"})
	settlementCreditedTokens = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "settlement",
		Name:      "credited_tokens_total",
		Help:      "Sum of token base units credited to miners.",
	})
	settlementForfeitedRows = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "settlement",
		Name:      "forfeited_tallies_total",
		Help:      "Count of tally rows forfeited below the security reserve.",
	})
)

// Settlement tracks reward settlement metrics.
type Settlement struct{}

// NewSettlement constructs a Settlement collector.
func NewSettlement() *Settlement {
	return &Settlement{}
}

// ObserveMint records the outcome of settling one mint.
func (m Settlement) ObserveMint(result string, err error, started time.Time) {
	if result == "" {
		result = "unknown"
	}
	s := status(err)
	settlementMintsTotal.WithLabelValues(result, s).Inc()
	settlementMintDuration.WithLabelValues(result, s).Observe(time.Since(started).Seconds())
}

// ObserveCredit records tokens credited to a miner.
func (m Settlement) ObserveCredit(amount uint64) {
	settlementCreditedTokens.Add(float64(amount))
}

// ObserveForfeit records tally rows forfeited below the reserve.
func (m Settlement) ObserveForfeit(rows int) {
	settlementForfeitedRows.Add(float64(rows))
}
