package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chain_client",
		Name:      "operations_total",
		Help:      "Count of node RPC operations.",
	}, []string{"operation", "network", "status"})
	chainRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "chain_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// ChainClient tracks metrics for RPC calls to the chain node.
type ChainClient struct {
	network string
}

// NewChainClient constructs a metrics collector for RPC calls.
func NewChainClient(network string) *ChainClient {
	if network == "" {
		network = "unknown"
	}
	return &ChainClient{network: network}
}

// Observe records a single RPC call outcome and duration.
func (m ChainClient) Observe(operation string, err error, started time.Time) {
	s := status(err)
	chainRequestsTotal.WithLabelValues(operation, m.network, s).Inc()
	chainRequestDuration.WithLabelValues(operation, m.network, s).Observe(time.Since(started).Seconds())
}
