// Package coordinator drives solution and batched payment transactions from queued to a
// final on-chain outcome.
//
// Every status change is a compare-and-swap on (id, expected status), so several settlement
// processes can run the same loops against one store.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/repository/store"
)

const (
	solutionStaleBlocks = 30
	paymentStaleBlocks  = 100
	paymentRequeueAfter = 500

	defaultPageSize        = 100
	defaultReceiptAttempts = 3
	defaultReceiptDelay    = 500 * time.Millisecond
)

// Coordinator owns the transaction lifecycle.
type Coordinator struct {
	logger  *zap.Logger
	repo    Repository
	chain   Chain
	epochs  EpochSource
	policy  PolicySource
	metrics Metrics

	pageSize        int
	receiptAttempts int
	receiptDelay    time.Duration
}

// New builds a Coordinator.
func New(repo Repository, chain Chain, epochs EpochSource, policy PolicySource, metrics Metrics, logger *zap.Logger) (*Coordinator, error) {
	if repo == nil {
		return nil, errors.New("coordinator repository is required")
	}
	if chain == nil {
		return nil, errors.New("coordinator chain client is required")
	}
	if epochs == nil {
		return nil, errors.New("coordinator epoch source is required")
	}
	if policy == nil {
		return nil, errors.New("coordinator policy is required")
	}
	if metrics == nil {
		return nil, errors.New("coordinator metrics is required")
	}
	return &Coordinator{
		logger:          logger.Named("coordinator"),
		repo:            repo,
		chain:           chain,
		epochs:          epochs,
		policy:          policy,
		metrics:         metrics,
		pageSize:        defaultPageSize,
		receiptAttempts: defaultReceiptAttempts,
		receiptDelay:    defaultReceiptDelay,
	}, nil
}

func (c *Coordinator) hasPending(ctx context.Context, txType model.TxType) (bool, error) {
	n, err := c.repo.CountTransactions(ctx, txType, model.TxPending)
	if err != nil {
		return false, fmt.Errorf("count pending %s: %w", txType, err)
	}
	return n > 0, nil
}

// transition applies a CAS status change and reports whether this call won it.
func (c *Coordinator) transition(ctx context.Context, tx model.Transaction, from, to model.TxStatus, changes store.TxChanges) (bool, error) {
	ok, err := c.repo.TransitionTransaction(ctx, tx.ID, from, to, changes)
	if err != nil {
		return false, fmt.Errorf("move tx %d %s->%s: %w", tx.ID, from, to, err)
	}
	if !ok {
		c.logger.Debug("transition lost",
			zap.Uint64("tx_id", tx.ID),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
		return false, nil
	}
	c.metrics.ObserveTransition(string(tx.TxType), string(from), string(to))
	return true, nil
}
