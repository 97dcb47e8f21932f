// Package archive mirrors accepted shares and settled rewards into the analytics store.
// Writes are best effort: a full queue drops rows instead of slowing share intake.
package archive

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
	"github.com/goodnatureofminers/tokenpool-backend/pkg/batcher"
)

const (
	kindShares  = "shares"
	kindRewards = "rewards"
)

// Writer batches archive rows and flushes them to the Repository.
type Writer struct {
	logger  *zap.Logger
	repo    Repository
	metrics Metrics
	shares  *batcher.Batcher[model.PendingShare]
	rewards *batcher.Batcher[model.RewardRecord]
}

// NewWriter builds a Writer. Call Start before archiving and Stop on shutdown.
func NewWriter(repo Repository, metrics Metrics, cfg batcher.Config, logger *zap.Logger) (*Writer, error) {
	if repo == nil {
		return nil, errors.New("archive repository is required")
	}
	if metrics == nil {
		return nil, errors.New("archive metrics is required")
	}
	w := &Writer{
		logger:  logger.Named("archive"),
		repo:    repo,
		metrics: metrics,
	}
	w.shares = batcher.New(w.logger.With(zap.String("kind", kindShares)), w.flushShares, cfg)
	w.rewards = batcher.New(w.logger.With(zap.String("kind", kindRewards)), w.flushRewards, cfg)
	return w, nil
}

// Start launches the flush loops.
func (w *Writer) Start(ctx context.Context) {
	w.shares.Start(ctx)
	w.rewards.Start(ctx)
}

// Stop flushes whatever is queued and stops the loops.
func (w *Writer) Stop() {
	w.shares.Stop()
	w.rewards.Stop()
}

// ArchiveShare queues an accepted share.
func (w *Writer) ArchiveShare(share model.PendingShare) {
	if !w.shares.TryAdd(share) {
		w.metrics.ObserveDropped(kindShares)
	}
}

// ArchiveReward queues a reward record.
func (w *Writer) ArchiveReward(record model.RewardRecord) {
	if !w.rewards.TryAdd(record) {
		w.metrics.ObserveDropped(kindRewards)
	}
}

func (w *Writer) flushShares(ctx context.Context, shares []model.PendingShare) error {
	err := w.repo.InsertShares(ctx, shares)
	w.metrics.ObserveFlush(kindShares, len(shares), err)
	if err != nil {
		return fmt.Errorf("archive %d shares: %w", len(shares), err)
	}
	return nil
}

func (w *Writer) flushRewards(ctx context.Context, rewards []model.RewardRecord) error {
	err := w.repo.InsertRewards(ctx, rewards)
	w.metrics.ObserveFlush(kindRewards, len(rewards), err)
	if err != nil {
		return fmt.Errorf("archive %d rewards: %w", len(rewards), err)
	}
	return nil
}
