// Package epoch follows the token contract's challenge and keeps the epoch history.
package epoch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/notify"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/repository/store"
)

// Tracker polls the chain for challenge changes and records them.
type Tracker struct {
	logger    *zap.Logger
	chain     ChainReader
	repo      Repository
	publisher Publisher
	metrics   TrackerMetrics
	now       func() time.Time

	current atomic.Pointer[model.ChallengeEpoch]
}

// NewTracker builds a Tracker.
func NewTracker(chain ChainReader, repo Repository, publisher Publisher, metrics TrackerMetrics, logger *zap.Logger) (*Tracker, error) {
	if chain == nil {
		return nil, errors.New("epoch tracker chain reader is required")
	}
	if repo == nil {
		return nil, errors.New("epoch tracker repository is required")
	}
	if metrics == nil {
		return nil, errors.New("epoch tracker metrics is required")
	}
	return &Tracker{
		logger:    logger.Named("epoch_tracker"),
		chain:     chain,
		repo:      repo,
		publisher: publisher,
		metrics:   metrics,
		now:       time.Now,
	}, nil
}

// Load primes the current epoch from the store. An empty history is not an error.
func (t *Tracker) Load(ctx context.Context) error {
	latest, err := t.repo.LatestEpoch(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("load latest epoch: %w", err)
	}
	t.current.Store(&latest)
	t.logger.Info("loaded current epoch",
		zap.Uint64("epoch", latest.EpochCount),
		zap.String("challenge", latest.ChallengeNumber),
	)
	return nil
}

// Current returns the last observed epoch.
func (t *Tracker) Current() (model.ChallengeEpoch, bool) {
	current := t.current.Load()
	if current == nil {
		return model.ChallengeEpoch{}, false
	}
	return *current, true
}

// Poll reads the chain and records a new epoch when the challenge changed.
func (t *Tracker) Poll(ctx context.Context) (err error) {
	started := time.Now()
	defer func() {
		t.metrics.ObservePoll(err, started)
	}()

	onChain, err := t.chain.CurrentEpoch(ctx)
	if err != nil {
		return fmt.Errorf("read chain epoch: %w", err)
	}
	if current, ok := t.Current(); ok && current.ChallengeNumber == onChain.ChallengeNumber {
		return nil
	}

	next := model.ChallengeEpoch{
		EpochCount:       onChain.EpochCount,
		ChallengeNumber:  onChain.ChallengeNumber,
		MiningTarget:     onChain.MiningTarget,
		MiningDifficulty: onChain.MiningDifficulty,
		MiningReward:     onChain.MiningReward,
		CreatedAt:        t.now().UTC(),
	}
	if err = t.repo.InsertEpoch(ctx, next); err != nil {
		return fmt.Errorf("record epoch: %w", err)
	}
	if err = t.repo.EnsurePoolTotals(ctx, next.ChallengeNumber, model.MinerClasses); err != nil {
		return fmt.Errorf("ensure pool totals: %w", err)
	}

	t.current.Store(&next)
	t.metrics.ObserveChange(next.EpochCount)
	t.logger.Info("challenge changed",
		zap.Uint64("epoch", next.EpochCount),
		zap.String("challenge", next.ChallengeNumber),
		zap.Uint64("difficulty", next.MiningDifficulty),
	)

	if t.publisher != nil {
		event := notify.ChallengeChanged{EpochCount: next.EpochCount, ChallengeNumber: next.ChallengeNumber}
		if pubErr := notify.PublishChallengeChanged(ctx, t.publisher, event); pubErr != nil {
			t.logger.Warn("publish challenge change failed", zap.Error(pubErr))
		}
	}
	return nil
}
