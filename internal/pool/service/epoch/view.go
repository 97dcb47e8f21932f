package epoch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/notify"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/repository/store"
)

// View is the read side of the epoch history used by processes that do not poll the chain.
type View struct {
	logger  *zap.Logger
	repo    EpochReader
	current atomic.Pointer[model.ChallengeEpoch]
}

// NewView builds a View over repo.
func NewView(repo EpochReader, logger *zap.Logger) *View {
	return &View{logger: logger.Named("epoch_view"), repo: repo}
}

// Current returns the cached epoch.
func (v *View) Current() (model.ChallengeEpoch, bool) {
	current := v.current.Load()
	if current == nil {
		return model.ChallengeEpoch{}, false
	}
	return *current, true
}

// Refresh reloads the latest epoch from the store.
func (v *View) Refresh(ctx context.Context) error {
	latest, err := v.repo.LatestEpoch(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("refresh epoch: %w", err)
	}

	if previous := v.current.Swap(&latest); previous == nil || !previous.SameChallenge(latest) {
		v.logger.Info("current epoch updated",
			zap.Uint64("epoch", latest.EpochCount),
			zap.String("challenge", latest.ChallengeNumber),
		)
	}
	return nil
}

// Watch refreshes the view on every challenge change notification until ctx is done.
func (v *View) Watch(ctx context.Context, subscriber Subscriber) error {
	messages, unsubscribe := subscriber.Subscribe(notify.TopicNewChallenge)
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return errors.New("challenge notifications closed")
			}
			if event, err := notify.DecodeChallengeChanged(msg); err == nil {
				v.logger.Debug("challenge change notified", zap.Uint64("epoch", event.EpochCount))
			}
			if err := v.Refresh(ctx); err != nil {
				v.logger.Warn("refresh after notification failed", zap.Error(err))
			}
		}
	}
}
