package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
)

func insertRewardsQuery() string {
	return `
INSERT INTO tokenpool_rewards (
	miner_address,
	epoch_count,
	challenge_number,
	shares_credited,
	pool_total_shares,
	tokens_awarded,
	bonus_awarded,
	created_at
) VALUES`
}

// InsertRewards archives settled reward records.
func (r *Repository) InsertRewards(ctx context.Context, rewards []model.RewardRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_rewards", err, start)
	}()

	if len(rewards) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertRewardsQuery())
	if err != nil {
		return fmt.Errorf("prepare rewards batch: %w", err)
	}

	for _, reward := range rewards {
		if err = batch.Append(
			reward.MinerAddress,
			reward.EpochCount,
			reward.ChallengeNumber,
			reward.SharesCredited,
			reward.PoolTotalShares,
			reward.TokensAwarded,
			reward.BonusAwarded,
			reward.CreatedAt,
		); err != nil {
			return fmt.Errorf("append reward: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert rewards: %w", err)
	}
	return nil
}
