package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
)

func insertSharesQuery() string {
	return `
INSERT INTO tokenpool_shares (
	miner_address,
	digest,
	challenge_number,
	difficulty,
	is_solution,
	miner_class,
	submitted_at
) VALUES`
}

// InsertShares archives accepted shares.
func (r *Repository) InsertShares(ctx context.Context, shares []model.PendingShare) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_shares", err, start)
	}()

	if len(shares) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertSharesQuery())
	if err != nil {
		return fmt.Errorf("prepare shares batch: %w", err)
	}

	for _, share := range shares {
		if err = batch.Append(
			share.MinerAddress,
			share.Digest,
			share.ChallengeNumber,
			share.Difficulty,
			share.IsSolution,
			share.MinerClass.String(),
			share.Time,
		); err != nil {
			return fmt.Errorf("append share: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert shares: %w", err)
	}
	return nil
}
