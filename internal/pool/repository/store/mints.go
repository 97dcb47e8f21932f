package store

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
	"gorm.io/gorm/clause"
)

// InsertPoolMint records a block reward. It reports false when the mint transaction was
// already recorded.
func (r *Repository) InsertPoolMint(ctx context.Context, mint model.PoolMint) (bool, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("insert_pool_mint", err, start) }()

	status := mint.PoolStatus
	if status == 0 {
		status = model.MintUnprocessed
	}
	row := mintRow{
		EpochCount:  mint.EpochCount,
		BlockReward: mint.BlockReward,
		TxHash:      mint.TxHash,
		PoolStatus:  uint8(status),
		CreatedAt:   mint.CreatedAt,
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "tx_hash"}}, DoNothing: true}).
		Create(&row)
	if err = res.Error; err != nil {
		return false, fmt.Errorf("insert pool mint: %w", err)
	}
	return res.RowsAffected == 1, nil
}

// UnprocessedMints returns up to limit unprocessed mints, oldest first.
func (r *Repository) UnprocessedMints(ctx context.Context, limit int) ([]model.PoolMint, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("unprocessed_mints", err, start) }()

	var rows []mintRow
	err = r.db.WithContext(ctx).
		Where("pool_status = ?", uint8(model.MintUnprocessed)).
		Order("epoch_count ASC, id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("select unprocessed mints: %w", err)
	}

	mints := make([]model.PoolMint, 0, len(rows))
	for _, row := range rows {
		mints = append(mints, row.toModel())
	}
	return mints, nil
}

// ClaimMint moves a mint from one status to another. It reports false when the mint was
// no longer in the expected status.
func (r *Repository) ClaimMint(ctx context.Context, id uint64, from, to model.PoolMintStatus) (bool, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("claim_mint", err, start) }()

	res := r.db.WithContext(ctx).
		Model(&mintRow{}).
		Where("id = ? AND pool_status = ?", id, uint8(from)).
		Update("pool_status", uint8(to))
	if err = res.Error; err != nil {
		return false, fmt.Errorf("update mint %d status: %w", id, err)
	}
	return res.RowsAffected == 1, nil
}
