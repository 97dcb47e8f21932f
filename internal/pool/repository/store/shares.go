package store

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
	"gorm.io/gorm/clause"
)

// InsertPendingShare stores an accepted share, credited or not. It reports false when a
// share with the same digest already exists.
func (r *Repository) InsertPendingShare(ctx context.Context, share model.PendingShare) (bool, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("insert_pending_share", err, start) }()

	row := pendingShareRow{
		Digest:          share.Digest,
		MinerAddress:    share.MinerAddress,
		ChallengeNumber: share.ChallengeNumber,
		Difficulty:      share.Difficulty,
		IsSolution:      share.IsSolution,
		Credited:        share.Credited,
		MinerClass:      uint8(share.MinerClass),
		Time:            share.Time,
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "digest"}}, DoNothing: true}).
		Create(&row)
	if err = res.Error; err != nil {
		return false, fmt.Errorf("insert pending share: %w", err)
	}
	return res.RowsAffected == 1, nil
}

// PendingShareExists reports whether a share with digest was stored.
func (r *Repository) PendingShareExists(ctx context.Context, digest string) (bool, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("pending_share_exists", err, start) }()

	var count int64
	err = r.db.WithContext(ctx).Model(&pendingShareRow{}).Where("digest = ?", digest).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count pending shares: %w", err)
	}
	return count > 0, nil
}
