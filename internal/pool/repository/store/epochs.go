package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InsertEpoch records an epoch in the history. Existing epoch counts are left untouched.
func (r *Repository) InsertEpoch(ctx context.Context, epoch model.ChallengeEpoch) error {
	start := time.Now()
	var err error
	defer func() { r.observe("insert_epoch", err, start) }()

	row := epochToRow(epoch)
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "epoch_count"}}, DoNothing: true}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("insert epoch %d: %w", epoch.EpochCount, err)
	}
	return nil
}

// LatestEpoch returns the epoch with the highest count.
func (r *Repository) LatestEpoch(ctx context.Context) (model.ChallengeEpoch, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("latest_epoch", err, start) }()

	var row epochRow
	err = r.db.WithContext(ctx).Order("epoch_count DESC").Take(&row).Error
	if err != nil {
		err = notFound(err)
		return model.ChallengeEpoch{}, fmt.Errorf("select latest epoch: %w", err)
	}
	return row.toModel()
}

// EpochByCount returns the epoch recorded for count.
func (r *Repository) EpochByCount(ctx context.Context, count uint64) (model.ChallengeEpoch, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("epoch_by_count", err, start) }()

	var row epochRow
	err = r.db.WithContext(ctx).Where("epoch_count = ?", count).Take(&row).Error
	if err != nil {
		err = notFound(err)
		return model.ChallengeEpoch{}, fmt.Errorf("select epoch %d: %w", count, err)
	}
	return row.toModel()
}

// EpochByChallenge returns the most recent epoch carrying challenge.
func (r *Repository) EpochByChallenge(ctx context.Context, challenge string) (model.ChallengeEpoch, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("epoch_by_challenge", err, start) }()

	var row epochRow
	err = r.db.WithContext(ctx).
		Where("challenge_number = ?", challenge).
		Order("epoch_count DESC").
		Take(&row).Error
	if err != nil {
		err = notFound(err)
		return model.ChallengeEpoch{}, fmt.Errorf("select epoch by challenge: %w", err)
	}
	return row.toModel()
}

// EpochsInRange returns the epochs with from <= count <= to in ascending order.
func (r *Repository) EpochsInRange(ctx context.Context, from, to uint64) ([]model.ChallengeEpoch, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("epochs_in_range", err, start) }()

	var rows []epochRow
	err = r.db.WithContext(ctx).
		Where("epoch_count >= ? AND epoch_count <= ?", from, to).
		Order("epoch_count ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("select epochs %d..%d: %w", from, to, err)
	}

	epochs := make([]model.ChallengeEpoch, 0, len(rows))
	for _, row := range rows {
		var epoch model.ChallengeEpoch
		if epoch, err = row.toModel(); err != nil {
			return nil, err
		}
		epochs = append(epochs, epoch)
	}
	return epochs, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
