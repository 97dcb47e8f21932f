package store

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InsertRewardRecord stores the audit row of a credit. It reports false when the miner
// already has a record for the epoch.
func (r *Repository) InsertRewardRecord(ctx context.Context, record model.RewardRecord) (bool, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("insert_reward_record", err, start) }()

	var inserted bool
	inserted, err = insertRewardRow(r.db.WithContext(ctx), record)
	return inserted, err
}

// SettleReward moves the open tally rows of one miner to settled, stores the reward record
// and credits the miner in one database transaction. It returns how many rows it moved and
// whether the miner was credited. Nothing is recorded when no row was still open, and the
// rows stay claimed without a credit when the miner already has a record for the epoch.
func (r *Repository) SettleReward(ctx context.Context, tallyIDs []uint64, record model.RewardRecord) (int, bool, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("settle_reward", err, start) }()

	var (
		claimed  int
		credited bool
	)
	err = r.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		claimed, credited = 0, false
		for _, id := range tallyIDs {
			res := db.Model(&tallyRow{}).
				Where("id = ? AND status = ?", id, uint8(model.TallyOpen)).
				Update("status", uint8(model.TallySettled))
			if res.Error != nil {
				return fmt.Errorf("update tally %d status: %w", id, res.Error)
			}
			claimed += int(res.RowsAffected)
		}
		if claimed == 0 {
			return nil
		}

		inserted, err := insertRewardRow(db, record)
		if err != nil || !inserted {
			return err
		}
		if err := creditMiner(db, record.MinerAddress, record.TokensAwarded); err != nil {
			return err
		}
		credited = true
		return nil
	})
	if err != nil {
		return 0, false, fmt.Errorf("settle reward of %s: %w", record.MinerAddress, err)
	}
	return claimed, credited, nil
}

func insertRewardRow(db *gorm.DB, record model.RewardRecord) (bool, error) {
	row := rewardRow{
		MinerAddress:    record.MinerAddress,
		EpochCount:      record.EpochCount,
		ChallengeNumber: record.ChallengeNumber,
		SharesCredited:  record.SharesCredited,
		PoolTotalShares: record.PoolTotalShares,
		TokensAwarded:   record.TokensAwarded,
		BonusAwarded:    record.BonusAwarded,
		CreatedAt:       record.CreatedAt,
	}
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "miner_address"}, {Name: "epoch_count"}},
		DoNothing: true,
	}).Create(&row)
	if res.Error != nil {
		return false, fmt.Errorf("insert reward record: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}

// RewardRecordsForEpoch returns every reward record of an epoch ordered by miner.
func (r *Repository) RewardRecordsForEpoch(ctx context.Context, epoch uint64) ([]model.RewardRecord, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("reward_records_for_epoch", err, start) }()

	var rows []rewardRow
	err = r.db.WithContext(ctx).
		Where("epoch_count = ?", epoch).
		Order("miner_address ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("select reward records: %w", err)
	}

	records := make([]model.RewardRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toModel())
	}
	return records, nil
}
