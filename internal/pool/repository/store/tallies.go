package store

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IncrementTally adds difficulty to the miner's open tally for a challenge and class,
// creating the row when absent.
func (r *Repository) IncrementTally(ctx context.Context, miner, challenge string, class model.MinerClass, difficulty uint64) error {
	start := time.Now()
	var err error
	defer func() { r.observe("increment_tally", err, start) }()

	row := tallyRow{
		MinerAddress:    miner,
		ChallengeNumber: challenge,
		MinerClass:      uint8(class),
		TotalDifficulty: difficulty,
		Status:          uint8(model.TallyOpen),
	}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "miner_address"}, {Name: "challenge_number"}, {Name: "miner_class"}},
		DoUpdates: clause.Assignments(map[string]any{
			"total_difficulty": gorm.Expr("difficulty_tallies.total_difficulty + excluded.total_difficulty"),
		}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("increment tally: %w", err)
	}
	return nil
}

// IncrementPoolTotal adds difficulty to the pool-wide total of a challenge and class.
func (r *Repository) IncrementPoolTotal(ctx context.Context, challenge string, class model.MinerClass, difficulty uint64) error {
	start := time.Now()
	var err error
	defer func() { r.observe("increment_pool_total", err, start) }()

	row := poolTotalRow{ChallengeNumber: challenge, MinerClass: uint8(class), TotalDifficulty: difficulty}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "challenge_number"}, {Name: "miner_class"}},
		DoUpdates: clause.Assignments(map[string]any{
			"total_difficulty": gorm.Expr("pool_difficulty_totals.total_difficulty + excluded.total_difficulty"),
		}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("increment pool total: %w", err)
	}
	return nil
}

// EnsurePoolTotals creates zero pool totals for every class of a challenge.
func (r *Repository) EnsurePoolTotals(ctx context.Context, challenge string, classes []model.MinerClass) error {
	start := time.Now()
	var err error
	defer func() { r.observe("ensure_pool_totals", err, start) }()

	if len(classes) == 0 {
		return nil
	}
	rows := make([]poolTotalRow, 0, len(classes))
	for _, class := range classes {
		rows = append(rows, poolTotalRow{ChallengeNumber: challenge, MinerClass: uint8(class)})
	}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return fmt.Errorf("ensure pool totals: %w", err)
	}
	return nil
}

// TalliesForChallenges returns every tally row, in any status, of the given challenges.
func (r *Repository) TalliesForChallenges(ctx context.Context, challenges []string) ([]model.DifficultyTally, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("tallies_for_challenges", err, start) }()

	if len(challenges) == 0 {
		return nil, nil
	}
	var rows []tallyRow
	err = r.db.WithContext(ctx).
		Where("challenge_number IN ?", challenges).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("select tallies: %w", err)
	}

	tallies := make([]model.DifficultyTally, 0, len(rows))
	for _, row := range rows {
		tallies = append(tallies, row.toModel())
	}
	return tallies, nil
}

// PoolTotalsForChallenges returns the pool totals of the given challenges.
func (r *Repository) PoolTotalsForChallenges(ctx context.Context, challenges []string) ([]model.PoolDifficultyTotal, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("pool_totals_for_challenges", err, start) }()

	if len(challenges) == 0 {
		return nil, nil
	}
	var rows []poolTotalRow
	err = r.db.WithContext(ctx).Where("challenge_number IN ?", challenges).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("select pool totals: %w", err)
	}

	totals := make([]model.PoolDifficultyTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, model.PoolDifficultyTotal{
			ChallengeNumber: row.ChallengeNumber,
			MinerClass:      model.MinerClass(row.MinerClass),
			TotalDifficulty: row.TotalDifficulty,
		})
	}
	return totals, nil
}

// ClaimTally moves a tally row from one status to another. It reports false when the
// row was no longer in the expected status.
func (r *Repository) ClaimTally(ctx context.Context, id uint64, from, to model.TallyStatus) (bool, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("claim_tally", err, start) }()

	res := r.db.WithContext(ctx).
		Model(&tallyRow{}).
		Where("id = ? AND status = ?", id, uint8(from)).
		Update("status", uint8(to))
	if err = res.Error; err != nil {
		return false, fmt.Errorf("update tally %d status: %w", id, err)
	}
	return res.RowsAffected == 1, nil
}
