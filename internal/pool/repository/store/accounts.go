package store

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MinerAccount returns the account of miner.
func (r *Repository) MinerAccount(ctx context.Context, miner string) (model.MinerAccount, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("miner_account", err, start) }()

	var row accountRow
	err = r.db.WithContext(ctx).Where("miner_address = ?", miner).Take(&row).Error
	if err != nil {
		err = notFound(err)
		return model.MinerAccount{}, fmt.Errorf("select miner account: %w", err)
	}
	return row.toModel(), nil
}

// ClaimShareSlot records a share submission of miner at the given time when the previous
// submission is at least spacing old, creating the account when absent. It reports false
// when the slot is already taken. The check and the write are one statement, so concurrent
// submissions of the same miner get at most one slot per spacing window.
func (r *Repository) ClaimShareSlot(ctx context.Context, miner string, at time.Time, spacing time.Duration) (bool, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("claim_share_slot", err, start) }()

	at = at.UTC()
	row := accountRow{
		MinerAddress:              miner,
		ShareCount:                1,
		LastSubmittedSolutionTime: at,
		CreatedAt:                 at,
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "miner_address"}},
			DoNothing: true,
		}).
		Create(&row)
	if err = res.Error; err != nil {
		return false, fmt.Errorf("create miner account: %w", err)
	}
	if res.RowsAffected == 1 {
		return true, nil
	}

	res = r.db.WithContext(ctx).
		Model(&accountRow{}).
		Where("miner_address = ? AND last_submitted_solution_time <= ?", miner, at.Add(-spacing)).
		Updates(map[string]any{
			"share_count":                  gorm.Expr("share_count + 1"),
			"last_submitted_solution_time": at,
		})
	if err = res.Error; err != nil {
		return false, fmt.Errorf("claim share slot: %w", err)
	}
	return res.RowsAffected == 1, nil
}

// CreditMiner adds amount to the all-time balance of miner, creating the account when absent.
func (r *Repository) CreditMiner(ctx context.Context, miner string, amount uint64) error {
	start := time.Now()
	var err error
	defer func() { r.observe("credit_miner", err, start) }()

	err = creditMiner(r.db.WithContext(ctx), miner, amount)
	return err
}

func creditMiner(db *gorm.DB, miner string, amount uint64) error {
	row := accountRow{
		MinerAddress:        miner,
		AlltimeTokenBalance: amount,
		CreatedAt:           time.Now().UTC(),
	}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "miner_address"}},
		DoUpdates: clause.Assignments(map[string]any{
			"alltime_token_balance": gorm.Expr("miner_accounts.alltime_token_balance + excluded.alltime_token_balance"),
		}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("credit miner: %w", err)
	}
	return nil
}

// AccountsWithOwed pages through accounts whose balance exceeds what was already moved into
// payments, ordered by address and starting after the given address.
func (r *Repository) AccountsWithOwed(ctx context.Context, after string, limit int) ([]model.MinerAccount, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("accounts_with_owed", err, start) }()

	var rows []accountRow
	err = r.db.WithContext(ctx).
		Where("alltime_token_balance > tokens_awarded AND miner_address > ?", after).
		Order("miner_address ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("select accounts with owed balance: %w", err)
	}

	accounts := make([]model.MinerAccount, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, row.toModel())
	}
	return accounts, nil
}

// AdvanceTokensAwarded sets TokensAwarded to next if it still equals expected.
func (r *Repository) AdvanceTokensAwarded(ctx context.Context, miner string, expected, next uint64) (bool, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("advance_tokens_awarded", err, start) }()

	res := r.db.WithContext(ctx).
		Model(&accountRow{}).
		Where("miner_address = ? AND tokens_awarded = ?", miner, expected).
		Update("tokens_awarded", next)
	if err = res.Error; err != nil {
		return false, fmt.Errorf("update tokens awarded: %w", err)
	}
	return res.RowsAffected == 1, nil
}

// CreditTokensReceived adds amount to the tokens the miner received on-chain.
func (r *Repository) CreditTokensReceived(ctx context.Context, miner string, amount uint64) error {
	start := time.Now()
	var err error
	defer func() { r.observe("credit_tokens_received", err, start) }()

	err = r.db.WithContext(ctx).
		Model(&accountRow{}).
		Where("miner_address = ?", miner).
		Update("tokens_received", gorm.Expr("tokens_received + ?", amount)).Error
	if err != nil {
		return fmt.Errorf("update tokens received: %w", err)
	}
	return nil
}
