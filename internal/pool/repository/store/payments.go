package store

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
	"gorm.io/gorm"
)

// InsertBalancePayment stores a payment and returns it with its assigned id.
func (r *Repository) InsertBalancePayment(ctx context.Context, payment model.BalancePayment) (model.BalancePayment, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("insert_balance_payment", err, start) }()

	row := paymentRow{
		MinerAddress: payment.MinerAddress,
		AmountToPay:  payment.AmountToPay,
		Block:        payment.Block,
		BatchUUID:    payment.BatchUUID,
		Confirmed:    payment.Confirmed,
		CreatedAt:    payment.CreatedAt,
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if err = r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return model.BalancePayment{}, fmt.Errorf("insert balance payment: %w", err)
	}
	return row.toModel(), nil
}

// UnbatchedPayments returns up to limit payments without a batch, oldest first.
func (r *Repository) UnbatchedPayments(ctx context.Context, limit int) ([]model.BalancePayment, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("unbatched_payments", err, start) }()

	var rows []paymentRow
	err = r.db.WithContext(ctx).
		Where("batch_uuid = ''").
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("select unbatched payments: %w", err)
	}

	payments := make([]model.BalancePayment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, row.toModel())
	}
	return payments, nil
}

// CreateBatch assigns batchUUID to every listed payment and queues tx in one database
// transaction. It returns ErrConflict and writes nothing when any payment is already batched.
func (r *Repository) CreateBatch(ctx context.Context, ids []uint64, batchUUID string, tx model.Transaction) (model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("create_batch", err, start) }()

	var queued model.Transaction
	err = r.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		for _, id := range ids {
			res := db.Model(&paymentRow{}).
				Where("id = ? AND batch_uuid = ''", id).
				Update("batch_uuid", batchUUID)
			if res.Error != nil {
				return fmt.Errorf("claim payment %d: %w", id, res.Error)
			}
			if res.RowsAffected != 1 {
				return fmt.Errorf("claim payment %d: %w", id, ErrConflict)
			}
		}
		row := newTransactionRow(tx)
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}
		queued = row.toModel()
		return nil
	})
	if err != nil {
		return model.Transaction{}, fmt.Errorf("create batch %s: %w", batchUUID, err)
	}
	return queued, nil
}

// PaymentsByBatch returns the payments of a batch ordered by id.
func (r *Repository) PaymentsByBatch(ctx context.Context, batchUUID string) ([]model.BalancePayment, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("payments_by_batch", err, start) }()

	var rows []paymentRow
	err = r.db.WithContext(ctx).
		Where("batch_uuid = ?", batchUUID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("select batch payments: %w", err)
	}

	payments := make([]model.BalancePayment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, row.toModel())
	}
	return payments, nil
}

// ConfirmPayment flips a payment to confirmed. It reports false when it already was.
func (r *Repository) ConfirmPayment(ctx context.Context, id uint64) (bool, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("confirm_payment", err, start) }()

	res := r.db.WithContext(ctx).
		Model(&paymentRow{}).
		Where("id = ? AND confirmed = ?", id, false).
		Update("confirmed", true)
	if err = res.Error; err != nil {
		return false, fmt.Errorf("confirm payment %d: %w", id, err)
	}
	return res.RowsAffected == 1, nil
}
