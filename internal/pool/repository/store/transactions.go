package store

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
	"gorm.io/gorm"
)

// TxChanges lists the optional fields written together with a status transition.
type TxChanges struct {
	TxHash           *string
	GasPrice         *string
	Block            *uint64
	IncrementAttempt bool
}

// InsertTransaction stores a transaction and returns it with its assigned id.
func (r *Repository) InsertTransaction(ctx context.Context, tx model.Transaction) (model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("insert_transaction", err, start) }()

	row := newTransactionRow(tx)
	if err = r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return model.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	return row.toModel(), nil
}

func newTransactionRow(tx model.Transaction) transactionRow {
	return transactionRow{
		TxType:          string(tx.TxType),
		Status:          string(tx.Status),
		TxData:          string(tx.TxData),
		TxHash:          tx.TxHash,
		ChallengeNumber: tx.ChallengeNumber,
		BatchUUID:       tx.BatchUUID,
		Block:           tx.Block,
		GasPrice:        tx.GasPrice,
		Attempts:        tx.Attempts,
	}
}

// Transaction returns the transaction with id.
func (r *Repository) Transaction(ctx context.Context, id uint64) (model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("transaction", err, start) }()

	var row transactionRow
	if err = r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		err = notFound(err)
		return model.Transaction{}, fmt.Errorf("select transaction %d: %w", id, err)
	}
	return row.toModel(), nil
}

// TransactionsByStatus returns up to limit transactions of a type and status, oldest first.
func (r *Repository) TransactionsByStatus(ctx context.Context, txType model.TxType, status model.TxStatus, limit int) ([]model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("transactions_by_status", err, start) }()

	var rows []transactionRow
	err = r.db.WithContext(ctx).
		Where("tx_type = ? AND status = ?", string(txType), string(status)).
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("select %s %s transactions: %w", status, txType, err)
	}
	return toTransactions(rows), nil
}

// CountTransactions returns how many transactions of a type are in status.
func (r *Repository) CountTransactions(ctx context.Context, txType model.TxType, status model.TxStatus) (int64, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("count_transactions", err, start) }()

	var count int64
	err = r.db.WithContext(ctx).
		Model(&transactionRow{}).
		Where("tx_type = ? AND status = ?", string(txType), string(status)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count %s %s transactions: %w", status, txType, err)
	}
	return count, nil
}

// QueuedSolution returns the oldest queued solution for challenge.
func (r *Repository) QueuedSolution(ctx context.Context, challenge string) (model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("queued_solution", err, start) }()

	var row transactionRow
	err = r.db.WithContext(ctx).
		Where("tx_type = ? AND status = ? AND challenge_number = ?", string(model.TxSolution), string(model.TxQueued), challenge).
		Order("id ASC").
		Take(&row).Error
	if err != nil {
		err = notFound(err)
		return model.Transaction{}, fmt.Errorf("select queued solution: %w", err)
	}
	return row.toModel(), nil
}

// SolutionsForChallenge returns the solutions of a challenge in any of the given statuses.
func (r *Repository) SolutionsForChallenge(ctx context.Context, challenge string, statuses []model.TxStatus) ([]model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("solutions_for_challenge", err, start) }()

	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, string(status))
	}
	var rows []transactionRow
	err = r.db.WithContext(ctx).
		Where("tx_type = ? AND challenge_number = ? AND status IN ?", string(model.TxSolution), challenge, values).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("select solutions for challenge: %w", err)
	}
	return toTransactions(rows), nil
}

// TransitionTransaction moves a transaction from one status to another, writing changes in
// the same statement. It reports false when the row was no longer in the expected status.
func (r *Repository) TransitionTransaction(ctx context.Context, id uint64, from, to model.TxStatus, changes TxChanges) (bool, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("transition_transaction", err, start) }()

	updates := map[string]any{
		"status":     string(to),
		"updated_at": time.Now().UTC(),
	}
	if changes.TxHash != nil {
		updates["tx_hash"] = *changes.TxHash
	}
	if changes.GasPrice != nil {
		updates["gas_price"] = *changes.GasPrice
	}
	if changes.Block != nil {
		updates["block"] = *changes.Block
	}
	if changes.IncrementAttempt {
		updates["attempts"] = gorm.Expr("attempts + 1")
	}

	res := r.db.WithContext(ctx).
		Model(&transactionRow{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	if err = res.Error; err != nil {
		return false, fmt.Errorf("update transaction %d: %w", id, err)
	}
	return res.RowsAffected == 1, nil
}

// RecordBroadcast stores the hash and gas price of a sent transaction whatever its status.
// It reports false when the row already carries a hash.
func (r *Repository) RecordBroadcast(ctx context.Context, id uint64, hash, gasPrice string) (bool, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("record_broadcast", err, start) }()

	res := r.db.WithContext(ctx).
		Model(&transactionRow{}).
		Where("id = ? AND tx_hash = ''", id).
		Updates(map[string]any{
			"tx_hash":    hash,
			"gas_price":  gasPrice,
			"updated_at": time.Now().UTC(),
		})
	if err = res.Error; err != nil {
		return false, fmt.Errorf("record broadcast of transaction %d: %w", id, err)
	}
	return res.RowsAffected == 1, nil
}

func toTransactions(rows []transactionRow) []model.Transaction {
	txs := make([]model.Transaction, 0, len(rows))
	for _, row := range rows {
		txs = append(txs, row.toModel())
	}
	return txs
}
