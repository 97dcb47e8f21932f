package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// TxType distinguishes the on-chain transactions the pool sends.
type TxType string

const (
	// TxSolution submits a block solution to the token contract.
	TxSolution TxType = "solution"
	// TxBatchedPayment pays a batch of miners.
	TxBatchedPayment TxType = "batched_payment"
)

// TxStatus is the lifecycle state of a Transaction.
type TxStatus string

const (
	TxQueued   TxStatus = "queued"
	TxPending  TxStatus = "pending"
	TxSuccess  TxStatus = "success"
	TxReverted TxStatus = "reverted"
	TxSkipped  TxStatus = "skipped"
	TxOutdated TxStatus = "outdated"
)

// Terminal reports whether no further transition is expected.
func (s TxStatus) Terminal() bool {
	return s == TxSuccess || s == TxReverted || s == TxOutdated
}

// Transaction is an on-chain transaction owned by the broadcast coordinator.
type Transaction struct {
	ID              uint64
	TxType          TxType
	TxData          []byte
	TxHash          string
	Status          TxStatus
	ChallengeNumber string
	BatchUUID       string
	Block           uint64
	GasPrice        string
	Attempts        uint32
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SolutionData is the payload of a solution transaction.
type SolutionData struct {
	Nonce           string `json:"nonce"`
	Digest          string `json:"digest"`
	ChallengeNumber string `json:"challenge_number"`
	MinerAddress    string `json:"miner_address"`
}

// PaymentTransfer is one destination of a batched payment.
type PaymentTransfer struct {
	PaymentID    uint64 `json:"payment_id"`
	MinerAddress string `json:"miner_address"`
	Amount       uint64 `json:"amount"`
}

// BatchedPaymentData is the payload of a batched payment transaction.
type BatchedPaymentData struct {
	BatchUUID string            `json:"batch_uuid"`
	Transfers []PaymentTransfer `json:"transfers"`
}

// NewSolutionTransaction builds a queued solution transaction.
func NewSolutionTransaction(data SolutionData, block uint64) (Transaction, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Transaction{}, fmt.Errorf("marshal solution data: %w", err)
	}
	return Transaction{
		TxType:          TxSolution,
		TxData:          raw,
		Status:          TxQueued,
		ChallengeNumber: data.ChallengeNumber,
		Block:           block,
	}, nil
}

// NewBatchedPaymentTransaction builds a queued batched payment transaction.
func NewBatchedPaymentTransaction(data BatchedPaymentData, block uint64) (Transaction, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Transaction{}, fmt.Errorf("marshal payment data: %w", err)
	}
	return Transaction{
		TxType:    TxBatchedPayment,
		TxData:    raw,
		Status:    TxQueued,
		BatchUUID: data.BatchUUID,
		Block:     block,
	}, nil
}

// Solution decodes the solution payload.
func (t Transaction) Solution() (SolutionData, error) {
	var data SolutionData
	if t.TxType != TxSolution {
		return data, fmt.Errorf("transaction %d is %s, not solution", t.ID, t.TxType)
	}
	if err := json.Unmarshal(t.TxData, &data); err != nil {
		return data, fmt.Errorf("unmarshal solution data: %w", err)
	}
	return data, nil
}

// BatchedPayment decodes the batched payment payload.
func (t Transaction) BatchedPayment() (BatchedPaymentData, error) {
	var data BatchedPaymentData
	if t.TxType != TxBatchedPayment {
		return data, fmt.Errorf("transaction %d is %s, not batched_payment", t.ID, t.TxType)
	}
	if err := json.Unmarshal(t.TxData, &data); err != nil {
		return data, fmt.Errorf("unmarshal payment data: %w", err)
	}
	return data, nil
}
