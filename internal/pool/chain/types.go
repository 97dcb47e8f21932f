// Package chain describes what the pool needs from the token chain.
package chain

import (
	"errors"
	"math/big"
)

var (
	// ErrReceiptNotFound is returned when a transaction has not been mined yet.
	ErrReceiptNotFound = errors.New("receipt not found")
	// ErrExecutionReverted is returned when a call would revert.
	ErrExecutionReverted = errors.New("execution reverted")
)

// Epoch is the mining state reported by the token contract.
type Epoch struct {
	EpochCount       uint64
	ChallengeNumber  string
	MiningTarget     *big.Int
	MiningDifficulty uint64
	MiningReward     uint64
}

// Call is an encoded contract invocation.
type Call struct {
	To   string
	Data []byte
}

// MintEvent is the token contract's Mint log.
type MintEvent struct {
	From               string
	Reward             uint64
	EpochCount         uint64
	NewChallengeNumber string
}

// Receipt is the outcome of a mined transaction.
type Receipt struct {
	TxHash      string
	Success     bool
	BlockNumber uint64
	GasUsed     uint64
	// Mint is set when the transaction emitted a Mint event.
	Mint *MintEvent
}
