package model

import "time"

// MinerAccount holds the running token ledger of a miner.
type MinerAccount struct {
	MinerAddress              string
	AlltimeTokenBalance       uint64
	TokensAwarded             uint64
	TokensReceived            uint64
	ShareCount                uint64
	LastSubmittedSolutionTime time.Time
	CreatedAt                 time.Time
}

// Owed returns the credit not yet moved into a payment.
func (a MinerAccount) Owed() uint64 {
	if a.AlltimeTokenBalance <= a.TokensAwarded {
		return 0
	}
	return a.AlltimeTokenBalance - a.TokensAwarded
}
