package model

import "time"

// BalancePayment is a single transfer owed to a miner.
type BalancePayment struct {
	ID           uint64
	MinerAddress string
	AmountToPay  uint64
	Block        uint64
	BatchUUID    string
	Confirmed    bool
	CreatedAt    time.Time
}
