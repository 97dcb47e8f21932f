package model

import "time"

// RewardRecord is the audit row for one miner's credit from one mint.
type RewardRecord struct {
	MinerAddress    string
	EpochCount      uint64
	ChallengeNumber string
	SharesCredited  uint64
	PoolTotalShares uint64
	TokensAwarded   uint64
	BonusAwarded    uint64
	CreatedAt       time.Time
}
