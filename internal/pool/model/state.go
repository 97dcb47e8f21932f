package model

// PoolState keys shared between processes.
const (
	StateLastFullPayoutAt = "last_full_payout_at"
)
