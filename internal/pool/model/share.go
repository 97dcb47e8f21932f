package model

import "time"

// PendingShare is an accepted share waiting to be settled. Shares accepted inside the
// spacing window are stored with Credited false so a replay of the digest stays a duplicate.
type PendingShare struct {
	MinerAddress    string
	Digest          string
	ChallengeNumber string
	Difficulty      uint64
	IsSolution      bool
	Credited        bool
	MinerClass      MinerClass
	Time            time.Time
}
