package model

// TallyStatus describes settlement progress of a difficulty tally row.
type TallyStatus uint8

const (
	// TallyOpen marks a row that has not been settled yet.
	TallyOpen TallyStatus = 1
	// TallySettled marks a row credited to the miner.
	TallySettled TallyStatus = 2
	// TallyEmptyWindow marks a row whose window held no pool difficulty.
	TallyEmptyWindow TallyStatus = 3
	// TallyNoContract marks a row whose epoch data was missing.
	TallyNoContract TallyStatus = 4
	// TallyBelowReserve marks a row forfeited because pool liquidity was under the reserve.
	TallyBelowReserve TallyStatus = 5
)

// String implements fmt.Stringer.
func (s TallyStatus) String() string {
	switch s {
	case TallyOpen:
		return "open"
	case TallySettled:
		return "settled"
	case TallyEmptyWindow:
		return "empty_window"
	case TallyNoContract:
		return "no_contract"
	case TallyBelowReserve:
		return "below_reserve"
	default:
		return "unknown"
	}
}

// DifficultyTally accumulates a miner's difficulty for one challenge and class.
type DifficultyTally struct {
	ID              uint64
	MinerAddress    string
	ChallengeNumber string
	MinerClass      MinerClass
	TotalDifficulty uint64
	Status          TallyStatus
}

// PoolDifficultyTotal is the pool-wide difficulty for one challenge and class.
type PoolDifficultyTotal struct {
	ChallengeNumber string
	MinerClass      MinerClass
	TotalDifficulty uint64
}
