package model

import (
	"math/big"
	"time"
)

// ChallengeEpoch is one round of mining work as reported by the token contract.
type ChallengeEpoch struct {
	EpochCount       uint64
	ChallengeNumber  string
	MiningTarget     *big.Int
	MiningDifficulty uint64
	MiningReward     uint64
	CreatedAt        time.Time
}

// SameChallenge reports whether other describes the same challenge as e.
func (e ChallengeEpoch) SameChallenge(other ChallengeEpoch) bool {
	return e.ChallengeNumber == other.ChallengeNumber && e.EpochCount == other.EpochCount
}

// MaximumTarget is the easiest target the token contract accepts (2^234).
var MaximumTarget = new(big.Int).Lsh(big.NewInt(1), 234)

// TargetForDifficulty returns MaximumTarget / difficulty.
func TargetForDifficulty(difficulty uint64) *big.Int {
	if difficulty == 0 {
		return new(big.Int).Set(MaximumTarget)
	}
	return new(big.Int).Div(MaximumTarget, new(big.Int).SetUint64(difficulty))
}

// DifficultyForTarget returns MaximumTarget / target, saturating at the uint64 range.
func DifficultyForTarget(target *big.Int) uint64 {
	if target == nil || target.Sign() <= 0 {
		return 0
	}
	d := new(big.Int).Div(MaximumTarget, target)
	if !d.IsUint64() {
		return ^uint64(0)
	}
	return d.Uint64()
}
