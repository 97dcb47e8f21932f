package settlement

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Breakdown is one miner's share of a block reward.
type Breakdown struct {
	RewardFactor decimal.Decimal
	Base         decimal.Decimal
	Bonus        decimal.Decimal
	Net          decimal.Decimal
}

// Tokens is the whole-token amount credited for the breakdown.
func (b Breakdown) Tokens() uint64 {
	return floorUint(b.Net)
}

// BonusTokens is the part of Tokens paid on top of the base reward.
func (b Breakdown) BonusTokens() uint64 {
	base := floorUint(decimal.Min(b.Base, b.Net))
	tokens := b.Tokens()
	if tokens <= base {
		return 0
	}
	return tokens - base
}

// Reward computes a miner's PPLNS reward. feeFactor and bonusFactor are fractions that
// are already clamped by the policy.
func Reward(minerDifficulty, poolDifficulty, blockReward uint64, feeFactor, bonusFactor decimal.Decimal) Breakdown {
	factor := decimal.Zero
	if poolDifficulty > 0 {
		factor = fromUint(minerDifficulty).Div(fromUint(poolDifficulty))
		if factor.GreaterThan(decimal.NewFromInt(1)) {
			factor = decimal.NewFromInt(1)
		}
	}

	reward := fromUint(blockReward)
	base := factor.Mul(reward).Mul(decimal.NewFromInt(1).Sub(feeFactor))
	bonus := base.Mul(bonusFactor)
	net := decimal.Min(base.Add(bonus), rewardCap(blockReward))

	return Breakdown{RewardFactor: factor, Base: base, Bonus: bonus, Net: net}
}

// rewardCap is the most a single mint may pay out in total.
func rewardCap(blockReward uint64) decimal.Decimal {
	return fromUint(blockReward).Mul(decimal.NewFromInt(2))
}

func floorUint(d decimal.Decimal) uint64 {
	if !d.IsPositive() {
		return 0
	}
	return d.Floor().BigInt().Uint64()
}

func fromUint(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}
