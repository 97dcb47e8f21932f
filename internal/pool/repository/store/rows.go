package store

import (
	"fmt"
	"math/big"
	"time"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
)

type epochRow struct {
	EpochCount       uint64 `gorm:"primaryKey;autoIncrement:false"`
	ChallengeNumber  string `gorm:"size:66;not null;index"`
	MiningTarget     string `gorm:"size:80;not null"`
	MiningDifficulty uint64 `gorm:"not null"`
	MiningReward     uint64 `gorm:"not null"`
	CreatedAt        time.Time
}

func (epochRow) TableName() string { return "challenge_epochs" }

type pendingShareRow struct {
	ID              uint64    `gorm:"primaryKey"`
	Digest          string    `gorm:"size:66;not null;uniqueIndex"`
	MinerAddress    string    `gorm:"size:42;not null;index"`
	ChallengeNumber string    `gorm:"size:66;not null;index"`
	Difficulty      uint64    `gorm:"not null"`
	IsSolution      bool      `gorm:"not null"`
	Credited        bool      `gorm:"not null"`
	MinerClass      uint8     `gorm:"not null"`
	Time            time.Time `gorm:"not null"`
}

func (pendingShareRow) TableName() string { return "pending_shares" }

type tallyRow struct {
	ID              uint64 `gorm:"primaryKey"`
	MinerAddress    string `gorm:"size:42;not null;uniqueIndex:idx_tally_key"`
	ChallengeNumber string `gorm:"size:66;not null;uniqueIndex:idx_tally_key;index"`
	MinerClass      uint8  `gorm:"not null;uniqueIndex:idx_tally_key"`
	TotalDifficulty uint64 `gorm:"not null"`
	Status          uint8  `gorm:"not null;index"`
}

func (tallyRow) TableName() string { return "difficulty_tallies" }

type poolTotalRow struct {
	ChallengeNumber string `gorm:"primaryKey;size:66"`
	MinerClass      uint8  `gorm:"primaryKey;autoIncrement:false"`
	TotalDifficulty uint64 `gorm:"not null"`
}

func (poolTotalRow) TableName() string { return "pool_difficulty_totals" }

type mintRow struct {
	ID          uint64 `gorm:"primaryKey"`
	EpochCount  uint64 `gorm:"not null;index"`
	BlockReward uint64 `gorm:"not null"`
	TxHash      string `gorm:"size:66;not null;uniqueIndex"`
	PoolStatus  uint8  `gorm:"not null;index"`
	CreatedAt   time.Time
}

func (mintRow) TableName() string { return "pool_mints" }

type rewardRow struct {
	ID              uint64 `gorm:"primaryKey"`
	MinerAddress    string `gorm:"size:42;not null;uniqueIndex:idx_reward_key"`
	EpochCount      uint64 `gorm:"not null;uniqueIndex:idx_reward_key"`
	ChallengeNumber string `gorm:"size:66;not null"`
	SharesCredited  uint64 `gorm:"not null"`
	PoolTotalShares uint64 `gorm:"not null"`
	TokensAwarded   uint64 `gorm:"not null"`
	BonusAwarded    uint64 `gorm:"not null"`
	CreatedAt       time.Time
}

func (rewardRow) TableName() string { return "reward_records" }

type accountRow struct {
	MinerAddress              string `gorm:"primaryKey;size:42"`
	AlltimeTokenBalance       uint64 `gorm:"not null;default:0"`
	TokensAwarded             uint64 `gorm:"not null;default:0"`
	TokensReceived            uint64 `gorm:"not null;default:0"`
	ShareCount                uint64 `gorm:"not null;default:0"`
	LastSubmittedSolutionTime time.Time
	CreatedAt                 time.Time
}

func (accountRow) TableName() string { return "miner_accounts" }

type paymentRow struct {
	ID           uint64 `gorm:"primaryKey"`
	MinerAddress string `gorm:"size:42;not null;index"`
	AmountToPay  uint64 `gorm:"not null"`
	Block        uint64 `gorm:"not null"`
	BatchUUID    string `gorm:"size:36;not null;default:'';index"`
	Confirmed    bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
}

func (paymentRow) TableName() string { return "balance_payments" }

type transactionRow struct {
	ID              uint64 `gorm:"primaryKey"`
	TxType          string `gorm:"size:32;not null;index:idx_tx_type_status"`
	Status          string `gorm:"size:16;not null;index:idx_tx_type_status"`
	TxData          string `gorm:"type:text;not null"`
	TxHash          string `gorm:"size:66;not null;default:'';index"`
	ChallengeNumber string `gorm:"size:66;not null;default:'';index"`
	BatchUUID       string `gorm:"size:36;not null;default:'';index"`
	Block           uint64 `gorm:"not null"`
	GasPrice        string `gorm:"size:80;not null;default:''"`
	Attempts        uint32 `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (transactionRow) TableName() string { return "transactions" }

type stateRow struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (stateRow) TableName() string { return "pool_state" }

func allRows() []any {
	return []any{
		&epochRow{},
		&pendingShareRow{},
		&tallyRow{},
		&poolTotalRow{},
		&mintRow{},
		&rewardRow{},
		&accountRow{},
		&paymentRow{},
		&transactionRow{},
		&stateRow{},
	}
}

func epochToRow(e model.ChallengeEpoch) epochRow {
	target := "0x0"
	if e.MiningTarget != nil {
		target = "0x" + e.MiningTarget.Text(16)
	}
	return epochRow{
		EpochCount:       e.EpochCount,
		ChallengeNumber:  e.ChallengeNumber,
		MiningTarget:     target,
		MiningDifficulty: e.MiningDifficulty,
		MiningReward:     e.MiningReward,
		CreatedAt:        e.CreatedAt,
	}
}

func (r epochRow) toModel() (model.ChallengeEpoch, error) {
	target, ok := new(big.Int).SetString(trimHex(r.MiningTarget), 16)
	if !ok {
		return model.ChallengeEpoch{}, fmt.Errorf("epoch %d: malformed mining target %q", r.EpochCount, r.MiningTarget)
	}
	return model.ChallengeEpoch{
		EpochCount:       r.EpochCount,
		ChallengeNumber:  r.ChallengeNumber,
		MiningTarget:     target,
		MiningDifficulty: r.MiningDifficulty,
		MiningReward:     r.MiningReward,
		CreatedAt:        r.CreatedAt,
	}, nil
}

func trimHex(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

func (r tallyRow) toModel() model.DifficultyTally {
	return model.DifficultyTally{
		ID:              r.ID,
		MinerAddress:    r.MinerAddress,
		ChallengeNumber: r.ChallengeNumber,
		MinerClass:      model.MinerClass(r.MinerClass),
		TotalDifficulty: r.TotalDifficulty,
		Status:          model.TallyStatus(r.Status),
	}
}

func (r mintRow) toModel() model.PoolMint {
	return model.PoolMint{
		ID:          r.ID,
		EpochCount:  r.EpochCount,
		BlockReward: r.BlockReward,
		TxHash:      r.TxHash,
		PoolStatus:  model.PoolMintStatus(r.PoolStatus),
		CreatedAt:   r.CreatedAt,
	}
}

func (r rewardRow) toModel() model.RewardRecord {
	return model.RewardRecord{
		MinerAddress:    r.MinerAddress,
		EpochCount:      r.EpochCount,
		ChallengeNumber: r.ChallengeNumber,
		SharesCredited:  r.SharesCredited,
		PoolTotalShares: r.PoolTotalShares,
		TokensAwarded:   r.TokensAwarded,
		BonusAwarded:    r.BonusAwarded,
		CreatedAt:       r.CreatedAt,
	}
}

func (r accountRow) toModel() model.MinerAccount {
	return model.MinerAccount{
		MinerAddress:              r.MinerAddress,
		AlltimeTokenBalance:       r.AlltimeTokenBalance,
		TokensAwarded:             r.TokensAwarded,
		TokensReceived:            r.TokensReceived,
		ShareCount:                r.ShareCount,
		LastSubmittedSolutionTime: r.LastSubmittedSolutionTime,
		CreatedAt:                 r.CreatedAt,
	}
}

func (r paymentRow) toModel() model.BalancePayment {
	return model.BalancePayment{
		ID:           r.ID,
		MinerAddress: r.MinerAddress,
		AmountToPay:  r.AmountToPay,
		Block:        r.Block,
		BatchUUID:    r.BatchUUID,
		Confirmed:    r.Confirmed,
		CreatedAt:    r.CreatedAt,
	}
}

func (r transactionRow) toModel() model.Transaction {
	return model.Transaction{
		ID:              r.ID,
		TxType:          model.TxType(r.TxType),
		TxData:          []byte(r.TxData),
		TxHash:          r.TxHash,
		Status:          model.TxStatus(r.Status),
		ChallengeNumber: r.ChallengeNumber,
		BatchUUID:       r.BatchUUID,
		Block:           r.Block,
		GasPrice:        r.GasPrice,
		Attempts:        r.Attempts,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
