package model

import "time"

// PoolMintStatus describes settlement progress of a pool mint.
type PoolMintStatus uint8

const (
	// MintUnprocessed marks a mint waiting for settlement.
	MintUnprocessed PoolMintStatus = 1
	// MintProcessed marks a settled mint.
	MintProcessed PoolMintStatus = 2
	// MintNoMinerShares marks a mint without eligible shares.
	MintNoMinerShares PoolMintStatus = 3
	// MintNoContractData marks a mint whose epoch is unknown.
	MintNoContractData PoolMintStatus = 4
)

// String implements fmt.Stringer.
func (s PoolMintStatus) String() string {
	switch s {
	case MintUnprocessed:
		return "unprocessed"
	case MintProcessed:
		return "processed"
	case MintNoMinerShares:
		return "no_miner_shares"
	case MintNoContractData:
		return "no_contract_data"
	default:
		return "unknown"
	}
}

// PoolMint is a block reward the pool received on-chain.
type PoolMint struct {
	ID          uint64
	EpochCount  uint64
	BlockReward uint64
	TxHash      string
	PoolStatus  PoolMintStatus
	CreatedAt   time.Time
}
