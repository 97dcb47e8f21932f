package settlement

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/config"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		UnprocessedMints(ctx context.Context, limit int) ([]model.PoolMint, error)
		EpochByCount(ctx context.Context, count uint64) (model.ChallengeEpoch, error)
		EpochsInRange(ctx context.Context, from, to uint64) ([]model.ChallengeEpoch, error)
		TalliesForChallenges(ctx context.Context, challenges []string) ([]model.DifficultyTally, error)
		PoolTotalsForChallenges(ctx context.Context, challenges []string) ([]model.PoolDifficultyTotal, error)
		ClaimTally(ctx context.Context, id uint64, from, to model.TallyStatus) (bool, error)
		SettleReward(ctx context.Context, tallyIDs []uint64, record model.RewardRecord) (int, bool, error)
		ClaimMint(ctx context.Context, id uint64, from, to model.PoolMintStatus) (bool, error)
	}
	Liquidity interface {
		PoolTokenBalance(ctx context.Context) (uint64, error)
	}
	PolicySource interface {
		Get() config.Policy
	}
	Archiver interface {
		ArchiveReward(record model.RewardRecord)
	}
	Metrics interface {
		ObserveMint(result string, err error, started time.Time)
		ObserveCredit(amount uint64)
		ObserveForfeit(rows int)
	}
)
