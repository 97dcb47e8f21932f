package epoch

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/chain"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/notify"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainReader interface {
		CurrentEpoch(ctx context.Context) (chain.Epoch, error)
	}
	Repository interface {
		InsertEpoch(ctx context.Context, epoch model.ChallengeEpoch) error
		EnsurePoolTotals(ctx context.Context, challenge string, classes []model.MinerClass) error
		LatestEpoch(ctx context.Context) (model.ChallengeEpoch, error)
	}
	EpochReader interface {
		LatestEpoch(ctx context.Context) (model.ChallengeEpoch, error)
	}
	Publisher interface {
		Publish(ctx context.Context, topic string, payload []byte) error
	}
	Subscriber interface {
		Subscribe(topic string) (<-chan notify.Message, func())
	}
	TrackerMetrics interface {
		ObservePoll(err error, started time.Time)
		ObserveChange(epoch uint64)
	}
)
