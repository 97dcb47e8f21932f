package archive

import (
	"context"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertShares(ctx context.Context, shares []model.PendingShare) error
		InsertRewards(ctx context.Context, rewards []model.RewardRecord) error
	}
	Metrics interface {
		ObserveFlush(kind string, size int, err error)
		ObserveDropped(kind string)
	}
)
