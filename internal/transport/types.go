package transport

import (
	"context"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/service/gatekeeper"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Intake interface {
		Submit(ctx context.Context, share gatekeeper.ShareSubmission) (gatekeeper.Result, error)
	}
	EpochReader interface {
		ChallengeNumber() string
		MinimumShareTarget(class model.MinerClass) string
		PoolSuspended() bool
	}
)
