package gatekeeper

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/config"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/pow"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	EpochSource interface {
		Current() (model.ChallengeEpoch, bool)
	}
	PolicySource interface {
		Get() config.Policy
	}
	Verifier interface {
		Verify(work pow.Work) (bool, error)
	}
	Repository interface {
		PendingShareExists(ctx context.Context, digest string) (bool, error)
		InsertPendingShare(ctx context.Context, share model.PendingShare) (bool, error)
		IncrementTally(ctx context.Context, miner, challenge string, class model.MinerClass, difficulty uint64) error
		IncrementPoolTotal(ctx context.Context, challenge string, class model.MinerClass, difficulty uint64) error
		ClaimShareSlot(ctx context.Context, miner string, at time.Time, spacing time.Duration) (bool, error)
		InsertTransaction(ctx context.Context, tx model.Transaction) (model.Transaction, error)
	}
	DigestCache interface {
		Get(key string) ([]byte, error)
		Set(key string, entry []byte) error
	}
	Archiver interface {
		ArchiveShare(share model.PendingShare)
	}
	Metrics interface {
		ObserveShare(outcome string, started time.Time)
		ObserveCredit(class string, difficulty uint64)
		ObserveSolution()
	}
	Submitter interface {
		Submit(ctx context.Context, s ShareSubmission) Result
	}
	IntakeMetrics interface {
		SetIntakeQueued(n int)
	}
)
