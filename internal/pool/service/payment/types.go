package payment

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/config"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		AccountsWithOwed(ctx context.Context, after string, limit int) ([]model.MinerAccount, error)
		AdvanceTokensAwarded(ctx context.Context, miner string, expected, next uint64) (bool, error)
		InsertBalancePayment(ctx context.Context, payment model.BalancePayment) (model.BalancePayment, error)
		UnbatchedPayments(ctx context.Context, limit int) ([]model.BalancePayment, error)
		CreateBatch(ctx context.Context, ids []uint64, batchUUID string, tx model.Transaction) (model.Transaction, error)
		State(ctx context.Context, key string) (string, error)
		SetState(ctx context.Context, key, value string) error
	}
	ChainHead interface {
		BlockNumber(ctx context.Context) (uint64, error)
	}
	PolicySource interface {
		Get() config.Policy
	}
	Metrics interface {
		ObservePass(pass string, err error, started time.Time)
		ObservePayments(n int)
		ObserveBatch(size int)
	}
)
