package coordinator

import (
	"context"
	"math/big"
	"time"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/chain"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/config"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/repository/store"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		CountTransactions(ctx context.Context, txType model.TxType, status model.TxStatus) (int64, error)
		QueuedSolution(ctx context.Context, challenge string) (model.Transaction, error)
		TransactionsByStatus(ctx context.Context, txType model.TxType, status model.TxStatus, limit int) ([]model.Transaction, error)
		SolutionsForChallenge(ctx context.Context, challenge string, statuses []model.TxStatus) ([]model.Transaction, error)
		TransitionTransaction(ctx context.Context, id uint64, from, to model.TxStatus, changes store.TxChanges) (bool, error)
		RecordBroadcast(ctx context.Context, id uint64, hash, gasPrice string) (bool, error)
		EpochByChallenge(ctx context.Context, challenge string) (model.ChallengeEpoch, error)
		InsertPoolMint(ctx context.Context, mint model.PoolMint) (bool, error)
		PaymentsByBatch(ctx context.Context, batchUUID string) ([]model.BalancePayment, error)
		ConfirmPayment(ctx context.Context, id uint64) (bool, error)
		CreditTokensReceived(ctx context.Context, miner string, amount uint64) error
	}
	Chain interface {
		SolutionCall(nonce, digest string) (chain.Call, error)
		PaymentCall(paymentID [16]byte, recipients []string, amounts []uint64) (chain.Call, error)
		EstimateGas(ctx context.Context, call chain.Call) (uint64, error)
		SuggestGasPrice(ctx context.Context) (*big.Int, error)
		SendTransaction(ctx context.Context, call chain.Call, gasLimit uint64, gasPrice *big.Int) (string, error)
		TransactionReceipt(ctx context.Context, hash string) (chain.Receipt, error)
		BlockNumber(ctx context.Context) (uint64, error)
	}
	EpochSource interface {
		Current() (model.ChallengeEpoch, bool)
	}
	PolicySource interface {
		Get() config.Policy
	}
	Metrics interface {
		ObserveBroadcast(txType string, err error, started time.Time)
		ObserveTransition(txType, from, to string)
	}
)
