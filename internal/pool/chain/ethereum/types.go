package ethereum

import (
	"context"
	"math/big"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// Backend is the subset of ethclient.Client the pool uses.
	Backend interface {
		BlockNumber(ctx context.Context) (uint64, error)
		CallContract(ctx context.Context, msg geth.CallMsg, blockNumber *big.Int) ([]byte, error)
		EstimateGas(ctx context.Context, msg geth.CallMsg) (uint64, error)
		SuggestGasPrice(ctx context.Context) (*big.Int, error)
		PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
		SendTransaction(ctx context.Context, tx *types.Transaction) error
		TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	}
)
