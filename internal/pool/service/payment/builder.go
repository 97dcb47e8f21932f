// Package payment turns credited balances into balance payments and groups them into
// batched payment transactions.
package payment

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/config"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/repository/store"
	"github.com/goodnatureofminers/tokenpool-backend/pkg/workerpool"
)

const (
	passAccrual  = "accrual"
	passBatching = "batching"

	defaultPageSize = 200
	defaultWorkers  = 4
)

// Builder runs the accrual and batching passes.
type Builder struct {
	logger   *zap.Logger
	repo     Repository
	chain    ChainHead
	policy   PolicySource
	metrics  Metrics
	now      func() time.Time
	newUUID  func() uuid.UUID
	pageSize int
	workers  int
}

// NewBuilder builds a Builder.
func NewBuilder(repo Repository, chain ChainHead, policy PolicySource, metrics Metrics, logger *zap.Logger) (*Builder, error) {
	if repo == nil {
		return nil, errors.New("payment repository is required")
	}
	if chain == nil {
		return nil, errors.New("payment chain head is required")
	}
	if policy == nil {
		return nil, errors.New("payment policy is required")
	}
	if metrics == nil {
		return nil, errors.New("payment metrics is required")
	}
	return &Builder{
		logger:   logger.Named("payment_builder"),
		repo:     repo,
		chain:    chain,
		policy:   policy,
		metrics:  metrics,
		now:      time.Now,
		newUUID:  uuid.New,
		pageSize: defaultPageSize,
		workers:  defaultWorkers,
	}, nil
}

// Run accrues payments and then tries to queue one batch.
func (b *Builder) Run(ctx context.Context) error {
	if err := b.Accrue(ctx); err != nil {
		return err
	}
	return b.Batch(ctx)
}

// Accrue creates a BalancePayment for every miner whose owed balance is payable.
func (b *Builder) Accrue(ctx context.Context) (err error) {
	started := time.Now()
	defer func() {
		b.metrics.ObservePass(passAccrual, err, started)
	}()

	policy := b.policy.Get()
	now := b.now().UTC()
	fullPayout, err := b.fullPayoutDue(ctx, now, policy.FullPayoutInterval)
	if err != nil {
		return err
	}

	head, err := b.chain.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("read chain head: %w", err)
	}

	var created atomic.Int64
	after := ""
	for {
		accounts, err := b.repo.AccountsWithOwed(ctx, after, b.pageSize)
		if err != nil {
			return fmt.Errorf("load accounts with owed balance: %w", err)
		}
		if len(accounts) == 0 {
			break
		}

		err = workerpool.ProcessAll(ctx, b.workers, accounts, func(ctx context.Context, account model.MinerAccount) error {
			paid, err := b.accrue(ctx, account, head, fullPayout, policy)
			if paid {
				created.Add(1)
			}
			return err
		})
		if err != nil {
			return err
		}

		after = accounts[len(accounts)-1].MinerAddress
		if len(accounts) < b.pageSize {
			break
		}
	}

	b.metrics.ObservePayments(int(created.Load()))
	if fullPayout {
		if err := b.repo.SetState(ctx, model.StateLastFullPayoutAt, now.Format(time.RFC3339)); err != nil {
			return fmt.Errorf("record full payout: %w", err)
		}
		b.logger.Info("full payout pass completed", zap.Int64("payments", created.Load()))
	}
	return nil
}

func (b *Builder) accrue(ctx context.Context, account model.MinerAccount, head uint64, fullPayout bool, policy config.Policy) (bool, error) {
	owed := account.Owed()
	if !payable(owed, fullPayout, policy) {
		return false, nil
	}

	ok, err := b.repo.AdvanceTokensAwarded(ctx, account.MinerAddress, account.TokensAwarded, account.TokensAwarded+owed)
	if err != nil {
		return false, fmt.Errorf("advance tokens awarded for %s: %w", account.MinerAddress, err)
	}
	if !ok {
		b.logger.Debug("tokens awarded changed concurrently", zap.String("miner", account.MinerAddress))
		return false, nil
	}

	payment, err := b.repo.InsertBalancePayment(ctx, model.BalancePayment{
		MinerAddress: account.MinerAddress,
		AmountToPay:  owed,
		Block:        head,
		CreatedAt:    b.now().UTC(),
	})
	if err != nil {
		return false, fmt.Errorf("insert balance payment for %s: %w", account.MinerAddress, err)
	}
	b.logger.Info("balance payment created",
		zap.String("miner", account.MinerAddress),
		zap.Uint64("payment_id", payment.ID),
		zap.Uint64("amount", owed),
	)
	return true, nil
}

func payable(owed uint64, fullPayout bool, policy config.Policy) bool {
	if owed > policy.MinTransfer {
		return true
	}
	return fullPayout && owed > policy.DustThreshold
}

func (b *Builder) fullPayoutDue(ctx context.Context, now time.Time, interval time.Duration) (bool, error) {
	raw, err := b.repo.State(ctx, model.StateLastFullPayoutAt)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return true, nil
		}
		return false, fmt.Errorf("load last full payout: %w", err)
	}
	last, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		b.logger.Warn("unparsable last full payout, treating as due", zap.String("value", raw))
		return true, nil
	}
	return now.Sub(last) >= interval, nil
}

// Batch groups unbatched payments into one batched payment transaction when enough
// valid payments are waiting.
func (b *Builder) Batch(ctx context.Context) (err error) {
	started := time.Now()
	defer func() {
		b.metrics.ObservePass(passBatching, err, started)
	}()

	policy := b.policy.Get()
	// Over-fetch so malformed rows left behind cannot starve the batch.
	candidates, err := b.repo.UnbatchedPayments(ctx, policy.MaxBatchSize*2)
	if err != nil {
		return fmt.Errorf("load unbatched payments: %w", err)
	}

	valid := make([]model.BalancePayment, 0, policy.MaxBatchSize)
	for _, p := range candidates {
		if len(valid) == policy.MaxBatchSize {
			break
		}
		if !validDestination(p.MinerAddress) || p.AmountToPay == 0 {
			b.logger.Warn("payment left out of batch",
				zap.Uint64("payment_id", p.ID),
				zap.String("miner", p.MinerAddress),
				zap.Uint64("amount", p.AmountToPay),
			)
			continue
		}
		valid = append(valid, p)
	}
	if len(valid) < policy.MinBatchSize {
		return nil
	}

	head, err := b.chain.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("read chain head: %w", err)
	}

	batchID := b.newUUID().String()
	data := model.BatchedPaymentData{BatchUUID: batchID, Transfers: make([]model.PaymentTransfer, 0, len(valid))}
	ids := make([]uint64, 0, len(valid))
	for _, p := range valid {
		ids = append(ids, p.ID)
		data.Transfers = append(data.Transfers, model.PaymentTransfer{
			PaymentID:    p.ID,
			MinerAddress: p.MinerAddress,
			Amount:       p.AmountToPay,
		})
	}

	tx, err := model.NewBatchedPaymentTransaction(data, head)
	if err != nil {
		return err
	}
	queued, err := b.repo.CreateBatch(ctx, ids, batchID, tx)
	if errors.Is(err, store.ErrConflict) {
		b.logger.Warn("payments taken by another batch, retrying next pass", zap.String("batch_uuid", batchID), zap.Error(err))
		return nil
	}
	if err != nil {
		return fmt.Errorf("queue batched payment %s: %w", batchID, err)
	}

	b.metrics.ObserveBatch(len(data.Transfers))
	b.logger.Info("batched payment queued",
		zap.String("batch_uuid", batchID),
		zap.Uint64("tx_id", queued.ID),
		zap.Int("transfers", len(data.Transfers)),
	)
	return nil
}

func validDestination(address string) bool {
	return len(address) == 2+2*common.AddressLength && common.IsHexAddress(address) &&
		common.HexToAddress(address) != (common.Address{})
}
