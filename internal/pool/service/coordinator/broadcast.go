package coordinator

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/chain"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/repository/store"
)

// BroadcastSolutions sends one queued solution while no solution is pending. Queued solutions
// of an earlier challenge are outdated instead of sent.
func (c *Coordinator) BroadcastSolutions(ctx context.Context) error {
	busy, err := c.hasPending(ctx, model.TxSolution)
	if err != nil || busy {
		return err
	}

	current, ok := c.epochs.Current()
	if !ok {
		c.logger.Debug("no current epoch, solution broadcast deferred")
		return nil
	}

	tx, err := c.repo.QueuedSolution(ctx, current.ChallengeNumber)
	switch {
	case err == nil:
		return c.broadcastSolution(ctx, tx)
	case !errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("load queued solution: %w", err)
	}

	queued, err := c.repo.TransactionsByStatus(ctx, model.TxSolution, model.TxQueued, 1)
	if err != nil {
		return fmt.Errorf("load queued solutions: %w", err)
	}
	if len(queued) == 0 {
		return nil
	}
	if queued[0].ChallengeNumber == current.ChallengeNumber {
		return c.broadcastSolution(ctx, queued[0])
	}
	return c.outdateChallenge(ctx, queued[0].ChallengeNumber)
}

// outdateChallenge retires every open solution of a superseded challenge. Rows that were
// already sent are finalized instead when their receipt shows them mined.
func (c *Coordinator) outdateChallenge(ctx context.Context, challenge string) error {
	txs, err := c.repo.SolutionsForChallenge(ctx, challenge, []model.TxStatus{model.TxQueued, model.TxPending, model.TxSkipped})
	if err != nil {
		return fmt.Errorf("load solutions for %s: %w", challenge, err)
	}

	var errs []error
	for _, tx := range txs {
		if tx.TxHash != "" {
			mined, err := c.settleIfMined(ctx, tx)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if mined {
				continue
			}
		}
		if _, err := c.transition(ctx, tx, tx.Status, model.TxOutdated, store.TxChanges{}); err != nil {
			errs = append(errs, err)
		}
	}
	c.logger.Info("stale challenge outdated", zap.String("challenge", challenge), zap.Int("transactions", len(txs)))
	return errors.Join(errs...)
}

func (c *Coordinator) broadcastSolution(ctx context.Context, tx model.Transaction) error {
	data, err := tx.Solution()
	if err != nil {
		return c.discard(ctx, tx, err)
	}
	call, err := c.chain.SolutionCall(data.Nonce, data.Digest)
	if err != nil {
		return c.discard(ctx, tx, err)
	}
	return c.broadcast(ctx, tx, call)
}

// BroadcastPayments sends the oldest queued batched payment while no payment is pending.
func (c *Coordinator) BroadcastPayments(ctx context.Context) error {
	busy, err := c.hasPending(ctx, model.TxBatchedPayment)
	if err != nil || busy {
		return err
	}

	queued, err := c.repo.TransactionsByStatus(ctx, model.TxBatchedPayment, model.TxQueued, 1)
	if err != nil {
		return fmt.Errorf("load queued payments: %w", err)
	}
	if len(queued) == 0 {
		return nil
	}
	tx := queued[0]

	call, err := c.paymentCall(tx)
	if err != nil {
		return c.discard(ctx, tx, err)
	}
	return c.broadcast(ctx, tx, call)
}

func (c *Coordinator) paymentCall(tx model.Transaction) (chain.Call, error) {
	data, err := tx.BatchedPayment()
	if err != nil {
		return chain.Call{}, err
	}
	id, err := uuid.Parse(data.BatchUUID)
	if err != nil {
		return chain.Call{}, fmt.Errorf("parse batch uuid %q: %w", data.BatchUUID, err)
	}
	if len(data.Transfers) == 0 {
		return chain.Call{}, fmt.Errorf("batch %s has no transfers", data.BatchUUID)
	}

	recipients := make([]string, 0, len(data.Transfers))
	amounts := make([]uint64, 0, len(data.Transfers))
	for _, transfer := range data.Transfers {
		recipients = append(recipients, transfer.MinerAddress)
		amounts = append(amounts, transfer.Amount)
	}
	return c.chain.PaymentCall([16]byte(id), recipients, amounts)
}

// discard outdates a queued transaction whose payload cannot be turned into a call.
func (c *Coordinator) discard(ctx context.Context, tx model.Transaction, cause error) error {
	c.logger.Error("undeliverable transaction outdated",
		zap.Uint64("tx_id", tx.ID),
		zap.String("tx_type", string(tx.TxType)),
		zap.Error(cause),
	)
	if _, err := c.transition(ctx, tx, model.TxQueued, model.TxOutdated, store.TxChanges{}); err != nil {
		return err
	}
	return nil
}

// broadcast estimates, claims and sends tx. A reverting estimate leaves it queued; a send
// that fails twice puts it back to queued.
func (c *Coordinator) broadcast(ctx context.Context, tx model.Transaction, call chain.Call) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.ObserveBroadcast(string(tx.TxType), err, started)
	}()
	logger := c.logger.With(zap.Uint64("tx_id", tx.ID), zap.String("tx_type", string(tx.TxType)))

	gas, err := c.chain.EstimateGas(ctx, call)
	if err != nil {
		if errors.Is(err, chain.ErrExecutionReverted) {
			logger.Warn("gas estimate reverted, transaction stays queued", zap.Error(err))
			return nil
		}
		return fmt.Errorf("estimate gas for tx %d: %w", tx.ID, err)
	}

	maxPrice := c.policy.Get().MaxGasPrice()
	suggested, err := c.chain.SuggestGasPrice(ctx)
	if err != nil {
		return fmt.Errorf("suggest gas price: %w", err)
	}
	price := capPrice(suggested, maxPrice)

	head, err := c.chain.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("read chain head: %w", err)
	}

	ok, err := c.transition(ctx, tx, model.TxQueued, model.TxPending, store.TxChanges{Block: &head, IncrementAttempt: true})
	if err != nil || !ok {
		return err
	}

	hash, err := c.chain.SendTransaction(ctx, call, gas, price)
	if err != nil {
		logger.Warn("send failed, retrying with a higher gas price", zap.String("gas_price", price.String()), zap.Error(err))
		price = capPrice(bump(price), maxPrice)
		hash, err = c.chain.SendTransaction(ctx, call, gas, price)
	}
	if err != nil {
		if _, rerr := c.transition(ctx, tx, model.TxPending, model.TxQueued, store.TxChanges{}); rerr != nil {
			return errors.Join(fmt.Errorf("send tx %d: %w", tx.ID, err), rerr)
		}
		return fmt.Errorf("send tx %d: %w", tx.ID, err)
	}

	// the row may have moved on while the send was in flight; the hash is kept either way
	// so receipt checks can still find the transaction
	gasPrice := price.String()
	recorded, err := c.repo.RecordBroadcast(ctx, tx.ID, hash, gasPrice)
	if err != nil {
		return fmt.Errorf("record broadcast of tx %d: %w", tx.ID, err)
	}
	if !recorded {
		logger.Warn("transaction already carries a hash", zap.String("tx_hash", hash))
	}
	logger.Info("transaction broadcast",
		zap.String("tx_hash", hash),
		zap.String("gas_price", gasPrice),
		zap.Uint64("gas", gas),
		zap.Uint64("block", head),
	)
	return nil
}

// bump raises price by a quarter.
func bump(price *big.Int) *big.Int {
	out := new(big.Int).Mul(price, big.NewInt(5))
	return out.Quo(out, big.NewInt(4))
}

func capPrice(price, ceiling *big.Int) *big.Int {
	if ceiling.Sign() > 0 && price.Cmp(ceiling) > 0 {
		return new(big.Int).Set(ceiling)
	}
	return price
}
