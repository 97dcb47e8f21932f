package coordinator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokenpool-backend/internal/clock"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/chain"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/repository/store"
)

// MarkStale moves pending transactions that have waited too many blocks to skipped. Pending
// solutions of a superseded challenge are skipped at once so they stop blocking the queue.
func (c *Coordinator) MarkStale(ctx context.Context) error {
	head, err := c.chain.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("read chain head: %w", err)
	}
	current, known := c.epochs.Current()

	var errs []error
	for _, kind := range []struct {
		txType    model.TxType
		threshold uint64
	}{
		{model.TxSolution, solutionStaleBlocks},
		{model.TxBatchedPayment, paymentStaleBlocks},
	} {
		txType, threshold := kind.txType, kind.threshold
		pending, err := c.repo.TransactionsByStatus(ctx, txType, model.TxPending, c.pageSize)
		if err != nil {
			errs = append(errs, fmt.Errorf("load pending %s: %w", txType, err))
			continue
		}
		for _, tx := range pending {
			superseded := txType == model.TxSolution && known && tx.ChallengeNumber != current.ChallengeNumber
			if !superseded && tx.Block+threshold >= head {
				continue
			}
			ok, err := c.transition(ctx, tx, model.TxPending, model.TxSkipped, store.TxChanges{})
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if ok {
				c.logger.Warn("pending transaction skipped",
					zap.Uint64("tx_id", tx.ID),
					zap.String("tx_type", string(txType)),
					zap.Uint64("block", tx.Block),
					zap.Uint64("head", head),
					zap.Bool("superseded", superseded),
				)
			}
		}
	}
	return errors.Join(errs...)
}

// Requeue puts skipped payments back in the queue once they have been skipped long enough.
// A payment that was mined in the meantime is finalized instead.
func (c *Coordinator) Requeue(ctx context.Context) error {
	head, err := c.chain.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("read chain head: %w", err)
	}
	skipped, err := c.repo.TransactionsByStatus(ctx, model.TxBatchedPayment, model.TxSkipped, c.pageSize)
	if err != nil {
		return fmt.Errorf("load skipped payments: %w", err)
	}

	var errs []error
	for _, tx := range skipped {
		if tx.Block+paymentRequeueAfter >= head {
			continue
		}
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
		ok, err := c.transition(ctx, tx, model.TxSkipped, model.TxQueued, store.TxChanges{Block: &head})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			c.logger.Info("skipped payment requeued", zap.Uint64("tx_id", tx.ID), zap.String("batch_uuid", tx.BatchUUID))
		}
	}
	return errors.Join(errs...)
}

// CheckMinedSolutions finalizes pending solutions whose receipt is available.
func (c *Coordinator) CheckMinedSolutions(ctx context.Context) error {
	return c.checkMined(ctx, model.TxSolution, model.TxPending)
}

// CheckMinedPayments finalizes pending payments whose receipt is available.
func (c *Coordinator) CheckMinedPayments(ctx context.Context) error {
	return c.checkMined(ctx, model.TxBatchedPayment, model.TxPending)
}

// RecoverStuck finalizes skipped transactions that were mined after all. Skipped solutions
// of a superseded challenge that stay unmined past the staleness window are outdated.
func (c *Coordinator) RecoverStuck(ctx context.Context) error {
	return errors.Join(
		c.recoverSolutions(ctx),
		c.checkMined(ctx, model.TxBatchedPayment, model.TxSkipped),
	)
}

func (c *Coordinator) recoverSolutions(ctx context.Context) error {
	head, err := c.chain.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("read chain head: %w", err)
	}
	skipped, err := c.repo.TransactionsByStatus(ctx, model.TxSolution, model.TxSkipped, c.pageSize)
	if err != nil {
		return fmt.Errorf("load skipped solutions: %w", err)
	}
	current, known := c.epochs.Current()

	var errs []error
	for _, tx := range skipped {
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
		if !known || tx.ChallengeNumber == current.ChallengeNumber || tx.Block+solutionStaleBlocks >= head {
			continue
		}
		ok, err := c.transition(ctx, tx, model.TxSkipped, model.TxOutdated, store.TxChanges{})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			c.logger.Info("skipped solution outdated",
				zap.Uint64("tx_id", tx.ID),
				zap.String("challenge", tx.ChallengeNumber),
			)
		}
	}
	return errors.Join(errs...)
}

func (c *Coordinator) checkMined(ctx context.Context, txType model.TxType, status model.TxStatus) error {
	txs, err := c.repo.TransactionsByStatus(ctx, txType, status, c.pageSize)
	if err != nil {
		return fmt.Errorf("load %s %s: %w", status, txType, err)
	}

	var errs []error
	for _, tx := range txs {
		if tx.TxHash == "" {
			continue
		}
		if _, err := c.settleIfMined(ctx, tx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// settleIfMined fetches the receipt of tx and finalizes it when mined. It reports whether a
// receipt was found.
func (c *Coordinator) settleIfMined(ctx context.Context, tx model.Transaction) (bool, error) {
	var receipt chain.Receipt
	err := clock.Retry(ctx, c.receiptAttempts, c.receiptDelay, nil, func(ctx context.Context) error {
		var err error
		receipt, err = c.chain.TransactionReceipt(ctx, tx.TxHash)
		return err
	})
	if errors.Is(err, chain.ErrReceiptNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("fetch receipt of tx %d: %w", tx.ID, err)
	}
	return true, c.finalize(ctx, tx, receipt)
}

// finalize applies the effects of a mined transaction before moving it to its final
// status. The effects are idempotent, so a failed transition is retried on the next pass.
func (c *Coordinator) finalize(ctx context.Context, tx model.Transaction, receipt chain.Receipt) error {
	logger := c.logger.With(
		zap.Uint64("tx_id", tx.ID),
		zap.String("tx_type", string(tx.TxType)),
		zap.String("tx_hash", tx.TxHash),
	)

	to := model.TxReverted
	if receipt.Success {
		to = model.TxSuccess
		var err error
		switch tx.TxType {
		case model.TxSolution:
			err = c.recordMint(ctx, tx, receipt)
		case model.TxBatchedPayment:
			err = c.confirmBatch(ctx, tx)
		}
		if err != nil {
			return err
		}
	}

	ok, err := c.transition(ctx, tx, tx.Status, to, store.TxChanges{})
	if err != nil || !ok {
		return err
	}
	if to == model.TxReverted {
		logger.Warn("transaction reverted on chain", zap.Uint64("mined_block", receipt.BlockNumber))
		return nil
	}
	logger.Info("transaction mined", zap.Uint64("mined_block", receipt.BlockNumber), zap.Uint64("gas_used", receipt.GasUsed))
	return nil
}

// recordMint stores the block reward earned by a mined solution. The epoch is the one the
// solution solved; the Mint event supplies the reward when present.
func (c *Coordinator) recordMint(ctx context.Context, tx model.Transaction, receipt chain.Receipt) error {
	mint := model.PoolMint{TxHash: receipt.TxHash, PoolStatus: model.MintUnprocessed}
	if mint.TxHash == "" {
		mint.TxHash = tx.TxHash
	}

	known := false
	epoch, err := c.repo.EpochByChallenge(ctx, tx.ChallengeNumber)
	switch {
	case err == nil:
		known = true
		mint.EpochCount = epoch.EpochCount
		mint.BlockReward = epoch.MiningReward
	case errors.Is(err, store.ErrNotFound):
		if receipt.Mint == nil {
			c.logger.Warn("mined solution has no known epoch", zap.Uint64("tx_id", tx.ID), zap.String("challenge", tx.ChallengeNumber))
		}
	default:
		return fmt.Errorf("load epoch of %s: %w", tx.ChallengeNumber, err)
	}
	if receipt.Mint != nil {
		mint.BlockReward = receipt.Mint.Reward
		if !known {
			mint.EpochCount = receipt.Mint.EpochCount
		}
	}

	inserted, err := c.repo.InsertPoolMint(ctx, mint)
	if err != nil {
		return fmt.Errorf("record pool mint %s: %w", mint.TxHash, err)
	}
	if inserted {
		c.logger.Info("pool mint recorded",
			zap.Uint64("epoch", mint.EpochCount),
			zap.Uint64("reward", mint.BlockReward),
			zap.String("tx_hash", mint.TxHash),
		)
	}
	return nil
}

// confirmBatch confirms every payment of the batch and credits what each miner received.
func (c *Coordinator) confirmBatch(ctx context.Context, tx model.Transaction) error {
	payments, err := c.repo.PaymentsByBatch(ctx, tx.BatchUUID)
	if err != nil {
		return fmt.Errorf("load batch %s: %w", tx.BatchUUID, err)
	}

	for _, p := range payments {
		flipped, err := c.repo.ConfirmPayment(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("confirm payment %d: %w", p.ID, err)
		}
		if !flipped {
			continue
		}
		if err := c.repo.CreditTokensReceived(ctx, p.MinerAddress, p.AmountToPay); err != nil {
			return fmt.Errorf("credit tokens received for %s: %w", p.MinerAddress, err)
		}
	}
	c.logger.Info("batched payment confirmed", zap.String("batch_uuid", tx.BatchUUID), zap.Int("payments", len(payments)))
	return nil
}
