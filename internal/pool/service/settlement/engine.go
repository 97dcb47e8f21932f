// Package settlement credits PPLNS rewards for blocks the pool has minted.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/config"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/repository/store"
)

const (
	defaultMintBatch = 100

	resultProcessed      = "processed"
	resultNoMinerShares  = "no_miner_shares"
	resultNoContractData = "no_contract_data"
	resultBelowReserve   = "below_reserve"
	resultClaimed        = "claimed_elsewhere"
)

// Engine settles unprocessed pool mints.
type Engine struct {
	logger    *zap.Logger
	repo      Repository
	liquidity Liquidity
	policy    PolicySource
	archive   Archiver
	metrics   Metrics
	now       func() time.Time
	mintBatch int
}

// NewEngine builds an Engine. The archiver is optional.
func NewEngine(repo Repository, liquidity Liquidity, policy PolicySource, archive Archiver, metrics Metrics, logger *zap.Logger) (*Engine, error) {
	if repo == nil {
		return nil, errors.New("settlement repository is required")
	}
	if liquidity == nil {
		return nil, errors.New("settlement liquidity source is required")
	}
	if policy == nil {
		return nil, errors.New("settlement policy is required")
	}
	if metrics == nil {
		return nil, errors.New("settlement metrics is required")
	}
	return &Engine{
		logger:    logger.Named("settlement"),
		repo:      repo,
		liquidity: liquidity,
		policy:    policy,
		archive:   archive,
		metrics:   metrics,
		now:       time.Now,
		mintBatch: defaultMintBatch,
	}, nil
}

// Settle processes unprocessed mints oldest first. A failing mint does not stop the pass.
func (e *Engine) Settle(ctx context.Context) error {
	mints, err := e.repo.UnprocessedMints(ctx, e.mintBatch)
	if err != nil {
		return fmt.Errorf("load unprocessed mints: %w", err)
	}

	var errs []error
	for _, mint := range mints {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := e.settleMint(ctx, mint); err != nil {
			e.logger.Error("settle mint failed",
				zap.Uint64("mint_id", mint.ID),
				zap.Uint64("epoch", mint.EpochCount),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("settle mint %d: %w", mint.ID, err))
		}
	}
	return errors.Join(errs...)
}

type window struct {
	challenges []string
	miners     map[string]uint64
	open       map[string][]uint64
	pool       uint64
}

func (e *Engine) settleMint(ctx context.Context, mint model.PoolMint) (err error) {
	started := time.Now()
	result := ""
	defer func() {
		e.metrics.ObserveMint(result, err, started)
	}()

	logger := e.logger.With(zap.Uint64("mint_id", mint.ID), zap.Uint64("epoch", mint.EpochCount))
	policy := e.policy.Get()

	epoch, err := e.repo.EpochByCount(ctx, mint.EpochCount)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("load epoch: %w", err)
		}
		result, err = e.finish(ctx, logger, mint, model.MintNoContractData, resultNoContractData)
		return err
	}

	w, err := e.window(ctx, epoch.EpochCount, policy.PPLNSDepth)
	if err != nil {
		return err
	}
	if len(w.open) == 0 {
		result, err = e.finish(ctx, logger, mint, model.MintNoMinerShares, resultNoMinerShares)
		return err
	}

	balance, err := e.liquidity.PoolTokenBalance(ctx)
	if err != nil {
		return fmt.Errorf("read pool liquidity: %w", err)
	}
	if balance < policy.SecurityReserve {
		logger.Warn("pool liquidity below security reserve, forfeiting window",
			zap.Uint64("balance", balance),
			zap.Uint64("reserve", policy.SecurityReserve),
		)
		forfeited, err := e.claimAll(ctx, w.open, model.TallyBelowReserve)
		if err != nil {
			return err
		}
		e.metrics.ObserveForfeit(forfeited)
		result, err = e.finish(ctx, logger, mint, model.MintProcessed, resultBelowReserve)
		return err
	}

	if err := e.credit(ctx, logger, mint, epoch, w, policy); err != nil {
		return err
	}
	result, err = e.finish(ctx, logger, mint, model.MintProcessed, resultProcessed)
	return err
}

// window loads the trailing depth epochs ending at epochCount.
func (e *Engine) window(ctx context.Context, epochCount, depth uint64) (window, error) {
	if depth == 0 {
		depth = 1
	}
	from := uint64(0)
	if epochCount+1 > depth {
		from = epochCount + 1 - depth
	}

	epochs, err := e.repo.EpochsInRange(ctx, from, epochCount)
	if err != nil {
		return window{}, fmt.Errorf("load window epochs: %w", err)
	}
	w := window{
		miners: make(map[string]uint64),
		open:   make(map[string][]uint64),
	}
	for _, ep := range epochs {
		w.challenges = append(w.challenges, ep.ChallengeNumber)
	}
	if len(w.challenges) == 0 {
		return w, nil
	}

	tallies, err := e.repo.TalliesForChallenges(ctx, w.challenges)
	if err != nil {
		return window{}, fmt.Errorf("load window tallies: %w", err)
	}
	for _, tally := range tallies {
		w.miners[tally.MinerAddress] += tally.TotalDifficulty
		if tally.Status == model.TallyOpen {
			w.open[tally.MinerAddress] = append(w.open[tally.MinerAddress], tally.ID)
		}
	}

	totals, err := e.repo.PoolTotalsForChallenges(ctx, w.challenges)
	if err != nil {
		return window{}, fmt.Errorf("load window pool totals: %w", err)
	}
	for _, total := range totals {
		w.pool += total.TotalDifficulty
	}
	return w, nil
}

func (e *Engine) credit(ctx context.Context, logger *zap.Logger, mint model.PoolMint, epoch model.ChallengeEpoch, w window, policy config.Policy) error {
	feeFactor := policy.FeeFactor()
	bonusFactor := policy.BonusFactor()
	blockReward := mint.BlockReward
	if blockReward == 0 {
		blockReward = epoch.MiningReward
	}
	budget := rewardCap(blockReward)

	for _, miner := range sortedMiners(w.open) {
		if w.pool == 0 {
			if _, err := e.claim(ctx, w.open[miner], model.TallyEmptyWindow); err != nil {
				return err
			}
			continue
		}

		breakdown := Reward(w.miners[miner], w.pool, blockReward, feeFactor, bonusFactor)
		breakdown.Net = decimal.Min(breakdown.Net, budget)
		record := model.RewardRecord{
			MinerAddress:    miner,
			EpochCount:      mint.EpochCount,
			ChallengeNumber: epoch.ChallengeNumber,
			SharesCredited:  w.miners[miner],
			PoolTotalShares: w.pool,
			TokensAwarded:   breakdown.Tokens(),
			BonusAwarded:    breakdown.BonusTokens(),
			CreatedAt:       e.now().UTC(),
		}
		claimed, credited, err := e.repo.SettleReward(ctx, w.open[miner], record)
		if err != nil {
			return fmt.Errorf("settle reward for %s: %w", miner, err)
		}
		if claimed == 0 {
			continue
		}
		if !credited {
			logger.Warn("reward already recorded", zap.String("miner", miner))
			continue
		}
		budget = budget.Sub(fromUint(record.TokensAwarded))

		e.metrics.ObserveCredit(record.TokensAwarded)
		if e.archive != nil {
			e.archive.ArchiveReward(record)
		}
		logger.Debug("miner credited",
			zap.String("miner", miner),
			zap.String("reward_factor", breakdown.RewardFactor.String()),
			zap.Uint64("tokens", record.TokensAwarded),
		)
	}
	return nil
}

func (e *Engine) claimAll(ctx context.Context, open map[string][]uint64, to model.TallyStatus) (int, error) {
	total := 0
	for _, miner := range sortedMiners(open) {
		claimed, err := e.claim(ctx, open[miner], to)
		if err != nil {
			return total, err
		}
		total += claimed
	}
	return total, nil
}

// claim moves open tally rows to status and returns how many this call won.
func (e *Engine) claim(ctx context.Context, ids []uint64, to model.TallyStatus) (int, error) {
	claimed := 0
	for _, id := range ids {
		ok, err := e.repo.ClaimTally(ctx, id, model.TallyOpen, to)
		if err != nil {
			return claimed, fmt.Errorf("claim tally %d: %w", id, err)
		}
		if ok {
			claimed++
		}
	}
	return claimed, nil
}

func (e *Engine) finish(ctx context.Context, logger *zap.Logger, mint model.PoolMint, status model.PoolMintStatus, result string) (string, error) {
	ok, err := e.repo.ClaimMint(ctx, mint.ID, model.MintUnprocessed, status)
	if err != nil {
		return result, fmt.Errorf("mark mint %s: %w", status, err)
	}
	if !ok {
		logger.Info("mint already finished by another worker")
		return resultClaimed, nil
	}
	logger.Info("mint settled", zap.String("status", status.String()), zap.String("result", result))
	return result, nil
}

func sortedMiners(open map[string][]uint64) []string {
	miners := make([]string, 0, len(open))
	for miner := range open {
		miners = append(miners, miner)
	}
	sort.Strings(miners)
	return miners
}
