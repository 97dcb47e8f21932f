// Package gatekeeper validates submitted shares and credits accepted work to the difficulty ledger.
package gatekeeper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/pow"
)

// Reason explains why a share was not accepted.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonPoolSuspended    Reason = "pool_suspended"
	ReasonMissingField     Reason = "missing_field"
	ReasonInvalidAddress   Reason = "invalid_address"
	ReasonInvalidProof     Reason = "invalid_proof"
	ReasonStaleJob         Reason = "stale_job"
	ReasonDifficultyTooLow Reason = "difficulty_too_low"
	ReasonDuplicateShare   Reason = "duplicate_share"
	ReasonInternal         Reason = "internal_error"
)

const (
	outcomeAccepted   = "accepted"
	outcomeUncredited = "uncredited"

	challengeSize = 32
	solutionNonce = 32
)

// ShareSubmission is a share as received from a miner. Binary fields are 0x-prefixed hex.
type ShareSubmission struct {
	Nonce           string
	ExtraNonce      string
	MinerAddress    string
	ChallengeNumber string
	Digest          string
	Difficulty      uint64
	MinerClass      model.MinerClass
	ProofBlob       string
	ProofSeed       string
	ProofHash       string
	ClaimedTarget   string
}

// Result is the answer returned to the miner.
type Result struct {
	Success bool
	Message string
	Reason  Reason
	// Credited is false for accepted shares that arrived inside the miner's spacing window.
	Credited bool
}

func reject(reason Reason, message string) Result {
	return Result{Reason: reason, Message: message}
}

// Config holds the gatekeeper settings that do not hot reload.
type Config struct {
	// PoolAddress is the account solutions are minted for; it is part of every work blob.
	PoolAddress string
}

// Gatekeeper validates shares and records credited work.
type Gatekeeper struct {
	logger   *zap.Logger
	epochs   EpochSource
	policy   PolicySource
	verifier Verifier
	repo     Repository
	digests  DigestCache
	archive  Archiver
	metrics  Metrics
	pool     common.Address
	now      func() time.Time
}

// New builds a Gatekeeper. The digest cache and archiver are optional.
func New(
	cfg Config,
	epochs EpochSource,
	policy PolicySource,
	verifier Verifier,
	repo Repository,
	digests DigestCache,
	archive Archiver,
	metrics Metrics,
	logger *zap.Logger,
) (*Gatekeeper, error) {
	if !common.IsHexAddress(cfg.PoolAddress) {
		return nil, fmt.Errorf("invalid pool address %q", cfg.PoolAddress)
	}
	if epochs == nil || policy == nil || verifier == nil || repo == nil || metrics == nil {
		return nil, errors.New("gatekeeper dependencies are required")
	}
	return &Gatekeeper{
		logger:   logger.Named("gatekeeper"),
		epochs:   epochs,
		policy:   policy,
		verifier: verifier,
		repo:     repo,
		digests:  digests,
		archive:  archive,
		metrics:  metrics,
		pool:     common.HexToAddress(cfg.PoolAddress),
		now:      time.Now,
	}, nil
}

// NewDigestCache returns a bigcache instance remembering recently accepted digests for ttl.
func NewDigestCache(ctx context.Context, ttl time.Duration) (*bigcache.BigCache, error) {
	cfg := bigcache.DefaultConfig(ttl)
	cfg.CleanWindow = ttl / 2
	cfg.MaxEntrySize = 1
	cfg.Verbose = false
	cache, err := bigcache.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create digest cache: %w", err)
	}
	return cache, nil
}

// ChallengeNumber returns the challenge miners should work on, or an empty string before the first epoch.
func (g *Gatekeeper) ChallengeNumber() string {
	epoch, ok := g.epochs.Current()
	if !ok {
		return ""
	}
	return epoch.ChallengeNumber
}

// MinimumShareTarget returns the easiest accepted share target for class as 0x-hex.
func (g *Gatekeeper) MinimumShareTarget(class model.MinerClass) string {
	return hexutil.EncodeBig(g.policy.Get().MinimumShareTarget(class))
}

// PoolSuspended reports whether share intake is paused.
func (g *Gatekeeper) PoolSuspended() bool {
	return g.policy.Get().Suspended
}

// PoolAddress returns the lowercase pool account.
func (g *Gatekeeper) PoolAddress() string {
	return strings.ToLower(g.pool.Hex())
}

// Submit validates a share and, when accepted, records it in the difficulty ledger.
func (g *Gatekeeper) Submit(ctx context.Context, s ShareSubmission) (res Result) {
	started := time.Now()
	defer func() {
		g.metrics.ObserveShare(outcome(res), started)
	}()

	policy := g.policy.Get()
	if policy.Suspended {
		return reject(ReasonPoolSuspended, "pool is suspended")
	}

	if field := missingField(s); field != "" {
		return reject(ReasonMissingField, "missing "+field)
	}
	if !validAddress(s.MinerAddress) {
		return reject(ReasonInvalidAddress, "invalid miner address")
	}
	miner := strings.ToLower(s.MinerAddress)
	logger := g.logger.With(zap.String("miner", miner), zap.String("digest", s.Digest))

	w, err := decodeWork(s)
	if err != nil {
		logger.Debug("undecodable share", zap.Error(err))
		return reject(ReasonInvalidProof, "malformed proof fields")
	}

	epoch, ok := g.epochs.Current()
	if !ok {
		return reject(ReasonStaleJob, "no active challenge")
	}
	challenge, err := hexutil.Decode(epoch.ChallengeNumber)
	if err != nil || len(challenge) != challengeSize {
		logger.Error("current challenge is malformed", zap.String("challenge", epoch.ChallengeNumber))
		return reject(ReasonInternal, "pool challenge unavailable")
	}

	blob := g.blob(challenge, w.extraNonce)
	valid, err := g.verifier.Verify(pow.Work{
		Blob:      blob,
		Nonce:     w.nonce,
		Target:    w.target,
		Seed:      w.seed,
		ProofHash: w.proofHash,
	})
	if err != nil {
		logger.Debug("proof verification failed", zap.Error(err))
		return reject(ReasonInvalidProof, "invalid proof")
	}
	if !valid {
		return reject(ReasonInvalidProof, "invalid proof")
	}
	proofDigest := common.BytesToHash(pow.Digest(blob, w.nonce)).Hex()
	if !strings.EqualFold(s.Digest, proofDigest) {
		return reject(ReasonInvalidProof, "digest does not match proof")
	}

	if !bytes.Equal(w.proofBlob, blob) || !strings.EqualFold(s.ChallengeNumber, epoch.ChallengeNumber) {
		return reject(ReasonStaleJob, "stale job")
	}

	if w.target.Cmp(policy.MinimumShareTarget(s.MinerClass)) > 0 {
		return reject(ReasonDifficultyTooLow, "share difficulty below class minimum")
	}
	credited := s.Difficulty
	if ceiling := model.DifficultyForTarget(w.target); credited > ceiling {
		credited = ceiling
	}

	isSolution := pow.MeetsTarget(w.proofHash, epoch.MiningTarget)

	digest := strings.ToLower(s.Digest)
	duplicate, err := g.seen(ctx, digest)
	if err != nil {
		logger.Error("duplicate lookup failed", zap.Error(err))
		return reject(ReasonInternal, "share could not be recorded")
	}
	if duplicate {
		return reject(ReasonDuplicateShare, "duplicate share")
	}

	// the slot is taken before the insert; losing a concurrent duplicate race forfeits it
	now := g.now().UTC()
	spaced, err := g.repo.ClaimShareSlot(ctx, miner, now, policy.ShareSpacing)
	if err != nil {
		logger.Error("share slot claim failed", zap.Error(err))
		return reject(ReasonInternal, "share could not be recorded")
	}

	share := model.PendingShare{
		MinerAddress:    miner,
		Digest:          digest,
		ChallengeNumber: epoch.ChallengeNumber,
		IsSolution:      isSolution,
		Credited:        spaced,
		MinerClass:      s.MinerClass,
		Time:            now,
	}
	if spaced {
		share.Difficulty = credited
	}
	inserted, err := g.repo.InsertPendingShare(ctx, share)
	if err != nil {
		logger.Error("insert pending share failed", zap.Error(err))
		return reject(ReasonInternal, "share could not be recorded")
	}
	if !inserted {
		return reject(ReasonDuplicateShare, "duplicate share")
	}
	g.remember(digest)

	if !spaced {
		if isSolution {
			g.enqueueSolution(ctx, logger, miner, epoch.ChallengeNumber, w, proofDigest)
		}
		return Result{Success: true, Message: "accepted without credit"}
	}

	if err := g.credit(ctx, share); err != nil {
		logger.Error("credit share failed", zap.Error(err))
		return reject(ReasonInternal, "share could not be recorded")
	}
	g.metrics.ObserveCredit(s.MinerClass.String(), credited)

	if g.archive != nil {
		g.archive.ArchiveShare(share)
	}
	if isSolution {
		g.enqueueSolution(ctx, logger, miner, epoch.ChallengeNumber, w, proofDigest)
	}
	return Result{Success: true, Credited: true, Message: "share accepted"}
}

func (g *Gatekeeper) credit(ctx context.Context, share model.PendingShare) error {
	if err := g.repo.IncrementTally(ctx, share.MinerAddress, share.ChallengeNumber, share.MinerClass, share.Difficulty); err != nil {
		return fmt.Errorf("increment miner tally: %w", err)
	}
	if err := g.repo.IncrementPoolTotal(ctx, share.ChallengeNumber, share.MinerClass, share.Difficulty); err != nil {
		return fmt.Errorf("increment pool total: %w", err)
	}
	return nil
}

func (g *Gatekeeper) enqueueSolution(ctx context.Context, logger *zap.Logger, miner, challenge string, w work, digest string) {
	data := model.SolutionData{
		Nonce:           hexutil.Encode(append(append([]byte{}, w.extraNonce...), w.nonce...)),
		Digest:          digest,
		ChallengeNumber: challenge,
		MinerAddress:    miner,
	}
	tx, err := model.NewSolutionTransaction(data, 0)
	if err != nil {
		logger.Error("build solution transaction failed", zap.Error(err))
		return
	}
	queued, err := g.repo.InsertTransaction(ctx, tx)
	if err != nil {
		logger.Error("queue solution failed", zap.Error(err))
		return
	}
	g.metrics.ObserveSolution()
	logger.Info("solution queued", zap.Uint64("tx_id", queued.ID), zap.String("challenge", challenge))
}

func (g *Gatekeeper) seen(ctx context.Context, digest string) (bool, error) {
	if g.digests != nil {
		if _, err := g.digests.Get(digest); err == nil {
			return true, nil
		}
	}
	return g.repo.PendingShareExists(ctx, digest)
}

func (g *Gatekeeper) remember(digest string) {
	if g.digests == nil {
		return
	}
	if err := g.digests.Set(digest, []byte{1}); err != nil {
		g.logger.Debug("cache digest failed", zap.Error(err))
	}
}

func (g *Gatekeeper) blob(challenge, extraNonce []byte) []byte {
	blob := make([]byte, 0, challengeSize+common.AddressLength+len(extraNonce))
	blob = append(blob, challenge...)
	blob = append(blob, g.pool.Bytes()...)
	return append(blob, extraNonce...)
}

type work struct {
	nonce      []byte
	extraNonce []byte
	proofBlob  []byte
	proofHash  []byte
	seed       []byte
	target     *big.Int
}

func decodeWork(s ShareSubmission) (work, error) {
	var (
		w   work
		err error
	)
	if w.nonce, err = hexutil.Decode(s.Nonce); err != nil {
		return work{}, fmt.Errorf("decode nonce: %w", err)
	}
	if w.extraNonce, err = hexutil.Decode(s.ExtraNonce); err != nil {
		return work{}, fmt.Errorf("decode extra nonce: %w", err)
	}
	if len(w.nonce)+len(w.extraNonce) != solutionNonce {
		return work{}, fmt.Errorf("nonce and extra nonce span %d bytes", len(w.nonce)+len(w.extraNonce))
	}
	if w.proofBlob, err = hexutil.Decode(s.ProofBlob); err != nil {
		return work{}, fmt.Errorf("decode proof blob: %w", err)
	}
	if w.proofHash, err = hexutil.Decode(s.ProofHash); err != nil {
		return work{}, fmt.Errorf("decode proof hash: %w", err)
	}
	if s.ProofSeed != "" {
		if w.seed, err = hexutil.Decode(s.ProofSeed); err != nil {
			return work{}, fmt.Errorf("decode proof seed: %w", err)
		}
	}
	if w.target, err = parseTarget(s.ClaimedTarget); err != nil {
		return work{}, err
	}
	return w, nil
}

func parseTarget(s string) (*big.Int, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	target, ok := new(big.Int).SetString(digits, 16)
	if !ok || target.Sign() <= 0 {
		return nil, fmt.Errorf("invalid claimed target %q", s)
	}
	return target, nil
}

func missingField(s ShareSubmission) string {
	switch {
	case s.Nonce == "":
		return "nonce"
	case s.MinerAddress == "":
		return "miner address"
	case s.ChallengeNumber == "":
		return "challenge number"
	case s.Digest == "":
		return "digest"
	case s.Difficulty == 0:
		return "difficulty"
	case !s.MinerClass.Valid():
		return "miner class"
	case s.ProofBlob == "":
		return "proof blob"
	case s.ProofHash == "":
		return "proof hash"
	case s.ClaimedTarget == "":
		return "claimed target"
	case s.ExtraNonce == "":
		return "extra nonce"
	}
	return ""
}

func validAddress(address string) bool {
	return len(address) == 2+2*common.AddressLength && strings.HasPrefix(address, "0x") && common.IsHexAddress(address)
}

func outcome(res Result) string {
	switch {
	case res.Success && !res.Credited:
		return outcomeUncredited
	case res.Success:
		return outcomeAccepted
	default:
		return string(res.Reason)
	}
}
