// Package config loads the pool payout policy.
package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	// tokenUnit is one whole token in base units (8 decimals).
	tokenUnit = 100_000_000

	minFeeFactor = "0.005"
	maxFeeFactor = "0.10"
)

// ClassDifficulty holds a value per miner class.
type ClassDifficulty struct {
	Low    uint64 `yaml:"low"`
	Medium uint64 `yaml:"medium"`
	High   uint64 `yaml:"high"`
}

// For returns the value configured for class.
func (c ClassDifficulty) For(class model.MinerClass) uint64 {
	switch class {
	case model.ClassLow:
		return c.Low
	case model.ClassMedium:
		return c.Medium
	case model.ClassHigh:
		return c.High
	default:
		return 0
	}
}

// Policy is the operator-controlled pool policy shared by every component.
type Policy struct {
	PoolFeePercent     float64         `yaml:"pool_fee_percent"`
	GasFeePercent      float64         `yaml:"gas_fee_percent"`
	BonusPercent       float64         `yaml:"bonus_percent"`
	MinTransfer        uint64          `yaml:"min_transfer"`
	DustThreshold      uint64          `yaml:"dust_threshold"`
	MinBatchSize       int             `yaml:"min_batch_size"`
	MaxBatchSize       int             `yaml:"max_batch_size"`
	PPLNSDepth         uint64          `yaml:"pplns_depth"`
	SecurityReserve    uint64          `yaml:"security_reserve"`
	MinShareDifficulty ClassDifficulty `yaml:"min_share_difficulty"`
	MaxGasPriceGwei    uint64          `yaml:"max_gas_price_gwei"`
	ShareSpacing       time.Duration   `yaml:"share_spacing"`
	FullPayoutInterval time.Duration   `yaml:"full_payout_interval"`
	Suspended          bool            `yaml:"suspended"`
}

// Default returns the policy used when no file is provided.
func Default() Policy {
	return Policy{
		PoolFeePercent:  5,
		MinTransfer:     100 * tokenUnit,
		DustThreshold:   tokenUnit,
		MinBatchSize:    5,
		MaxBatchSize:    50,
		PPLNSDepth:      5,
		SecurityReserve: 0,
		MinShareDifficulty: ClassDifficulty{
			Low:    1024,
			Medium: 65536,
			High:   1048576,
		},
		MaxGasPriceGwei:    100,
		ShareSpacing:       5 * time.Second,
		FullPayoutInterval: 24 * time.Hour,
	}
}

// Load reads a YAML policy file on top of Default.
func Load(path string) (Policy, error) {
	p := Default()
	if path == "" {
		return p, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("read policy %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Policy{}, fmt.Errorf("parse policy %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Policy{}, fmt.Errorf("validate policy %s: %w", path, err)
	}
	return p, nil
}

// Validate rejects policies no component can run with. Out-of-range percentages are clamped
// where they are used, not rejected here.
func (p Policy) Validate() error {
	var errs []error
	if p.PoolFeePercent < 0 || p.GasFeePercent < 0 || p.BonusPercent < 0 {
		errs = append(errs, errors.New("percentages must not be negative"))
	}
	if p.MinBatchSize <= 0 {
		errs = append(errs, errors.New("min_batch_size must be positive"))
	}
	if p.MaxBatchSize < p.MinBatchSize {
		errs = append(errs, errors.New("max_batch_size must be at least min_batch_size"))
	}
	if p.PPLNSDepth == 0 {
		errs = append(errs, errors.New("pplns_depth must be positive"))
	}
	if p.DustThreshold > p.MinTransfer {
		errs = append(errs, errors.New("dust_threshold must not exceed min_transfer"))
	}
	for _, class := range model.MinerClasses {
		if p.MinShareDifficulty.For(class) == 0 {
			errs = append(errs, fmt.Errorf("min_share_difficulty.%s must be positive", class))
		}
	}
	if p.ShareSpacing < 0 {
		errs = append(errs, errors.New("share_spacing must not be negative"))
	}
	if p.FullPayoutInterval <= 0 {
		errs = append(errs, errors.New("full_payout_interval must be positive"))
	}
	return errors.Join(errs...)
}

// FeeFactor is pool fee plus gas fee as a fraction, clamped to [0.005, 0.10].
func (p Policy) FeeFactor() decimal.Decimal {
	fee := decimal.NewFromFloat(p.PoolFeePercent).Add(decimal.NewFromFloat(p.GasFeePercent)).Shift(-2)
	lo := decimal.RequireFromString(minFeeFactor)
	hi := decimal.RequireFromString(maxFeeFactor)
	if fee.LessThan(lo) {
		return lo
	}
	if fee.GreaterThan(hi) {
		return hi
	}
	return fee
}

// BonusFactor is the bonus percentage as a fraction, clamped to [0, 1].
func (p Policy) BonusFactor() decimal.Decimal {
	bonus := decimal.NewFromFloat(p.BonusPercent).Shift(-2)
	if bonus.IsNegative() {
		return decimal.Zero
	}
	if bonus.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return bonus
}

// MinimumShareTarget is the easiest target accepted from miners of class.
func (p Policy) MinimumShareTarget(class model.MinerClass) *big.Int {
	return model.TargetForDifficulty(p.MinShareDifficulty.For(class))
}

// MaxGasPrice returns the gas price ceiling in wei.
func (p Policy) MaxGasPrice() *big.Int {
	return new(big.Int).Mul(new(big.Int).SetUint64(p.MaxGasPriceGwei), big.NewInt(1_000_000_000))
}

// Holder publishes the current policy to concurrent readers.
type Holder struct {
	current atomic.Pointer[Policy]
}

// NewHolder returns a Holder initialised with p.
func NewHolder(p Policy) *Holder {
	h := &Holder{}
	h.Set(p)
	return h
}

// Get returns the current policy.
func (h *Holder) Get() Policy {
	return *h.current.Load()
}

// Set replaces the current policy.
func (h *Holder) Set(p Policy) {
	h.current.Store(&p)
}
