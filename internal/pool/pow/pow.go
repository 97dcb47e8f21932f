// Package pow verifies proof-of-work shares.
//
// Proof hashes travel little-endian: the numeric value of a proof hash is obtained by
// reversing its bytes, see HashValue.
package pow

import (
	"bytes"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
)

// Work is the input of a proof verification.
type Work struct {
	Blob      []byte
	Nonce     []byte
	Target    *big.Int
	Seed      []byte
	ProofHash []byte
}

// Verifier checks that a proof hash was produced from a blob and nonce and meets the target.
type Verifier interface {
	Verify(work Work) (bool, error)
}

// HashValue returns the numeric value of a little-endian proof hash.
func HashValue(hash []byte) *big.Int {
	return new(big.Int).SetBytes(reverse(hash))
}

// MeetsTarget reports whether the proof hash is at or below target.
func MeetsTarget(hash []byte, target *big.Int) bool {
	if target == nil {
		return false
	}
	return HashValue(hash).Cmp(target) <= 0
}

// Keccak verifies the ERC918 keccak256 scheme: the digest is keccak256(blob || nonce)
// and the proof hash is that digest in little-endian order. The seed is unused.
type Keccak struct{}

// NewKeccak returns the keccak256 verifier.
func NewKeccak() Keccak {
	return Keccak{}
}

// Verify implements Verifier.
func (Keccak) Verify(work Work) (bool, error) {
	if len(work.Blob) == 0 || len(work.Nonce) == 0 {
		return false, errors.New("blob and nonce are required")
	}
	if len(work.ProofHash) != 32 {
		return false, nil
	}

	digest := Digest(work.Blob, work.Nonce)
	if !bytes.Equal(reverse(digest), work.ProofHash) {
		return false, nil
	}
	return MeetsTarget(work.ProofHash, work.Target), nil
}

// Digest returns keccak256(blob || nonce) in big-endian order.
func Digest(blob, nonce []byte) []byte {
	return crypto.Keccak256(blob, nonce)
}

// ProofHash returns the little-endian proof hash for blob and nonce.
func ProofHash(blob, nonce []byte) []byte {
	return reverse(Digest(blob, nonce))
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}
