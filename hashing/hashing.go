// Package hashing provides the digest functions used throughout the nova402
// core: keccak-256 with the legacy pre-NIST padding (the variant Ethereum uses
// for address derivation), standard SHA-256, and a hardened double keccak.
//
// All functions are total over arbitrary-length input, deterministic, perform
// no secret-dependent branching, and are safe for concurrent use.
package hashing

import (
	"crypto/sha256"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// Keccak256 computes the legacy keccak-256 digest of data.
//
// This is deliberately not NIST SHA3-256: the historical 0x01 padding
// delimiter is required for bit-compatibility with Ethereum address
// derivation and signature digests.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// Keccak256Hash computes the legacy keccak-256 digest of data and returns it
// as a Hash value.
func Keccak256Hash(data ...[]byte) common.Hash {
	var out common.Hash
	copy(out[:], Keccak256(data...))
	return out
}

// SHA256 computes the SHA-256 digest of data. Used where the ecosystem
// requires interoperability with non-ledger-specific hashing.
func SHA256(data []byte) common.Hash {
	return common.Hash(sha256.Sum256(data))
}

// DoubleKeccak256 computes keccak256(keccak256(data)), hardening against
// length-extension style shortcuts on the first pass.
func DoubleKeccak256(data []byte) common.Hash {
	return Keccak256Hash(Keccak256(data))
}
