// Package nova402 implements the cryptographic core of the Nova402 x402
// payment-authorization protocol.
//
// The core produces and verifies the signed, time-bounded authorization that
// lets a payer's funds move without an on-chain transaction per request, and
// aggregates accepted authorizations into a Merkle batch commitment. It is
// split into five leaf packages:
//   - hashing: keccak-256 (legacy padding), SHA-256 and double-keccak digests
//   - codec: canonical encoding of an authorization into a signable digest
//   - signature: secp256k1 sign, verify and signer recovery
//   - validation: address, chain-id and validity-window predicates
//   - merkle: batch commitment roots and inclusion proofs
//
// The root package holds the shared value types, sentinel errors, the static
// network table and small glue utilities (hex, nonce, version). Everything is
// a pure function of its inputs; no package retains state across calls.
package nova402

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Byte sizes of the protocol's fixed-width values.
const (
	HashSize      = 32
	AddressSize   = 20
	SignatureSize = 65
	NonceSize     = 32
)

// Signature holds the components of a recoverable secp256k1 signature.
//
// R and S must each be non-zero and less than the curve order for the
// signature to be well-formed. V is the recovery discriminant, stored in the
// Ethereum convention as 27 or 28; the raw values 0 and 1 are accepted on
// input and normalized during recovery.
type Signature struct {
	R [32]byte
	S [32]byte
	V byte
}

// Bytes returns the 65-byte r || s || v serialization.
func (sig Signature) Bytes() []byte {
	out := make([]byte, SignatureSize)
	copy(out[:32], sig.R[:])
	copy(out[32:64], sig.S[:])
	out[64] = sig.V
	return out
}

// SignatureFromBytes parses a 65-byte r || s || v serialization.
// Returns ErrInvalidInput if the slice is not exactly 65 bytes.
func SignatureFromBytes(b []byte) (Signature, error) {
	if len(b) != SignatureSize {
		return Signature{}, fmt.Errorf("%w: signature must be %d bytes, got %d", ErrInvalidInput, SignatureSize, len(b))
	}
	var sig Signature
	copy(sig.R[:], b[:32])
	copy(sig.S[:], b[32:64])
	sig.V = b[64]
	return sig, nil
}

// PaymentAuthorization is a single time-bounded transfer authorization.
//
// The nonce is caller-supplied and must be unique per (From, Nonce) pair to
// prevent replay; uniqueness is enforced by the settlement ledger, not here.
type PaymentAuthorization struct {
	// From is the payer's address.
	From common.Address

	// To is the recipient's address.
	To common.Address

	// Value is the payment amount in atomic units.
	Value uint64

	// ValidAfter is the earliest Unix timestamp at which the authorization
	// may be settled.
	ValidAfter uint64

	// ValidBefore is the latest Unix timestamp at which the authorization
	// may be settled (inclusive).
	ValidBefore uint64

	// Nonce is a one-time random value preventing replay.
	Nonce [NonceSize]byte
}

// Validate checks the structural invariants of the authorization.
// It does not consult a clock; use the validation package for temporal checks.
func (a PaymentAuthorization) Validate() error {
	if a.ValidAfter > a.ValidBefore {
		return fmt.Errorf("%w: validAfter %d exceeds validBefore %d", ErrInvalidInput, a.ValidAfter, a.ValidBefore)
	}
	return nil
}
