// Package signature implements recoverable secp256k1 signing over 32-byte
// digests, signer recovery, and fail-closed verification against an expected
// signer address.
//
// Signing is deterministic: the signature nonce is derived from the private
// key and message rather than an external random source, so a given
// (digest, key) pair always yields the same signature. All functions are pure
// and safe for concurrent use with different keys and digests.
package signature

import (
	"crypto/ecdsa"
	"crypto/subtle"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	nova402 "github.com/nova402/nova402-go"
)

// Sign signs a 32-byte digest with the private key and returns a recoverable
// signature with V in the Ethereum 27/28 convention.
// Returns ErrInvalidInput if the private scalar is zero or not less than the
// curve order.
func Sign(digest common.Hash, key *ecdsa.PrivateKey) (nova402.Signature, error) {
	if key == nil || key.D == nil {
		return nova402.Signature{}, fmt.Errorf("%w: nil private key", nova402.ErrInvalidInput)
	}
	if key.D.Sign() == 0 || key.D.Cmp(crypto.S256().Params().N) >= 0 {
		return nova402.Signature{}, fmt.Errorf("%w: private scalar out of range", nova402.ErrInvalidInput)
	}

	raw, err := crypto.Sign(digest[:], key)
	if err != nil {
		return nova402.Signature{}, fmt.Errorf("%w: %v", nova402.ErrInvalidInput, err)
	}

	sig, err := nova402.SignatureFromBytes(raw)
	if err != nil {
		return nova402.Signature{}, err
	}
	sig.V += 27
	return sig, nil
}

// Recover returns the address of the signer that produced the signature over
// the digest. Returns ErrInvalidSignature if r or s is zero or not less than
// the curve order, if the recovery discriminant is not one of the two valid
// values, or if no valid curve point can be recovered.
func Recover(digest common.Hash, sig nova402.Signature) (common.Address, error) {
	v, err := normalizeV(sig.V)
	if err != nil {
		return common.Address{}, err
	}

	r := new(big.Int).SetBytes(sig.R[:])
	s := new(big.Int).SetBytes(sig.S[:])
	if !crypto.ValidateSignatureValues(v, r, s, false) {
		return common.Address{}, fmt.Errorf("%w: r or s out of range", nova402.ErrInvalidSignature)
	}

	raw := make([]byte, nova402.SignatureSize)
	copy(raw[:32], sig.R[:])
	copy(raw[32:64], sig.S[:])
	raw[64] = v

	pub, err := crypto.SigToPub(digest[:], raw)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", nova402.ErrInvalidSignature, err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// Verify reports whether the signature over the digest was produced by the
// expected signer. The address comparison is constant-time.
//
// A malformed signature is reported as (false, ErrInvalidSignature); a
// well-formed signature from the wrong signer is (false, nil). Callers that
// only need the original boolean contract can ignore the error.
func Verify(digest common.Hash, sig nova402.Signature, expected common.Address) (bool, error) {
	recovered, err := Recover(digest, sig)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(recovered[:], expected[:]) == 1, nil
}

// SignerAddress derives the 20-byte address of a private key's public key:
// the low-order bytes of the keccak-256 hash of the uncompressed public key.
func SignerAddress(key *ecdsa.PrivateKey) common.Address {
	return crypto.PubkeyToAddress(key.PublicKey)
}

// normalizeV maps a recovery discriminant in either the raw 0/1 or the
// Ethereum 27/28 convention to the raw form.
func normalizeV(v byte) (byte, error) {
	switch v {
	case 0, 1:
		return v, nil
	case 27, 28:
		return v - 27, nil
	default:
		return 0, fmt.Errorf("%w: recovery discriminant %d", nova402.ErrInvalidSignature, v)
	}
}
