// Package eip3009 signs and verifies EIP-3009 TransferWithAuthorization
// typed data, so authorizations produced by this library settle against real
// USDC contracts on EVM chains.
//
// This is the on-chain-compatible companion to the codec package: codec
// defines the protocol's own fixed-width digest, while this package speaks
// the EIP-712 wire format the token contracts verify.
package eip3009

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	nova402 "github.com/nova402/nova402-go"
	"github.com/nova402/nova402-go/signature"
)

// Authorization holds TransferWithAuthorization parameters in the EIP-3009
// wire representation (uint256 amounts and timestamps).
type Authorization struct {
	From        common.Address
	To          common.Address
	Value       *big.Int
	ValidAfter  *big.Int
	ValidBefore *big.Int
	Nonce       [32]byte
}

// FromPayment converts a core PaymentAuthorization to its EIP-3009 form.
func FromPayment(auth nova402.PaymentAuthorization) Authorization {
	return Authorization{
		From:        auth.From,
		To:          auth.To,
		Value:       new(big.Int).SetUint64(auth.Value),
		ValidAfter:  new(big.Int).SetUint64(auth.ValidAfter),
		ValidBefore: new(big.Int).SetUint64(auth.ValidBefore),
		Nonce:       auth.Nonce,
	}
}

// CreateAuthorization builds an authorization from payer to recipient with a
// fresh random nonce and a validity window of now-10s .. now+timeout.
// The caller supplies now so this package never reads the clock.
func CreateAuthorization(from, to common.Address, value *big.Int, now uint64, timeoutSeconds int) (*Authorization, error) {
	if value == nil || value.Sign() < 0 {
		return nil, fmt.Errorf("%w: value must be non-negative", nova402.ErrInvalidInput)
	}
	if timeoutSeconds <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", nova402.ErrInvalidInput)
	}

	nonce, err := nova402.GenerateNonce()
	if err != nil {
		return nil, err
	}

	// Backdate the window start slightly to tolerate clock skew between
	// payer and facilitator.
	validAfter := uint64(0)
	if now > 10 {
		validAfter = now - 10
	}

	return &Authorization{
		From:        from,
		To:          to,
		Value:       value,
		ValidAfter:  new(big.Int).SetUint64(validAfter),
		ValidBefore: new(big.Int).SetUint64(now + uint64(timeoutSeconds)),
		Nonce:       nonce,
	}, nil
}

// typedData builds the EIP-712 typed-data structure for the authorization
// under the token's signing domain.
func typedData(tokenAddress common.Address, chainID *big.Int, auth *Authorization, name, version string) apitypes.TypedData {
	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			"TransferWithAuthorization": []apitypes.Type{
				{Name: "from", Type: "address"},
				{Name: "to", Type: "address"},
				{Name: "value", Type: "uint256"},
				{Name: "validAfter", Type: "uint256"},
				{Name: "validBefore", Type: "uint256"},
				{Name: "nonce", Type: "bytes32"},
			},
		},
		PrimaryType: "TransferWithAuthorization",
		Domain: apitypes.TypedDataDomain{
			Name:              name,
			Version:           version,
			ChainId:           (*math.HexOrDecimal256)(chainID),
			VerifyingContract: tokenAddress.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"from":        auth.From.Hex(),
			"to":          auth.To.Hex(),
			"value":       (*math.HexOrDecimal256)(auth.Value),
			"validAfter":  (*math.HexOrDecimal256)(auth.ValidAfter),
			"validBefore": (*math.HexOrDecimal256)(auth.ValidBefore),
			"nonce":       common.BytesToHash(auth.Nonce[:]).Hex(),
		},
	}
}

// Digest computes the EIP-712 signing digest for the authorization under the
// token contract's domain.
func Digest(tokenAddress common.Address, chainID *big.Int, auth *Authorization, name, version string) (common.Hash, error) {
	td := typedData(tokenAddress, chainID, auth, name, version)

	domainSeparator, err := td.HashStruct("EIP712Domain", td.Domain.Map())
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: hashing domain: %v", nova402.ErrInvalidInput, err)
	}
	messageHash, err := td.HashStruct("TransferWithAuthorization", td.Message)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: hashing message: %v", nova402.ErrInvalidInput, err)
	}

	rawData := append([]byte{0x19, 0x01}, append(domainSeparator, messageHash...)...)
	return common.BytesToHash(crypto.Keccak256(rawData)), nil
}

// SignAuthorization signs the authorization with the payer's key and returns
// the hex-encoded 65-byte signature with V in the 27/28 convention, as token
// contracts expect it.
func SignAuthorization(key *ecdsa.PrivateKey, tokenAddress common.Address, chainID *big.Int, auth *Authorization, name, version string) (string, error) {
	digest, err := Digest(tokenAddress, chainID, auth, name, version)
	if err != nil {
		return "", err
	}

	sig, err := signature.Sign(digest, key)
	if err != nil {
		return "", err
	}
	return nova402.BytesToHex(sig.Bytes()), nil
}

// VerifyAuthorization reports whether sigHex is a valid signature over the
// authorization by auth.From. A malformed signature yields
// (false, ErrInvalidSignature); a well-formed signature by a different signer
// yields (false, nil).
func VerifyAuthorization(sigHex string, tokenAddress common.Address, chainID *big.Int, auth *Authorization, name, version string) (bool, error) {
	raw, err := nova402.HexToBytes(sigHex)
	if err != nil {
		return false, err
	}
	sig, err := nova402.SignatureFromBytes(raw)
	if err != nil {
		return false, err
	}

	digest, err := Digest(tokenAddress, chainID, auth, name, version)
	if err != nil {
		return false, err
	}
	return signature.Verify(digest, sig, auth.From)
}
