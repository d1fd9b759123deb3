// Package validation provides the pure predicates gating acceptance of a
// payment authorization: address format, chain-id membership and temporal
// validity windows.
//
// All predicates are total and side-effect free. The current time is always
// an explicit argument; this package never reads the system clock.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gagliardetto/solana-go"

	nova402 "github.com/nova402/nova402-go"
)

// evmAddressRegex matches Ethereum-style addresses: exactly 40 hex characters
// after an optional 0x prefix, case-insensitive.
var evmAddressRegex = regexp.MustCompile(`^(0x)?[0-9a-fA-F]{40}$`)

// AddressWellFormed reports whether the string is a well-formed EVM address.
// Checksum casing is deliberately not checked here; see ChecksumValid.
func AddressWellFormed(address string) bool {
	return evmAddressRegex.MatchString(address)
}

// ChecksumValid reports whether a well-formed address carries a valid EIP-55
// checksum. All-lowercase and all-uppercase addresses carry no checksum and
// are accepted. A checksum mismatch is a separate, non-fatal concern from
// basic well-formedness; callers typically warn rather than reject.
func ChecksumValid(address string) bool {
	if !AddressWellFormed(address) {
		return false
	}
	hexPart := strings.TrimPrefix(address, "0x")
	if hexPart == strings.ToLower(hexPart) || hexPart == strings.ToUpper(hexPart) {
		return true
	}
	return "0x"+hexPart == common.HexToAddress(address).Hex()
}

// SolanaAddressWellFormed reports whether the string parses as a Solana
// base58 public key.
func SolanaAddressWellFormed(address string) bool {
	_, err := solana.PublicKeyFromBase58(address)
	return err == nil
}

// ChainIDAllowed reports whether the chain id is non-zero and present in the
// caller-supplied allow-list. The allow-list is external configuration;
// nova402.AllowedChainIDs provides the one derived from the static network
// table.
func ChainIDAllowed(chainID uint64, allowed []uint64) bool {
	if chainID == 0 {
		return false
	}
	for _, id := range allowed {
		if id == chainID {
			return true
		}
	}
	return false
}

// NotExpired reports whether the authorization deadline has not passed.
// The deadline is inclusive: now == validBefore is still valid.
func NotExpired(validBefore, now uint64) bool {
	return now <= validBefore
}

// WithinWindow reports whether now falls inside the authorization's validity
// window. Both bounds are inclusive.
func WithinWindow(validAfter, validBefore, now uint64) bool {
	return validAfter <= now && now <= validBefore
}

// ValidateAuthorization checks the structural and temporal acceptability of
// an authorization at the given time. It returns nil if the authorization is
// acceptable, ErrInvalidInput for structural violations, and
// ErrVerificationFailed for a well-formed authorization outside its window.
// Signature validity is a separate check; see the signature package.
func ValidateAuthorization(auth nova402.PaymentAuthorization, now uint64) error {
	if err := auth.Validate(); err != nil {
		return err
	}
	if auth.From == (common.Address{}) {
		return fmt.Errorf("%w: zero payer address", nova402.ErrInvalidInput)
	}
	if auth.To == (common.Address{}) {
		return fmt.Errorf("%w: zero recipient address", nova402.ErrInvalidInput)
	}
	if !WithinWindow(auth.ValidAfter, auth.ValidBefore, now) {
		return fmt.Errorf("%w: authorization not valid at %d (window %d..%d)",
			nova402.ErrVerificationFailed, now, auth.ValidAfter, auth.ValidBefore)
	}
	return nil
}
