// Package codec produces the canonical signable digest of a payment
// authorization.
//
// The byte layout is a protocol constant. Two conforming implementations
// encoding identical input must produce identical bytes prior to hashing, so
// any reordering, padding change or integer width change here is a breaking
// protocol change, not an internal refactor.
//
// Digest layout:
//
//	domainHash = keccak256(keccak256(name) || keccak256(version) ||
//	                       chainID(8B BE)  || contract(20B))
//	structHash = keccak256(from(20B) || to(20B) || value(8B BE) ||
//	                       validAfter(8B BE) || validBefore(8B BE) || nonce(32B))
//	digest     = keccak256(0x19 || 0x01 || domainHash || structHash)
//
// The 0x19 0x01 prefix binds the digest to structured-data signing and keeps
// it from colliding with plain-message or transaction digests.
package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	nova402 "github.com/nova402/nova402-go"
	"github.com/nova402/nova402-go/hashing"
)

// DomainContext binds a signature to a specific protocol deployment,
// preventing cross-context signature reuse.
type DomainContext struct {
	// Name is the protocol name (e.g., "Nova402").
	Name string

	// Version is the protocol version string (e.g., "1").
	Version string

	// ChainID identifies the target network.
	ChainID uint64

	// VerifyingContract is the settlement contract or program address.
	VerifyingContract common.Address
}

// Separator returns the 32-byte domain-separator hash for the context.
func (d DomainContext) Separator() common.Hash {
	buf := make([]byte, 0, 2*nova402.HashSize+8+nova402.AddressSize)
	buf = append(buf, hashing.Keccak256([]byte(d.Name))...)
	buf = append(buf, hashing.Keccak256([]byte(d.Version))...)
	buf = binary.BigEndian.AppendUint64(buf, d.ChainID)
	buf = append(buf, d.VerifyingContract.Bytes()...)
	return hashing.Keccak256Hash(buf)
}

// hashAuthorization computes the struct hash over the authorization fields in
// the fixed protocol order with fixed-width encoding.
func hashAuthorization(auth nova402.PaymentAuthorization) common.Hash {
	buf := make([]byte, 0, 2*nova402.AddressSize+3*8+nova402.NonceSize)
	buf = append(buf, auth.From.Bytes()...)
	buf = append(buf, auth.To.Bytes()...)
	buf = binary.BigEndian.AppendUint64(buf, auth.Value)
	buf = binary.BigEndian.AppendUint64(buf, auth.ValidAfter)
	buf = binary.BigEndian.AppendUint64(buf, auth.ValidBefore)
	buf = append(buf, auth.Nonce[:]...)
	return hashing.Keccak256Hash(buf)
}

// EncodeForSigning produces the canonical signable digest of the
// authorization under the given domain context.
// Returns ErrInvalidInput if the authorization violates its invariants.
func EncodeForSigning(auth nova402.PaymentAuthorization, domain DomainContext) (common.Hash, error) {
	if err := auth.Validate(); err != nil {
		return common.Hash{}, err
	}
	separator := domain.Separator()
	structHash := hashAuthorization(auth)

	buf := make([]byte, 0, 2+2*nova402.HashSize)
	buf = append(buf, 0x19, 0x01)
	buf = append(buf, separator[:]...)
	buf = append(buf, structHash[:]...)
	return hashing.Keccak256Hash(buf), nil
}

// USDCDomain builds the domain context for the USDC deployment on a named
// network, using the static network table.
// Returns ErrInvalidInput for unknown networks or non-EVM networks.
func USDCDomain(network string) (DomainContext, error) {
	config, err := nova402.GetNetworkConfig(network)
	if err != nil {
		return DomainContext{}, err
	}
	if config.Type != nova402.NetworkTypeEVM {
		return DomainContext{}, fmt.Errorf("%w: domain context requires an EVM network: %s", nova402.ErrInvalidInput, network)
	}
	usdc, err := nova402.GetUSDCAddress(network)
	if err != nil {
		return DomainContext{}, err
	}
	return DomainContext{
		Name:              "Nova402",
		Version:           "1",
		ChainID:           config.ChainID,
		VerifyingContract: common.HexToAddress(usdc),
	}, nil
}
