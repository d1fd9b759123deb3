// Package encoding converts signed payment authorizations to and from the
// base64-encoded JSON envelope carried in X-PAYMENT-style transport headers.
package encoding

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	nova402 "github.com/nova402/nova402-go"
)

// WireAuthorization is the JSON wire form of a payment authorization.
// Amounts and timestamps are decimal strings; addresses and the nonce are
// 0x-prefixed hex.
type WireAuthorization struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`
	ValidAfter  string `json:"validAfter"`
	ValidBefore string `json:"validBefore"`
	Nonce       string `json:"nonce"`
}

// Envelope is the payment header payload: protocol version, target network,
// the authorization, and its hex-encoded signature.
type Envelope struct {
	X402Version   int               `json:"x402Version"`
	Network       string            `json:"network"`
	Signature     string            `json:"signature"`
	Authorization WireAuthorization `json:"authorization"`
}

// NewEnvelope wraps a signed authorization for transport.
func NewEnvelope(network string, auth nova402.PaymentAuthorization, sig nova402.Signature) Envelope {
	return Envelope{
		X402Version: nova402.X402Version,
		Network:     network,
		Signature:   nova402.BytesToHex(sig.Bytes()),
		Authorization: WireAuthorization{
			From:        auth.From.Hex(),
			To:          auth.To.Hex(),
			Value:       strconv.FormatUint(auth.Value, 10),
			ValidAfter:  strconv.FormatUint(auth.ValidAfter, 10),
			ValidBefore: strconv.FormatUint(auth.ValidBefore, 10),
			Nonce:       nova402.BytesToHex(auth.Nonce[:]),
		},
	}
}

// PaymentAuthorization converts the wire form back to a core
// PaymentAuthorization. Returns ErrInvalidInput for malformed fields.
func (e Envelope) PaymentAuthorization() (nova402.PaymentAuthorization, error) {
	var auth nova402.PaymentAuthorization

	for _, field := range []struct {
		name  string
		value string
	}{
		{"from", e.Authorization.From},
		{"to", e.Authorization.To},
	} {
		if !common.IsHexAddress(field.value) {
			return auth, fmt.Errorf("%w: malformed %s address: %s", nova402.ErrInvalidInput, field.name, field.value)
		}
	}
	auth.From = common.HexToAddress(e.Authorization.From)
	auth.To = common.HexToAddress(e.Authorization.To)

	value, err := strconv.ParseUint(e.Authorization.Value, 10, 64)
	if err != nil {
		return auth, fmt.Errorf("%w: malformed value: %s", nova402.ErrInvalidInput, e.Authorization.Value)
	}
	validAfter, err := strconv.ParseUint(e.Authorization.ValidAfter, 10, 64)
	if err != nil {
		return auth, fmt.Errorf("%w: malformed validAfter: %s", nova402.ErrInvalidInput, e.Authorization.ValidAfter)
	}
	validBefore, err := strconv.ParseUint(e.Authorization.ValidBefore, 10, 64)
	if err != nil {
		return auth, fmt.Errorf("%w: malformed validBefore: %s", nova402.ErrInvalidInput, e.Authorization.ValidBefore)
	}
	auth.Value = value
	auth.ValidAfter = validAfter
	auth.ValidBefore = validBefore

	nonce, err := nova402.HexToBytes(e.Authorization.Nonce)
	if err != nil {
		return auth, err
	}
	if len(nonce) != nova402.NonceSize {
		return auth, fmt.Errorf("%w: nonce must be %d bytes, got %d", nova402.ErrInvalidInput, nova402.NonceSize, len(nonce))
	}
	copy(auth.Nonce[:], nonce)

	return auth, auth.Validate()
}

// DecodeSignature parses the envelope's hex signature.
func (e Envelope) DecodeSignature() (nova402.Signature, error) {
	raw, err := nova402.HexToBytes(e.Signature)
	if err != nil {
		return nova402.Signature{}, err
	}
	return nova402.SignatureFromBytes(raw)
}

// Encode converts an envelope to its base64-encoded JSON header value.
func Encode(env Envelope) (string, error) {
	payload, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("%w: marshaling envelope: %v", nova402.ErrInvalidInput, err)
	}
	return base64.StdEncoding.EncodeToString(payload), nil
}

// Decode parses a base64-encoded JSON header value into an envelope.
// Returns ErrInvalidInput if base64 decoding or JSON unmarshaling fails.
func Decode(encoded string) (Envelope, error) {
	var env Envelope

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return env, fmt.Errorf("%w: decoding base64: %v", nova402.ErrInvalidInput, err)
	}
	if err := json.Unmarshal(decoded, &env); err != nil {
		return env, fmt.Errorf("%w: unmarshaling envelope: %v", nova402.ErrInvalidInput, err)
	}
	return env, nil
}
