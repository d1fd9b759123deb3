package nova402

import (
	"crypto/rand"
	"fmt"
)

// GenerateNonce produces a 32-byte nonce from a cryptographically secure
// source. A failure to obtain secure randomness is returned as an error and
// never silently downgraded to a weaker source.
func GenerateNonce() ([NonceSize]byte, error) {
	var nonce [NonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nonce, fmt.Errorf("%w: secure randomness unavailable: %v", ErrInvalidInput, err)
	}
	return nonce, nil
}
