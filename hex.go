package nova402

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// BytesToHex encodes bytes as a lowercase hex string with a 0x prefix.
func BytesToHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// HexToBytes decodes a hex string with an optional 0x prefix.
// Returns ErrInvalidInput on odd-length or non-hex-digit input.
func HexToBytes(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd-length hex string", ErrInvalidInput)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return b, nil
}

// HexToBytesInto decodes a hex string into a caller-provided buffer and
// returns the number of bytes written. Returns ErrBufferTooSmall if dst
// cannot hold the decoded bytes, or ErrInvalidInput for malformed hex.
func HexToBytesInto(dst []byte, s string) (int, error) {
	b, err := HexToBytes(s)
	if err != nil {
		return 0, err
	}
	if len(b) > len(dst) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, len(b), len(dst))
	}
	return copy(dst, b), nil
}
