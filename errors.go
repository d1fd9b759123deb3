package nova402

import "errors"

// Sentinel errors for nova402 core operations. Fallible operations return one
// of these, usually wrapped with fmt.Errorf("%w: ...") for context, so callers
// can classify failures with errors.Is.
var (
	// ErrInvalidInput indicates malformed input: wrong lengths, out-of-range
	// scalars, bad hex, unknown network names. Rejected before any
	// cryptographic work begins.
	ErrInvalidInput = errors.New("nova402: invalid input")

	// ErrInvalidSignature indicates a structurally invalid signature:
	// zero or out-of-range r/s, or a recovery discriminant that does not
	// correspond to a valid curve point.
	ErrInvalidSignature = errors.New("nova402: invalid signature")

	// ErrBufferTooSmall indicates a caller-provided buffer has insufficient
	// capacity for the result.
	ErrBufferTooSmall = errors.New("nova402: buffer too small")

	// ErrVerificationFailed indicates a successfully parsed but
	// cryptographically invalid artifact: wrong signer, tampered proof,
	// expired window.
	ErrVerificationFailed = errors.New("nova402: verification failed")
)
