package signature

import (
	"crypto/ecdsa"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	nova402 "github.com/nova402/nova402-go"
)

// Well-known throwaway key used only in tests.
const testKeyHex = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"

func testKey(t *testing.T) *ecdsa.PrivateKey {
	t.Helper()
	key, err := crypto.HexToECDSA(testKeyHex)
	if err != nil {
		t.Fatalf("loading test key: %v", err)
	}
	return key
}

func testDigest() common.Hash {
	var d common.Hash
	for i := range d {
		d[i] = byte(i * 7)
	}
	return d
}

func TestSignVerifyRoundTrip(t *testing.T) {
	key := testKey(t)
	digest := testDigest()

	sig, err := Sign(digest, key)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if sig.V != 27 && sig.V != 28 {
		t.Errorf("V = %d, want 27 or 28", sig.V)
	}
	if sig.R == ([32]byte{}) || sig.S == ([32]byte{}) {
		t.Error("zero r or s component")
	}

	ok, err := Verify(digest, sig, SignerAddress(key))
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if !ok {
		t.Error("Verify() = false for the signing key's address")
	}
}

func TestSignDeterministic(t *testing.T) {
	key := testKey(t)
	digest := testDigest()

	a, err := Sign(digest, key)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	b, err := Sign(digest, key)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if a != b {
		t.Errorf("deterministic signing produced different signatures: %x vs %x", a.Bytes(), b.Bytes())
	}
}

func TestRecover(t *testing.T) {
	key := testKey(t)
	digest := testDigest()

	sig, err := Sign(digest, key)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	recovered, err := Recover(digest, sig)
	if err != nil {
		t.Fatalf("Recover() error = %v", err)
	}
	if recovered != SignerAddress(key) {
		t.Errorf("Recover() = %s, want %s", recovered.Hex(), SignerAddress(key).Hex())
	}

	// Raw 0/1 discriminant is accepted as well.
	sig.V -= 27
	recovered, err = Recover(digest, sig)
	if err != nil {
		t.Fatalf("Recover() with raw v error = %v", err)
	}
	if recovered != SignerAddress(key) {
		t.Errorf("Recover() with raw v = %s, want %s", recovered.Hex(), SignerAddress(key).Hex())
	}
}

func TestVerifyTamperSensitivity(t *testing.T) {
	key := testKey(t)
	digest := testDigest()
	signer := SignerAddress(key)

	sig, err := Sign(digest, key)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*common.Hash, *nova402.Signature)
	}{
		{
			name:   "flip digest bit",
			mutate: func(d *common.Hash, _ *nova402.Signature) { d[0] ^= 0x01 },
		},
		{
			name:   "flip r bit",
			mutate: func(_ *common.Hash, s *nova402.Signature) { s.R[31] ^= 0x01 },
		},
		{
			name:   "flip s bit",
			mutate: func(_ *common.Hash, s *nova402.Signature) { s.S[31] ^= 0x01 },
		},
		{
			name:   "flip recovery discriminant",
			mutate: func(_ *common.Hash, s *nova402.Signature) { s.V ^= 0x01 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, s := digest, sig
			tt.mutate(&d, &s)
			ok, err := Verify(d, s, signer)
			if ok {
				t.Error("Verify() = true for tampered input")
			}
			// Tampering may yield either a recovery failure or a
			// well-formed signature from a different address; both are
			// rejections, never a panic.
			_ = err
		})
	}
}

func TestVerifyWrongSigner(t *testing.T) {
	key := testKey(t)
	digest := testDigest()

	sig, err := Sign(digest, key)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	other := common.HexToAddress("0x00000000000000000000000000000000deadbeef")
	ok, err := Verify(digest, sig, other)
	if err != nil {
		t.Fatalf("Verify() wrong signer error = %v, want nil (well-formed signature)", err)
	}
	if ok {
		t.Error("Verify() = true for wrong signer")
	}
}

func TestSignInvalidKey(t *testing.T) {
	digest := testDigest()

	tests := []struct {
		name string
		key  *ecdsa.PrivateKey
	}{
		{
			name: "nil key",
			key:  nil,
		},
		{
			name: "zero scalar",
			key:  &ecdsa.PrivateKey{D: big.NewInt(0)},
		},
		{
			name: "scalar equals curve order",
			key:  &ecdsa.PrivateKey{D: new(big.Int).Set(crypto.S256().Params().N)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Sign(digest, tt.key); !errors.Is(err, nova402.ErrInvalidInput) {
				t.Errorf("Sign() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestRecoverMalformedSignature(t *testing.T) {
	key := testKey(t)
	digest := testDigest()

	valid, err := Sign(digest, key)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*nova402.Signature)
	}{
		{
			name:   "zero r",
			mutate: func(s *nova402.Signature) { s.R = [32]byte{} },
		},
		{
			name:   "zero s",
			mutate: func(s *nova402.Signature) { s.S = [32]byte{} },
		},
		{
			name: "r at curve order",
			mutate: func(s *nova402.Signature) {
				crypto.S256().Params().N.FillBytes(s.R[:])
			},
		},
		{
			name:   "bad recovery discriminant",
			mutate: func(s *nova402.Signature) { s.V = 5 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := valid
			tt.mutate(&sig)
			if _, err := Recover(digest, sig); !errors.Is(err, nova402.ErrInvalidSignature) {
				t.Errorf("Recover() error = %v, want ErrInvalidSignature", err)
			}
			if ok, _ := Verify(digest, sig, SignerAddress(key)); ok {
				t.Error("Verify() = true for malformed signature")
			}
		})
	}
}
