package rsacrypto

import (
	"errors"
	"sync"
	"testing"
)

var (
	testKeyOnce sync.Once
	testKey     *KeyPair
	testKeyErr  error
)

// testKeyPair returns a shared 2048-bit key pair so each test doesn't pay for
// its own key generation.
func testKeyPair(t *testing.T) *KeyPair {
	t.Helper()
	testKeyOnce.Do(func() {
		testKey, testKeyErr = Generate(DefaultKeyBits)
	})
	if testKeyErr != nil {
		t.Fatalf("Generate() error = %v", testKeyErr)
	}
	return testKey
}

func TestGenerate(t *testing.T) {
	kp := testKeyPair(t)

	if kp.Private == nil {
		t.Fatal("Private key is nil")
	}
	if kp.Public == nil {
		t.Fatal("Public key is nil")
	}
	if got := kp.Public.Size(); got != DefaultKeyBits/8 {
		t.Errorf("modulus size = %d bytes, want %d", got, DefaultKeyBits/8)
	}
	if kp.Public.N.Cmp(kp.Private.PublicKey.N) != 0 {
		t.Error("public key does not match the private key's public half")
	}
	if !kp.CanEncrypt() || !kp.CanDecrypt() {
		t.Error("generated pair should support both directions")
	}
}

func TestGenerate_RejectsSmallKeys(t *testing.T) {
	tests := []struct {
		name string
		bits int
	}{
		{"zero", 0},
		{"512", 512},
		{"1024", 1024},
		{"one bit short", MinKeyBits - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.bits)
			if !errors.Is(err, ErrKeyTooSmall) {
				t.Errorf("Generate(%d) error = %v, want ErrKeyTooSmall", tt.bits, err)
			}
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestGenerate_EntropyFailure(t *testing.T) {
	restore := SetRandReaderForTesting(failingReader{})
	defer restore()

	if _, err := Generate(DefaultKeyBits); err == nil {
		t.Error("Generate() with failing entropy source should return an error")
	}
}

func TestKeyPair_HalfCapabilities(t *testing.T) {
	kp := testKeyPair(t)

	encryptOnly := &KeyPair{Public: kp.Public}
	if !encryptOnly.CanEncrypt() {
		t.Error("public-only pair should support encrypt")
	}
	if encryptOnly.CanDecrypt() {
		t.Error("public-only pair should not support decrypt")
	}

	var empty *KeyPair
	if empty.CanEncrypt() || empty.CanDecrypt() {
		t.Error("nil pair should support nothing")
	}
}
