package rsacrypto

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"io"
)

// randReader is the random source used for key generation and OAEP padding.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

func randomSource() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

// KeyPair holds the two halves of an RSA key pair. Either half may be absent:
// a pair with only a public key supports encrypt-only operation, a pair with
// a private key supports both directions (the public half is always derived
// from the private one).
type KeyPair struct {
	// Private is the RSA private key, or nil for an encrypt-only pair.
	Private *rsa.PrivateKey
	// Public is the RSA public key. Always set when Private is set.
	Public *rsa.PublicKey
}

// Generate creates a fresh RSA key pair with the given modulus bit length.
// Sizes below MinKeyBits are rejected with ErrKeyTooSmall.
func Generate(bits int) (*KeyPair, error) {
	if bits < MinKeyBits {
		return nil, fmt.Errorf("%w: %d bits", ErrKeyTooSmall, bits)
	}

	priv, err := rsa.GenerateKey(randomSource(), bits)
	if err != nil {
		return nil, fmt.Errorf("generate key pair: %w", err)
	}

	return &KeyPair{Private: priv, Public: &priv.PublicKey}, nil
}

// CanEncrypt reports whether the pair holds a public key.
func (kp *KeyPair) CanEncrypt() bool {
	return kp != nil && kp.Public != nil
}

// CanDecrypt reports whether the pair holds a private key.
func (kp *KeyPair) CanDecrypt() bool {
	return kp != nil && kp.Private != nil
}
