package rsacrypto

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

// EncodePrivateKey serializes a private key as a PEM-wrapped PKCS#8 blob.
// Encoding a fixed key is deterministic: encode-then-parse is bit-exact.
func EncodePrivateKey(priv *rsa.PrivateKey) ([]byte, error) {
	if priv == nil {
		return nil, ErrNoPrivateKey
	}

	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("marshal private key: %w", err)
	}

	return pem.EncodeToMemory(&pem.Block{Type: pemTypePrivateKey, Bytes: der}), nil
}

// EncodePublicKey serializes a public key as a PEM-wrapped
// SubjectPublicKeyInfo blob.
func EncodePublicKey(pub *rsa.PublicKey) ([]byte, error) {
	if pub == nil {
		return nil, ErrNoPublicKey
	}

	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("marshal public key: %w", err)
	}

	return pem.EncodeToMemory(&pem.Block{Type: pemTypePublicKey, Bytes: der}), nil
}

// ParsePrivateKey reconstructs a private key from a PEM-wrapped PKCS#8 blob.
func ParsePrivateKey(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil || block.Type != pemTypePrivateKey {
		return nil, fmt.Errorf("%w: not a PEM private key", ErrInvalidKeyFormat)
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyFormat, err)
	}

	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key", ErrInvalidKeyFormat)
	}

	return priv, nil
}

// ParsePublicKey reconstructs a public key from a PEM-wrapped
// SubjectPublicKeyInfo blob.
func ParsePublicKey(data []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil || block.Type != pemTypePublicKey {
		return nil, fmt.Errorf("%w: not a PEM public key", ErrInvalidKeyFormat)
	}

	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyFormat, err)
	}

	pub, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key", ErrInvalidKeyFormat)
	}

	return pub, nil
}

// FromPEM builds a key pair from zero, one, or both PEM halves. The private
// half, when present, always determines the public half; a supplied public
// blob is still parsed so malformed input is never silently accepted.
// At least one half is required.
func FromPEM(publicPEM, privatePEM []byte) (*KeyPair, error) {
	if len(publicPEM) == 0 && len(privatePEM) == 0 {
		return nil, fmt.Errorf("%w: no key material supplied", ErrInvalidKeyFormat)
	}

	kp := &KeyPair{}

	if len(privatePEM) > 0 {
		priv, err := ParsePrivateKey(privatePEM)
		if err != nil {
			return nil, err
		}
		kp.Private = priv
		kp.Public = &priv.PublicKey
	}

	if len(publicPEM) > 0 {
		pub, err := ParsePublicKey(publicPEM)
		if err != nil {
			return nil, err
		}
		// Trust-on-load: the parsed blob wins only when no private half
		// already determined the public key.
		if kp.Public == nil {
			kp.Public = pub
		}
	}

	return kp, nil
}
