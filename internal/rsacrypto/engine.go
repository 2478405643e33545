package rsacrypto

import (
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// Capacity returns the maximum plaintext size in bytes that the given public
// key can encrypt under OAEP with SHA-256: keyBytes - 2*hashLen - 2.
// For a 2048-bit key this is 190 bytes.
func Capacity(pub *rsa.PublicKey) int {
	if pub == nil {
		return 0
	}
	return pub.Size() - 2*OAEPHashSize - 2
}

// Encrypt applies OAEP padding (SHA-256 hash and MGF1) to the plaintext and
// performs the public-key transform. The ciphertext is returned as standard
// base64 text; the decoded length is always exactly one modulus block.
//
// Plaintexts larger than Capacity(pub) are rejected with ErrMessageTooLarge.
// There is no chunking or hybrid fallback: the size ceiling is part of the
// design.
func Encrypt(plaintext []byte, pub *rsa.PublicKey) (string, error) {
	if pub == nil {
		return "", ErrNoPublicKey
	}

	if max := Capacity(pub); len(plaintext) > max {
		return "", fmt.Errorf("%w: %d bytes, capacity %d", ErrMessageTooLarge, len(plaintext), max)
	}

	ciphertext, err := rsa.EncryptOAEP(sha256.New(), randomSource(), pub, plaintext, nil)
	if err != nil {
		return "", fmt.Errorf("encrypt: %w", err)
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt reverses the base64 encoding and the OAEP transform with the same
// hash/MGF configuration used at encryption time.
//
// Every failure (malformed encoding, wrong length for the modulus, wrong key,
// padding check) is reported uniformly as ErrDecryptionFailed. The underlying
// rsa.DecryptOAEP is constant-time; collapsing the surrounding checks keeps
// the caller-visible behavior uniform as well.
func Decrypt(encoded string, priv *rsa.PrivateKey) ([]byte, error) {
	if priv == nil {
		return nil, ErrNoPrivateKey
	}

	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	if len(ciphertext) != priv.Size() {
		return nil, ErrDecryptionFailed
	}

	plaintext, err := rsa.DecryptOAEP(sha256.New(), nil, priv, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}
