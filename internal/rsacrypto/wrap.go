package rsacrypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

// WrapPrivateKey encrypts a PEM-encoded private key blob under a passphrase.
// The key is derived with scrypt and the blob sealed with AES-256-GCM; the
// salt, nonce, and KDF parameters travel in the PEM block headers so the
// output is self-describing.
func WrapPrivateKey(privatePEM []byte, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase is required")
	}

	salt := make([]byte, wrapSaltSize)
	if _, err := io.ReadFull(randomSource(), salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	nonce := make([]byte, wrapNonceSize)
	if _, err := io.ReadFull(randomSource(), nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	aead, err := wrapAEAD(passphrase, salt)
	if err != nil {
		return nil, err
	}

	sealed := aead.Seal(nil, nonce, privatePEM, nil)

	block := &pem.Block{
		Type: pemTypeWrappedKey,
		Headers: map[string]string{
			"KDF":   fmt.Sprintf("scrypt-%d-%d-%d", scryptN, scryptR, scryptP),
			"Salt":  base64.StdEncoding.EncodeToString(salt),
			"Nonce": base64.StdEncoding.EncodeToString(nonce),
		},
		Bytes: sealed,
	}

	return pem.EncodeToMemory(block), nil
}

// UnwrapPrivateKey recovers the PEM-encoded private key blob from a wrapped
// container. All failures, including a wrong passphrase, are reported
// uniformly as ErrUnwrapFailed.
func UnwrapPrivateKey(wrapped []byte, passphrase string) ([]byte, error) {
	block, _ := pem.Decode(wrapped)
	if block == nil || block.Type != pemTypeWrappedKey {
		return nil, ErrUnwrapFailed
	}

	salt, err := base64.StdEncoding.DecodeString(block.Headers["Salt"])
	if err != nil || len(salt) != wrapSaltSize {
		return nil, ErrUnwrapFailed
	}

	nonce, err := base64.StdEncoding.DecodeString(block.Headers["Nonce"])
	if err != nil || len(nonce) != wrapNonceSize {
		return nil, ErrUnwrapFailed
	}

	aead, err := wrapAEAD(passphrase, salt)
	if err != nil {
		return nil, ErrUnwrapFailed
	}

	plaintext, err := aead.Open(nil, nonce, block.Bytes, nil)
	if err != nil {
		return nil, ErrUnwrapFailed
	}

	return plaintext, nil
}

// IsWrappedKey reports whether the blob is a passphrase-wrapped private key
// container rather than a plain PKCS#8 PEM.
func IsWrappedKey(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil && block.Type == pemTypeWrappedKey
}

func wrapAEAD(passphrase string, salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, wrapKeySize)
	if err != nil {
		return nil, fmt.Errorf("derive wrap key: %w", err)
	}

	blockCipher, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(blockCipher)
}
