package rsacrypto

import "errors"

var (
	// ErrKeyTooSmall is returned when a requested modulus size is below the
	// 2048-bit floor.
	ErrKeyTooSmall = errors.New("key size below 2048-bit minimum")

	// ErrInvalidKeyFormat is returned when persisted key material cannot be
	// parsed as a PEM-wrapped PKCS#8 or SubjectPublicKeyInfo RSA key.
	ErrInvalidKeyFormat = errors.New("invalid key format")

	// ErrNoPublicKey is returned when encryption is attempted without a
	// public key.
	ErrNoPublicKey = errors.New("no public key loaded")

	// ErrNoPrivateKey is returned when decryption is attempted without a
	// private key.
	ErrNoPrivateKey = errors.New("no private key loaded")

	// ErrMessageTooLarge is returned when a plaintext exceeds the OAEP
	// capacity of the configured modulus.
	ErrMessageTooLarge = errors.New("message exceeds OAEP capacity")

	// ErrDecryptionFailed is returned for every decryption failure: malformed
	// encoding, wrong ciphertext length, wrong key, or padding check failure.
	// The cause is deliberately not distinguished.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrUnwrapFailed is returned when a passphrase-wrapped private key
	// cannot be recovered, including wrong-passphrase cases.
	ErrUnwrapFailed = errors.New("private key unwrap failed")
)
