package emotioncipher

import (
	"errors"
	"fmt"

	"github.com/muhammadnavas/emotioncipher-go/internal/rsacrypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrKeyGeneration is returned when a key pair cannot be generated.
	ErrKeyGeneration = errors.New("key generation failed")

	// ErrKeyTooSmall is returned when a requested modulus size is below the
	// 2048-bit floor.
	ErrKeyTooSmall = errors.New("key size below 2048-bit minimum")

	// ErrKeyFormat is returned when persisted key material is malformed.
	// Recoverable by regenerating the key pair.
	ErrKeyFormat = errors.New("malformed key material")

	// ErrKeyMissing is returned when an operation is attempted without the
	// required key half loaded.
	ErrKeyMissing = errors.New("required key half is not loaded")

	// ErrMessageTooLarge is returned when a plaintext exceeds the OAEP
	// capacity of the active key. Messages are never truncated or chunked.
	ErrMessageTooLarge = errors.New("message exceeds OAEP capacity")

	// ErrDecryptionFailed is returned for every decryption failure without
	// detail on which check failed.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrClassifierUnavailable is returned when an annotation is requested
	// but no classifier is configured.
	ErrClassifierUnavailable = errors.New("classifier is not configured")

	// ErrNoStoredKeys is returned by a KeyStorage when no persisted key
	// material exists yet.
	ErrNoStoredKeys = errors.New("no stored keys found")

	// ErrReportSignature is returned when an exported report's signature
	// does not verify.
	ErrReportSignature = errors.New("report signature verification failed")
)

// CipherError is implemented by all typed errors of this package.
type CipherError interface {
	error
	CipherError() // marker method
}

// KeyGenerationError reports a failure to generate a key pair, either from
// a rejected parameter or an entropy failure.
type KeyGenerationError struct {
	Bits int
	Err  error
}

func (e *KeyGenerationError) Error() string {
	return fmt.Sprintf("key generation failed (%d bits): %v", e.Bits, e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyGenerationError) Unwrap() error { return e.Err }

// Is implements errors.Is for sentinel error matching.
func (e *KeyGenerationError) Is(target error) bool { return target == ErrKeyGeneration }

// CipherError implements the CipherError interface.
func (e *KeyGenerationError) CipherError() {}

// KeyFormatError reports malformed persisted key material.
type KeyFormatError struct {
	Err error
}

func (e *KeyFormatError) Error() string {
	return fmt.Sprintf("malformed key material: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyFormatError) Unwrap() error { return e.Err }

// Is implements errors.Is for sentinel error matching.
func (e *KeyFormatError) Is(target error) bool { return target == ErrKeyFormat }

// CipherError implements the CipherError interface.
func (e *KeyFormatError) CipherError() {}

// MessageTooLargeError reports a plaintext that exceeds the OAEP capacity of
// the active key.
type MessageTooLargeError struct {
	// Length is the plaintext length in bytes.
	Length int
	// Max is the OAEP capacity of the active key in bytes.
	Max int
}

func (e *MessageTooLargeError) Error() string {
	return fmt.Sprintf("message of %d bytes exceeds %d-byte capacity", e.Length, e.Max)
}

// Is implements errors.Is for sentinel error matching.
func (e *MessageTooLargeError) Is(target error) bool { return target == ErrMessageTooLarge }

// CipherError implements the CipherError interface.
func (e *MessageTooLargeError) CipherError() {}

// DecryptionError reports a failed decryption. It carries no detail on which
// check failed: all causes present identically to the caller.
type DecryptionError struct{}

func (e *DecryptionError) Error() string { return "decryption failed" }

// Is implements errors.Is for sentinel error matching.
func (e *DecryptionError) Is(target error) bool { return target == ErrDecryptionFailed }

// CipherError implements the CipherError interface.
func (e *DecryptionError) CipherError() {}

// ClassifierError wraps a failure of the external classifier. It never
// escapes the session API as an operation failure; it is only delivered to
// the annotation error callback.
type ClassifierError struct {
	Err error
}

func (e *ClassifierError) Error() string {
	return fmt.Sprintf("classifier error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ClassifierError) Unwrap() error { return e.Err }

// CipherError implements the CipherError interface.
func (e *ClassifierError) CipherError() {}

// wrapKeyError converts internal key errors to public errors so that
// errors.Is() checks work with public sentinels.
func wrapKeyError(err error, bits int) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, rsacrypto.ErrKeyTooSmall):
		return &KeyGenerationError{Bits: bits, Err: ErrKeyTooSmall}
	case errors.Is(err, rsacrypto.ErrInvalidKeyFormat):
		return &KeyFormatError{Err: err}
	case errors.Is(err, rsacrypto.ErrUnwrapFailed):
		return &KeyFormatError{Err: err}
	case errors.Is(err, rsacrypto.ErrNoPublicKey), errors.Is(err, rsacrypto.ErrNoPrivateKey):
		return ErrKeyMissing
	default:
		return &KeyGenerationError{Bits: bits, Err: err}
	}
}

// kindForError maps a public error to its stable ErrorKind tag.
func kindForError(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorKindNone
	case errors.Is(err, ErrMessageTooLarge):
		return ErrorKindMessageTooLarge
	case errors.Is(err, ErrDecryptionFailed):
		return ErrorKindDecryption
	case errors.Is(err, ErrKeyMissing):
		return ErrorKindKeyMissing
	case errors.Is(err, ErrKeyFormat):
		return ErrorKindKeyFormat
	default:
		return ErrorKindKeyGeneration
	}
}
