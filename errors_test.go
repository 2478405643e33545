package emotioncipher

import (
	"errors"
	"strings"
	"testing"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"key generation", &KeyGenerationError{Bits: 2048, Err: errors.New("entropy")}, ErrKeyGeneration},
		{"key too small", &KeyGenerationError{Bits: 512, Err: ErrKeyTooSmall}, ErrKeyTooSmall},
		{"key format", &KeyFormatError{Err: errors.New("bad pem")}, ErrKeyFormat},
		{"message too large", &MessageTooLargeError{Length: 200, Max: 190}, ErrMessageTooLarge},
		{"decryption", &DecryptionError{}, ErrDecryptionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, sentinel) = false", tt.err)
			}
			var cipherErr CipherError
			if !errors.As(tt.err, &cipherErr) {
				t.Errorf("%T does not implement CipherError", tt.err)
			}
		})
	}
}

func TestKeyGenerationErrorUnwrap(t *testing.T) {
	cause := errors.New("rng exhausted")
	err := &KeyGenerationError{Bits: 2048, Err: cause}

	if !errors.Is(err, cause) {
		t.Error("Unwrap() does not expose the cause")
	}
	if !strings.Contains(err.Error(), "2048") {
		t.Errorf("Error() = %q, want the bit size included", err.Error())
	}
}

func TestMessageTooLargeErrorMessage(t *testing.T) {
	err := &MessageTooLargeError{Length: 191, Max: 190}
	msg := err.Error()
	if !strings.Contains(msg, "191") || !strings.Contains(msg, "190") {
		t.Errorf("Error() = %q, want both sizes included", msg)
	}
}

func TestDecryptionErrorIsUniform(t *testing.T) {
	err := &DecryptionError{}
	if err.Error() != "decryption failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "decryption failed")
	}
}

func TestClassifierErrorUnwrap(t *testing.T) {
	cause := errors.New("503 from upstream")
	err := &ClassifierError{Err: cause}
	if !errors.Is(err, cause) {
		t.Error("Unwrap() does not expose the cause")
	}
}

func TestKindForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, ErrorKindNone},
		{"too large", &MessageTooLargeError{Length: 1, Max: 0}, ErrorKindMessageTooLarge},
		{"decryption", &DecryptionError{}, ErrorKindDecryption},
		{"key missing", ErrKeyMissing, ErrorKindKeyMissing},
		{"key format", &KeyFormatError{Err: errors.New("x")}, ErrorKindKeyFormat},
		{"key generation", &KeyGenerationError{Bits: 512, Err: ErrKeyTooSmall}, ErrorKindKeyGeneration},
		{"unknown", errors.New("something else"), ErrorKindKeyGeneration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kindForError(tt.err); got != tt.want {
				t.Errorf("kindForError() = %q, want %q", got, tt.want)
			}
		})
	}
}
