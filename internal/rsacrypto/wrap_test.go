package rsacrypto

import (
	"bytes"
	"encoding/pem"
	"errors"
	"strings"
	"testing"
)

func TestWrapUnwrapPrivateKey(t *testing.T) {
	kp := testKeyPair(t)
	privatePEM, err := EncodePrivateKey(kp.Private)
	if err != nil {
		t.Fatalf("EncodePrivateKey() error = %v", err)
	}

	wrapped, err := WrapPrivateKey(privatePEM, "correct horse")
	if err != nil {
		t.Fatalf("WrapPrivateKey() error = %v", err)
	}

	if !strings.Contains(string(wrapped), "EMOTION CIPHER ENCRYPTED PRIVATE KEY") {
		t.Error("wrapped blob missing container type")
	}
	if bytes.Contains(wrapped, privatePEM) {
		t.Error("wrapped blob contains the plaintext key")
	}
	if !IsWrappedKey(wrapped) {
		t.Error("IsWrappedKey() = false for wrapped blob")
	}
	if IsWrappedKey(privatePEM) {
		t.Error("IsWrappedKey() = true for plain PKCS#8 blob")
	}

	unwrapped, err := UnwrapPrivateKey(wrapped, "correct horse")
	if err != nil {
		t.Fatalf("UnwrapPrivateKey() error = %v", err)
	}
	if !bytes.Equal(unwrapped, privatePEM) {
		t.Error("unwrapped blob does not match original")
	}

	// The recovered blob is still a loadable key.
	if _, err := ParsePrivateKey(unwrapped); err != nil {
		t.Errorf("ParsePrivateKey(unwrapped) error = %v", err)
	}
}

func TestWrapPrivateKey_RequiresPassphrase(t *testing.T) {
	if _, err := WrapPrivateKey([]byte("pem"), ""); err == nil {
		t.Error("WrapPrivateKey() with empty passphrase should fail")
	}
}

func TestUnwrapPrivateKey_Failures(t *testing.T) {
	kp := testKeyPair(t)
	privatePEM, _ := EncodePrivateKey(kp.Private)
	wrapped, err := WrapPrivateKey(privatePEM, "right")
	if err != nil {
		t.Fatalf("WrapPrivateKey() error = %v", err)
	}

	block, _ := pem.Decode(wrapped)
	block.Bytes[len(block.Bytes)-1] ^= 0x01
	tampered := pem.EncodeToMemory(block)

	tests := []struct {
		name       string
		data       []byte
		passphrase string
	}{
		{"wrong passphrase", wrapped, "wrong"},
		{"empty passphrase", wrapped, ""},
		{"not a wrapped key", privatePEM, "right"},
		{"garbage", []byte("garbage"), "right"},
		{"tampered body", tampered, "right"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnwrapPrivateKey(tt.data, tt.passphrase)
			if !errors.Is(err, ErrUnwrapFailed) {
				t.Errorf("UnwrapPrivateKey() error = %v, want ErrUnwrapFailed", err)
			}
		})
	}
}
