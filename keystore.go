package emotioncipher

import (
	"crypto/rsa"
	"sync"

	"github.com/muhammadnavas/emotioncipher-go/internal/rsacrypto"
)

// DefaultKeyBits is the RSA modulus size used when none is configured.
const DefaultKeyBits = rsacrypto.DefaultKeyBits

// KeyStore owns zero or one key pair. It can generate a fresh pair, load one
// from serialized halves, and serialize the current pair; it performs no I/O
// itself. Key material is immutable once set (a new Generate or Load replaces
// the pair wholesale), so a ready KeyStore is safe for concurrent readers.
type KeyStore struct {
	mu   sync.RWMutex
	keys *rsacrypto.KeyPair
}

// NewKeyStore creates an empty KeyStore.
func NewKeyStore() *KeyStore {
	return &KeyStore{}
}

// Generate creates and installs a fresh RSA key pair with the given modulus
// bit length. Pass 0 for the default (2048). Sizes below the 2048-bit floor
// fail with a KeyGenerationError wrapping ErrKeyTooSmall.
func (s *KeyStore) Generate(bits int) error {
	if bits == 0 {
		bits = DefaultKeyBits
	}

	keys, err := rsacrypto.Generate(bits)
	if err != nil {
		return wrapKeyError(err, bits)
	}

	s.mu.Lock()
	s.keys = keys
	s.mu.Unlock()
	return nil
}

// Load installs a key pair reconstructed from PEM halves. Either half may be
// nil: a public half alone yields an encrypt-only store, a private half
// yields both directions (its public half is derived). Supplying neither, or
// malformed material, fails with a KeyFormatError.
func (s *KeyStore) Load(publicPEM, privatePEM []byte) error {
	return s.LoadWithPassphrase(publicPEM, privatePEM, "")
}

// LoadWithPassphrase is Load for key material whose private half was
// serialized under a passphrase.
func (s *KeyStore) LoadWithPassphrase(publicPEM, privatePEM []byte, passphrase string) error {
	if len(privatePEM) > 0 && rsacrypto.IsWrappedKey(privatePEM) {
		unwrapped, err := rsacrypto.UnwrapPrivateKey(privatePEM, passphrase)
		if err != nil {
			return wrapKeyError(err, 0)
		}
		privatePEM = unwrapped
	}

	keys, err := rsacrypto.FromPEM(publicPEM, privatePEM)
	if err != nil {
		return wrapKeyError(err, 0)
	}

	s.mu.Lock()
	s.keys = keys
	s.mu.Unlock()
	return nil
}

// Serialize returns the PEM encodings of the held pair: the public half as
// SubjectPublicKeyInfo and the private half as PKCS#8. A half that is not
// held is returned as nil. Serializing an empty store fails with
// ErrKeyMissing.
//
// Serialization of a fixed key is bit-exact across calls; only generation is
// randomized.
func (s *KeyStore) Serialize() (publicPEM, privatePEM []byte, err error) {
	return s.SerializeWithPassphrase("")
}

// SerializeWithPassphrase is Serialize with the private half additionally
// wrapped under the given passphrase (scrypt + AES-256-GCM). An empty
// passphrase leaves the private half unwrapped, which is the baseline.
func (s *KeyStore) SerializeWithPassphrase(passphrase string) (publicPEM, privatePEM []byte, err error) {
	s.mu.RLock()
	keys := s.keys
	s.mu.RUnlock()

	if keys == nil || (keys.Public == nil && keys.Private == nil) {
		return nil, nil, ErrKeyMissing
	}

	if keys.Public != nil {
		publicPEM, err = rsacrypto.EncodePublicKey(keys.Public)
		if err != nil {
			return nil, nil, err
		}
	}

	if keys.Private != nil {
		privatePEM, err = rsacrypto.EncodePrivateKey(keys.Private)
		if err != nil {
			return nil, nil, err
		}
		if passphrase != "" {
			privatePEM, err = rsacrypto.WrapPrivateKey(privatePEM, passphrase)
			if err != nil {
				return nil, nil, err
			}
		}
	}

	return publicPEM, privatePEM, nil
}

// IsReady reports whether at least one usable key half is loaded.
func (s *KeyStore) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keys.CanEncrypt() || s.keys.CanDecrypt()
}

// CanEncrypt reports whether a public key is loaded.
func (s *KeyStore) CanEncrypt() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keys.CanEncrypt()
}

// CanDecrypt reports whether a private key is loaded.
func (s *KeyStore) CanDecrypt() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keys.CanDecrypt()
}

// Capacity returns the maximum plaintext size in bytes the loaded public key
// can encrypt (190 for a 2048-bit key), or 0 when no public key is loaded.
func (s *KeyStore) Capacity() int {
	return rsacrypto.Capacity(s.publicKey())
}

func (s *KeyStore) publicKey() *rsa.PublicKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.keys == nil {
		return nil
	}
	return s.keys.Public
}

func (s *KeyStore) privateKey() *rsa.PrivateKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.keys == nil {
		return nil
	}
	return s.keys.Private
}
