package emotioncipher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Default filenames used by DirStorage.
const (
	PublicKeyFilename  = "public_key.pem"
	PrivateKeyFilename = "private_key.pem"
)

// KeyStorage is the persistence collaborator for key material. The session
// treats it as an opaque load/save pair; the concrete location policy lives
// entirely in the implementation.
//
// Load returns the persisted PEM halves. Either half may be nil when only
// one is persisted; ErrNoStoredKeys is returned when nothing is persisted.
type KeyStorage interface {
	Load(ctx context.Context) (publicPEM, privatePEM []byte, err error)
	Save(ctx context.Context, publicPEM, privatePEM []byte) error
}

// DirStorage persists a key pair as two independently loadable PEM files in
// one directory: public_key.pem and private_key.pem.
type DirStorage struct {
	dir string
}

// NewDirStorage creates a DirStorage rooted at dir. The directory is created
// on first Save, not here.
func NewDirStorage(dir string) *DirStorage {
	return &DirStorage{dir: dir}
}

// Load reads whichever key files exist. Returns ErrNoStoredKeys when neither
// file is present; a single present half is returned with the other nil, so
// an encrypt-only or decrypt-only setup loads cleanly.
func (d *DirStorage) Load(ctx context.Context) ([]byte, []byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	publicPEM, pubErr := os.ReadFile(filepath.Join(d.dir, PublicKeyFilename))
	privatePEM, privErr := os.ReadFile(filepath.Join(d.dir, PrivateKeyFilename))

	if pubErr != nil && !os.IsNotExist(pubErr) {
		return nil, nil, fmt.Errorf("read public key: %w", pubErr)
	}
	if privErr != nil && !os.IsNotExist(privErr) {
		return nil, nil, fmt.Errorf("read private key: %w", privErr)
	}

	if pubErr != nil && privErr != nil {
		return nil, nil, ErrNoStoredKeys
	}

	if pubErr != nil {
		publicPEM = nil
	}
	if privErr != nil {
		privatePEM = nil
	}

	return publicPEM, privatePEM, nil
}

// Save writes the PEM halves, creating the directory if needed. The private
// key file is written with 0600 permissions, the public one with 0644.
func (d *DirStorage) Save(ctx context.Context, publicPEM, privatePEM []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0700); err != nil {
		return fmt.Errorf("create key directory: %w", err)
	}

	if len(publicPEM) > 0 {
		path := filepath.Join(d.dir, PublicKeyFilename)
		if err := os.WriteFile(path, publicPEM, 0644); err != nil {
			return fmt.Errorf("write public key: %w", err)
		}
	}

	if len(privatePEM) > 0 {
		path := filepath.Join(d.dir, PrivateKeyFilename)
		if err := os.WriteFile(path, privatePEM, 0600); err != nil {
			return fmt.Errorf("write private key: %w", err)
		}
	}

	return nil
}
