package client

import (
	"io/ioutil"
	"os"

	"github.com/iov-one/weave/crypto"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"
)

// KeyPerm is the file permissions for saved private keys
const KeyPerm = 0600

type PrivateKey = crypto.PrivateKey

// GenPrivateKey creates a new random key.
// Alias to simplify usage.
func GenPrivateKey() *PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewPrivateKey wraps a raw ed25519 private key.
func NewPrivateKey(raw ed25519.PrivateKey) (*PrivateKey, error) {
	if len(raw) != ed25519.PrivateKeySize {
		return nil, errors.Errorf("invalid private key length: %d", len(raw))
	}
	return &PrivateKey{
		Priv: &crypto.PrivateKey_Ed25519{Ed25519: raw},
	}, nil
}

// LoadPrivateKey reads a file containing a raw ed25519 private key, as
// written by SavePrivateKey.
func LoadPrivateKey(filename string) (*PrivateKey, error) {
	raw, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %q file", filename)
	}
	return NewPrivateKey(raw)
}

// SavePrivateKey writes the raw ed25519 private key to the named file.
//
// Refuses to overwrite a file unless force is true
func SavePrivateKey(key *PrivateKey, filename string, force bool) error {
	raw := key.GetEd25519()
	if len(raw) != ed25519.PrivateKeySize {
		return errors.New("not an ed25519 private key")
	}
	if err := canWrite(filename, force); err != nil {
		return err
	}
	return ioutil.WriteFile(filename, raw, KeyPerm)
}

// canWrite is a little helper to check if we want to write a file
func canWrite(filename string, force bool) error {
	if force {
		return nil
	}
	_, err := os.Stat(filename)
	if err == nil {
		return errors.Errorf("Refusing to overwrite: %s", filename)
	}
	return nil
}
