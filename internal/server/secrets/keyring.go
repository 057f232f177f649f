// Package secrets keeps the server master secret sealed in memory and derives
// the purpose-bound keys used by the rest of the server.
package secrets

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/hkdf"
)

const MinSecretLength = 16

const (
	LabelCertificate = "certificate-signing"
	LabelSession     = "session-token"
	LabelPinLookup   = "pin-lookup"
)

var ErrSecretTooShort = fmt.Errorf("master secret must be at least %d bytes", MinSecretLength)

// Keyring holds the master secret in a memguard enclave.
type Keyring struct {
	enclave *memguard.Enclave
}

// Keys are the derived subkeys handed to components at startup.
type Keys struct {
	Certificate []byte
	Session     []byte
	PinLookup   []byte
}

// NewKeyring seals master into an enclave. master is wiped.
func NewKeyring(master []byte) (*Keyring, error) {
	if len(master) < MinSecretLength {
		return nil, ErrSecretTooShort
	}
	enclave := memguard.NewEnclave(master)
	if enclave == nil {
		return nil, errors.New("failed to seal master secret")
	}
	return &Keyring{enclave: enclave}, nil
}

// Derive returns a 32-byte HKDF-SHA256 subkey bound to label.
func (k *Keyring) Derive(label string) ([]byte, error) {
	buf, err := k.enclave.Open()
	if err != nil {
		return nil, fmt.Errorf("open enclave: %w", err)
	}
	defer buf.Destroy()

	out := make([]byte, 32)
	r := hkdf.New(sha256.New, buf.Bytes(), nil, []byte("secureshare/"+label))
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (k *Keyring) Keys() (Keys, error) {
	var keys Keys
	var err error
	if keys.Certificate, err = k.Derive(LabelCertificate); err != nil {
		return Keys{}, err
	}
	if keys.Session, err = k.Derive(LabelSession); err != nil {
		return Keys{}, err
	}
	if keys.PinLookup, err = k.Derive(LabelPinLookup); err != nil {
		return Keys{}, err
	}
	return keys, nil
}
