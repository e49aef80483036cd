package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const (
	KeychainService = "promptly"
	KeychainUser    = "api-key"
)

// Keychain stores the API key in the OS keychain.
type Keychain struct {
	service string
	user    string
}

var _ SecretGetter = (*Keychain)(nil)

func NewKeychain() *Keychain {
	return &Keychain{service: KeychainService, user: KeychainUser}
}

// Get returns "" with a nil error when no key is stored.
func (k *Keychain) Get(_ context.Context) (string, error) {
	value, err := keyring.Get(k.service, k.user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading keychain: %w", err)
	}
	return value, nil
}

func (k *Keychain) Set(_ context.Context, value string) error {
	if err := keyring.Set(k.service, k.user, value); err != nil {
		return fmt.Errorf("writing keychain: %w", err)
	}
	return nil
}

// Delete succeeds when nothing is stored.
func (k *Keychain) Delete(_ context.Context) error {
	err := keyring.Delete(k.service, k.user)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("deleting from keychain: %w", err)
	}
	return nil
}
