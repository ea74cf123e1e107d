package custody

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

var ErrNoPassword = errors.New("no escrowed password")

// Vault escrows wallet passwords in the OS credential store.
type Vault struct {
	service string
}

func NewVault(service string) *Vault {
	return &Vault{service: service}
}

func (v *Vault) Store(owner, password string) error {
	if err := keyring.Set(v.service, account(owner), password); err != nil {
		return fmt.Errorf("store password: %w", err)
	}
	return nil
}

func (v *Vault) Load(owner string) (string, error) {
	password, err := keyring.Get(v.service, account(owner))
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNoPassword
	}
	if err != nil {
		return "", fmt.Errorf("load password: %w", err)
	}
	return password, nil
}

func (v *Vault) Remove(owner string) error {
	err := keyring.Delete(v.service, account(owner))
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("remove password: %w", err)
	}
	return nil
}

func account(owner string) string {
	return "user_" + owner
}
