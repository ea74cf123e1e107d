package custody

import (
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/failure"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

var (
	ErrAuthentication = errors.New("incorrect wallet password")
	ErrNoKeystore     = errors.New("no keystore for owner")
	ErrInvalidKey     = errors.New("invalid private key")
	ErrInvalidOwner   = errors.New("invalid owner id")
)

// Keystore keeps one encrypted v3 keystore file per owner.
type Keystore struct {
	dir     string
	scryptN int
	scryptP int
}

type KeystoreOption func(*Keystore)

// WithScrypt overrides the key derivation cost.
func WithScrypt(n, p int) KeystoreOption {
	return func(k *Keystore) {
		k.scryptN = n
		k.scryptP = p
	}
}

func NewKeystore(dir string, opts ...KeystoreOption) (*Keystore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create keystore dir: %w", err)
	}

	k := &Keystore{
		dir:     dir,
		scryptN: keystore.StandardScryptN,
		scryptP: keystore.StandardScryptP,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k, nil
}

// Import encrypts hexKey with password and stores it for owner, replacing any
// previous keystore. It returns the wallet address.
func (k *Keystore) Import(owner, hexKey, password string) (common.Address, error) {
	path, err := k.path(owner)
	if err != nil {
		return common.Address{}, err
	}
	if password == "" {
		return common.Address{}, failure.Validationf("empty wallet password")
	}

	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return common.Address{}, failure.Validation(ErrInvalidKey)
	}
	defer Scrub(privateKey)

	id, err := uuid.NewRandom()
	if err != nil {
		return common.Address{}, fmt.Errorf("key id: %w", err)
	}

	key := &keystore.Key{
		Id:         id,
		Address:    crypto.PubkeyToAddress(privateKey.PublicKey),
		PrivateKey: privateKey,
	}

	data, err := keystore.EncryptKey(key, password, k.scryptN, k.scryptP)
	if err != nil {
		return common.Address{}, fmt.Errorf("encrypt key: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return common.Address{}, fmt.Errorf("write keystore: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return common.Address{}, fmt.Errorf("write keystore: %w", err)
	}

	return key.Address, nil
}

func (k *Keystore) Exists(owner string) bool {
	path, err := k.path(owner)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Address reads the wallet address without decrypting the key.
func (k *Keystore) Address(owner string) (common.Address, error) {
	data, err := k.read(owner)
	if err != nil {
		return common.Address{}, err
	}

	var header struct {
		Address string `json:"address"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return common.Address{}, fmt.Errorf("parse keystore: %w", err)
	}
	if !common.IsHexAddress(header.Address) {
		return common.Address{}, fmt.Errorf("keystore has no address")
	}
	return common.HexToAddress(header.Address), nil
}

// Decrypt returns the owner's signing key. Callers must Scrub it when done.
func (k *Keystore) Decrypt(owner, password string) (*ecdsa.PrivateKey, error) {
	data, err := k.read(owner)
	if err != nil {
		return nil, err
	}

	key, err := keystore.DecryptKey(data, password)
	if err != nil {
		if errors.Is(err, keystore.ErrDecrypt) {
			return nil, failure.Permanent(ErrAuthentication)
		}
		return nil, fmt.Errorf("decrypt keystore: %w", err)
	}
	return key.PrivateKey, nil
}

// Delete removes the owner's keystore. A missing keystore is not an error.
func (k *Keystore) Delete(owner string) error {
	path, err := k.path(owner)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete keystore: %w", err)
	}
	return nil
}

func (k *Keystore) read(owner string) ([]byte, error) {
	path, err := k.path(owner)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoKeystore
	}
	if err != nil {
		return nil, fmt.Errorf("read keystore: %w", err)
	}
	return data, nil
}

// owner ids are uuids, which keeps them safe to use in file names.
func (k *Keystore) path(owner string) (string, error) {
	if err := uuid.Validate(owner); err != nil {
		return "", failure.Validation(fmt.Errorf("%w: %q", ErrInvalidOwner, owner))
	}
	return filepath.Join(k.dir, "wallet_"+owner+".json"), nil
}

// Scrub zeroes the private scalar of key in place.
func Scrub(key *ecdsa.PrivateKey) {
	if key == nil || key.D == nil {
		return
	}
	words := key.D.Bits()
	for i := range words {
		words[i] = 0
	}
}
