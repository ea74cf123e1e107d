package custody

import (
	"crypto/ecdsa"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var ErrNoCredentials = errors.New("wallet credentials unavailable")

// Session caches escrowed passwords for the lifetime of the process. The vault
// stays authoritative: the cache can be rebuilt from it with Load at any time.
type Session struct {
	logger *zap.SugaredLogger
	keys   *Keystore
	vault  *Vault

	mu        sync.RWMutex
	passwords map[string]string
}

func NewSession(logger *zap.SugaredLogger, keys *Keystore, vault *Vault) *Session {
	return &Session{
		logger:    logger,
		keys:      keys,
		vault:     vault,
		passwords: make(map[string]string),
	}
}

// Load fills the cache for owners that have both a keystore and an escrowed
// password, returning how many were loaded.
func (s *Session) Load(owners []string) int {
	loaded := 0
	for _, owner := range owners {
		if !s.keys.Exists(owner) {
			continue
		}
		password, err := s.vault.Load(owner)
		if err != nil {
			if !errors.Is(err, ErrNoPassword) {
				s.logger.Warnw("could not load escrowed password", "owner", owner, "error", err)
			}
			continue
		}
		s.Put(owner, password)
		loaded++
	}
	s.logger.Infow("wallet session loaded", "owners", len(owners), "unlocked", loaded)
	return loaded
}

func (s *Session) Put(owner, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.passwords[owner] = password
}

func (s *Session) Invalidate(owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.passwords, owner)
}

func (s *Session) Password(owner string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	password, ok := s.passwords[owner]
	return password, ok
}

// Credentials reports whether funds of owner can be moved without user input.
func (s *Session) Credentials(owner string) bool {
	_, ok := s.Password(owner)
	return ok && s.keys.Exists(owner)
}

// Key decrypts the owner's signing key with the cached password. The caller
// owns the key and must Scrub it.
func (s *Session) Key(owner string) (*ecdsa.PrivateKey, error) {
	password, ok := s.Password(owner)
	if !ok {
		return nil, ErrNoCredentials
	}
	return s.keys.Decrypt(owner, password)
}

// Close drops every cached password.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.passwords = make(map[string]string)
}
