package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/repository"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// WalletManager keeps the keystore, the password vault, the session cache
// and the wallet row of an owner consistent.
type WalletManager struct {
	logs     *zap.SugaredLogger
	keys     KeyVault
	vault    PasswordVault
	sessions PasswordSession
	users    UserStore
	chains   Chains
}

func NewWalletManager(logger *zap.SugaredLogger, keys KeyVault, vault PasswordVault, sessions PasswordSession, users UserStore, chains Chains) *WalletManager {
	return &WalletManager{
		logs:     logger,
		keys:     keys,
		vault:    vault,
		sessions: sessions,
		users:    users,
		chains:   chains,
	}
}

// Import encrypts the key under password, escrows the password and makes the
// wallet available to the sequencer. A previous wallet of the owner is replaced.
func (w *WalletManager) Import(ctx context.Context, owner, hexKey, password string) (repository.Wallet, error) {
	address, err := w.keys.Import(owner, hexKey, password)
	if err != nil {
		return repository.Wallet{}, fmt.Errorf("import key: %w", err)
	}

	if err := w.vault.Store(owner, password); err != nil {
		w.rollback(owner)
		return repository.Wallet{}, fmt.Errorf("escrow password: %w", err)
	}

	wallet := repository.Wallet{Owner: owner, Address: address.Hex()}
	if err := w.users.SaveWallet(ctx, wallet); err != nil {
		w.rollback(owner)
		_ = w.vault.Remove(owner)
		return repository.Wallet{}, err
	}

	w.sessions.Put(owner, password)
	w.logs.Infow("wallet imported", "owner", owner, "address", wallet.Address)
	return wallet, nil
}

// Delete removes every trace of the owner's wallet. Missing parts are ignored.
func (w *WalletManager) Delete(ctx context.Context, owner string) error {
	w.sessions.Invalidate(owner)

	if err := w.keys.Delete(owner); err != nil {
		return fmt.Errorf("delete keystore: %w", err)
	}
	if err := w.vault.Remove(owner); err != nil {
		return fmt.Errorf("remove escrowed password: %w", err)
	}
	if err := w.users.DeleteWallet(ctx, owner); err != nil && !errors.Is(err, repository.ErrWalletNotFound) {
		return err
	}

	w.logs.Infow("wallet deleted", "owner", owner)
	return nil
}

// Status returns the wallet address with balances on every connected network.
// A network whose RPC fails is reported in Errors instead of failing the call.
func (w *WalletManager) Status(ctx context.Context, owner string) (WalletStatus, error) {
	wallet, err := w.users.GetWallet(ctx, owner)
	if err != nil {
		return WalletStatus{}, err
	}

	status := WalletStatus{Address: wallet.Address}
	address := common.HexToAddress(wallet.Address)
	for _, network := range w.chains.Networks() {
		balance, err := w.chains.Balance(ctx, network, address)
		if err != nil {
			if status.Errors == nil {
				status.Errors = make(map[string]string)
			}
			status.Errors[network] = err.Error()
			w.logs.Warnw("wallet balance lookup failed", "owner", owner, "network", network, "error", err)
			continue
		}
		status.Balances = append(status.Balances, balance)
	}
	return status, nil
}

func (w *WalletManager) rollback(owner string) {
	if err := w.keys.Delete(owner); err != nil {
		w.logs.Errorw("remove keystore after failed import", "owner", owner, "error", err)
	}
}
