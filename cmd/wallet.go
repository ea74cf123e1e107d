package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/core"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/custody"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/ethereum"
	"github.com/spf13/cobra"
)

// walletFile is the import document. The key never travels through flags so
// it stays out of shell history.
type walletFile struct {
	PrivateKey string `json:"private_key"`
	Password   string `json:"password"`
}

func newWalletCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Manage custodial wallets",
	}
	cmd.AddCommand(newWalletImportCommand())
	cmd.AddCommand(newWalletDeleteCommand())
	return cmd
}

func newWalletImportCommand() *cobra.Command {
	var (
		username string
		file     string
		keep     bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Encrypt a private key into the keystore and escrow its password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readWalletFile(file)
			if err != nil {
				return err
			}

			e, err := bootstrap()
			if err != nil {
				return err
			}
			defer e.close()

			user, err := e.users.GetUserByUsername(cmd.Context(), username)
			if err != nil {
				return fmt.Errorf("user %q: %w", username, err)
			}

			manager, err := walletManager(e)
			if err != nil {
				return err
			}

			wallet, err := manager.Import(cmd.Context(), user.ID, doc.PrivateKey, doc.Password)
			if err != nil {
				return err
			}

			if !keep {
				if err := wipe(file); err != nil {
					e.logger.Warnw("could not wipe wallet file", "file", file, "error", err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wallet %s imported for %s\n", wallet.Address, user.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "owner of the wallet")
	cmd.Flags().StringVar(&file, "file", "", `JSON file with "private_key" and "password"`)
	cmd.Flags().BoolVar(&keep, "keep-file", false, "do not wipe the file after a successful import")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newWalletDeleteCommand() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove the keystore and escrowed password of a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := bootstrap()
			if err != nil {
				return err
			}
			defer e.close()

			user, err := e.users.GetUserByUsername(cmd.Context(), username)
			if err != nil {
				return fmt.Errorf("user %q: %w", username, err)
			}

			manager, err := walletManager(e)
			if err != nil {
				return err
			}

			if err := manager.Delete(cmd.Context(), user.ID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wallet of %s deleted\n", user.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "owner of the wallet")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func walletManager(e *env) (*core.WalletManager, error) {
	keystore, err := custody.NewKeystore(e.cfg.KeystoreDir)
	if err != nil {
		return nil, fmt.Errorf("open keystore directory: %w", err)
	}
	vault := custody.NewVault(e.cfg.KeyringService)
	session := custody.NewSession(e.logger, keystore, vault)

	// balances are not read from the command line
	return core.NewWalletManager(e.logger, keystore, vault, session, e.users, ethereum.NewChains()), nil
}

func readWalletFile(path string) (walletFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return walletFile{}, fmt.Errorf("read wallet file: %w", err)
	}

	var doc walletFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return walletFile{}, fmt.Errorf("parse wallet file: %w", err)
	}
	if doc.PrivateKey == "" || doc.Password == "" {
		return walletFile{}, errors.New("wallet file needs both private_key and password")
	}
	return doc, nil
}

// wipe overwrites the file with zeros before removing it.
func wipe(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, make([]byte, info.Size()), 0o600); err != nil {
		return err
	}
	return os.Remove(path)
}
