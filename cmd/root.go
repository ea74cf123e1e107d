package cmd

import (
	"fmt"
	"os"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/config"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/db"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/repository"
	"github.com/Bezhaltur/Auto-DCA-bot/pkg/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "autodca"

// NewRootCommand builds the autodca command tree.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Recurring USDT to BTC purchases through FixedFloat",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newUserCommand())
	cmd.AddCommand(newWalletCommand())

	return cmd
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", appName, err)
		os.Exit(1)
	}
}

// env is what every command needs before it can do anything useful.
type env struct {
	cfg    config.App
	logger *zap.SugaredLogger
	db     *db.Database
	users  *repository.UserRepository
}

func bootstrap() (*env, error) {
	cfg, err := config.NewApp()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.NewZapLogger(appName, log.ParseLevel(cfg.LogLevel))

	database, err := db.Open(cfg.DBDriver, cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return nil, err
	}

	if err := database.MigrateTable(repository.Models()...); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		_ = database.Close()
		return nil, err
	}

	return &env{
		cfg:    cfg,
		logger: logger,
		db:     database,
		users:  repository.NewUserRepository(database),
	}, nil
}

func (e *env) close() {
	if err := e.db.Close(); err != nil {
		e.logger.Warnw("failed to close database", "error", err)
	}
	_ = e.logger.Sync()
}
