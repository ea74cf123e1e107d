package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/core"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/custody"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/ethereum"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/exchange"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/http/handler"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/http/handler/middleware"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/http/payload"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/http/server"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/networks"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/notify"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/repository"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/scheduler"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/transfer"
	"github.com/Bezhaltur/Auto-DCA-bot/pkg/jwt"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the scheduler, the order monitor and the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Start(cmd.Context())
		},
	}
}

func Start(ctx context.Context) error {
	e, err := bootstrap()
	if err != nil {
		return err
	}
	defer e.close()

	logger, cfg := e.logger, e.cfg

	// repositories
	plans := repository.NewPlanRepository(e.db)
	ledger := repository.NewLedgerRepository(e.db)

	registry := networks.NewRegistry(cfg.UseTestnet, cfg.Networks)

	chains, err := ethereum.Dial(ctx, logger, registry)
	if err != nil {
		logger.Errorw("rpc connection failed", "error", err)
		return err
	}
	defer chains.Close()

	// custody
	keystore, err := custody.NewKeystore(cfg.KeystoreDir)
	if err != nil {
		logger.Errorw("failed to open keystore directory", "error", err)
		return err
	}
	vault := custody.NewVault(cfg.KeyringService)
	session := custody.NewSession(logger, keystore, vault)
	defer session.Close()

	owners, err := e.users.WalletOwners(ctx)
	if err != nil {
		logger.Errorw("failed to list wallet owners", "error", err)
		return err
	}
	session.Load(owners)

	// exchange
	ffClient := exchange.NewClient(logger, cfg.Exchange, registry)
	if err := ffClient.RefreshCurrencies(ctx); err != nil {
		logger.Warnw("could not load exchange currencies, using defaults", "error", err)
	}

	senderChains := make(map[string]transfer.Chain)
	for network, client := range chains.Clients() {
		senderChains[network] = client
	}
	sequencer := transfer.NewSequencer(logger, senderChains, session, cfg.ReceiptTimeout)

	var notifier core.Notifier = notify.NewLog(logger)
	if cfg.TelegramToken != "" {
		telegram, err := notify.NewTelegram(logger, cfg.TelegramToken, e.users)
		if err != nil {
			logger.Errorw("failed to create telegram bot", "error", err)
			return err
		}
		notifier = telegram
	}

	// core
	limits := core.PlanLimits{
		MinAmount:     cfg.MinPlanAmount,
		MaxAmount:     cfg.MaxPlanAmount,
		MaxPerNetwork: cfg.MaxPlansPerNetwork,
	}
	coordinator := core.NewCoordinator(logger, plans, ledger, ffClient, sequencer, chains, session, notifier, registry, cfg.MaxPlanAmount)
	monitor := core.NewMonitor(logger, plans, ledger, ffClient, chains, notifier, registry)
	planManager := core.NewPlanManager(logger, plans, ledger, ffClient, registry, limits, cfg.UseTestnet)
	wallets := core.NewWalletManager(logger, keystore, vault, session, e.users, chains)
	auth := core.NewAuthenticator(logger, e.users, jwt.NewJWTService([]byte(cfg.JWTSecret), appName))

	if err := monitor.Reconcile(ctx); err != nil {
		logger.Errorw("failed to reconcile interrupted attempts", "error", err)
		return err
	}

	// scheduler
	runner := scheduler.New(logger)
	jobs := []struct {
		name     string
		interval time.Duration
		job      func(context.Context)
	}{
		{"coordinator", cfg.TickInterval, func(ctx context.Context) { coordinator.Tick(ctx) }},
		{"completions", cfg.MonitorInterval, monitor.CheckCompletions},
		{"housekeeping", cfg.MonitorInterval, monitor.Housekeeping},
	}
	for _, j := range jobs {
		if _, err := runner.Every(j.name, j.interval, j.job); err != nil {
			logger.Errorw("failed to schedule job", "job", j.name, "error", err)
			return err
		}
	}
	runner.Start()
	defer runner.Stop()

	// handler
	dcaHlr := handler.NewDCAHandler(
		logger,
		payload.DecodeValidator{},
		auth,
		planManager,
		coordinator,
		wallets)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
	authMw := middleware.NewAuthMiddleware(logger, auth)
	protected := func(fn http.HandlerFunc) http.Handler {
		return authMw.Authenticate(fn)
	}

	// register routes
	mux.HandleFunc(handler.Authenticate, dcaHlr.HandleAuthenticate)
	mux.Handle(handler.ListPlans, protected(dcaHlr.HandleListPlans))
	mux.Handle(handler.CreatePlan, protected(dcaHlr.HandleCreatePlan))
	mux.Handle(handler.PausePlan, protected(dcaHlr.HandlePausePlan))
	mux.Handle(handler.ResumePlan, protected(dcaHlr.HandleResumePlan))
	mux.Handle(handler.ExecutePlan, protected(dcaHlr.HandleExecutePlan))
	mux.Handle(handler.DeletePlan, protected(dcaHlr.HandleDeletePlan))
	mux.Handle(handler.History, protected(dcaHlr.HandleHistory))
	mux.Handle(handler.Limits, protected(dcaHlr.HandleLimits))
	mux.Handle(handler.WalletStatus, protected(dcaHlr.HandleWalletStatus))
	mux.Handle(handler.DeleteWallet, protected(dcaHlr.HandleDeleteWallet))

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
