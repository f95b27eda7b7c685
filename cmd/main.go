package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	httpadapter "presale-ledger/internal/adapter/http"
	"presale-ledger/internal/adapter/memory"
	"presale-ledger/internal/adapter/notify"
	"presale-ledger/internal/adapter/postgres"
	"presale-ledger/internal/adapter/usecase"
	"presale-ledger/internal/config"
	"presale-ledger/internal/core/domain"
	"presale-ledger/internal/core/port"
	"presale-ledger/internal/db"
)

// main is the entry point of the presale-ledger service. It loads
// configuration, optionally runs database migrations, wires the campaign
// store, ledger and liquidity pool behind the presale engine, then starts
// the HTTP server. On receiving a termination signal it gracefully shuts
// down the server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// The value-transfer ledger and the AMM are external collaborators;
	// the in-process implementations stand in for them.
	ledger := memory.NewTokenLedger()
	pool := memory.NewLiquidityPool(ledger)

	var repo port.PresaleRepository
	switch cfg.Presale.Backend {
	case "memory":
		repo = memory.NewPresaleRepository(cfg.Presale.UsageFeeBip)
		if cfg.Presale.Seed {
			seedLedger(ledger)
			logger.Info("demo balances seeded")
		}
	default:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}

		pgPool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer pgPool.Close()

		if cfg.Presale.Seed {
			fundings, seedErr := db.Seed(ctx, pgPool)
			if seedErr != nil {
				logger.Error("seed error", slog.Any("error", seedErr))
			} else {
				fundEscrow(ledger, fundings)
				logger.Info("demo campaigns seeded", slog.Int("funded", len(fundings)))
			}
		}
		repo = postgres.NewPresaleRepository(pgPool)
	}

	engine := usecase.NewPresaleLedger(repo, ledger, pool, port.SystemClock{}, notify.NewSlogNotifier(logger), cfg.Presale.Admin)

	handler := httpadapter.NewHandler(engine, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

// fundEscrow provisions the in-process ledger to match the stored
// campaigns: escrow receives each campaign's remaining inventory and
// raised currency, and demo buyers receive native units to spend.
// Without this, every buy against a seeded campaign would fail at token
// delivery.
func fundEscrow(ledger *memory.TokenLedger, fundings []db.EscrowFunding) {
	whole := decimal.New(1, 18)
	for _, f := range fundings {
		ledger.Mint(f.SaleToken, domain.EscrowAccount, f.AmountLeft)
		ledger.Mint(domain.NativeAsset, domain.EscrowAccount, f.Raised)
	}
	for i := 1; i <= 3; i++ {
		ledger.Mint(domain.NativeAsset, fmt.Sprintf("demo:buyer-%d", i), decimal.NewFromInt(int64(500*i)).Mul(whole))
	}
}

// seedLedger mints demo balances so a memory-backed instance is usable
// out of the box.
func seedLedger(ledger *memory.TokenLedger) {
	whole := decimal.New(1, 18)
	for i := 1; i <= 3; i++ {
		owner := fmt.Sprintf("demo:owner-%d", i)
		buyer := fmt.Sprintf("demo:buyer-%d", i)
		ledger.Mint("token:demo", owner, decimal.NewFromInt(int64(1000*i)).Mul(whole))
		ledger.Mint(domain.NativeAsset, buyer, decimal.NewFromInt(int64(500*i)).Mul(whole))
	}
}
