package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"spendguard/db/migrations"
	"spendguard/internal/adapter/adnetwork"
	httpadapter "spendguard/internal/adapter/http"
	"spendguard/internal/adapter/memory"
	"spendguard/internal/adapter/postgres"
	"spendguard/internal/adapter/usecase"
	"spendguard/internal/config"
	"spendguard/internal/config/configs"
	"spendguard/internal/core/domain"
	"spendguard/internal/core/port"
	"spendguard/internal/db"
	"spendguard/internal/lock"
	"spendguard/internal/metrics"
)

// main is the entry point of spendguard. It loads configuration, prepares
// the store (running migrations when configured), connects the ad network
// client and the optional Redis lock, then starts the campaign controller,
// its supervisor and the admin HTTP server. On a termination signal it stops
// the monitors and shuts the server down gracefully.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	thresholds := domain.Thresholds{
		LowPause:     cfg.Controller.LowPause,
		LowActivate:  cfg.Controller.LowActivate,
		HighPause:    cfg.Controller.HighPause,
		HighActivate: cfg.Controller.HighActivate,
	}

	var (
		campaigns port.CampaignRepository
		urls      port.URLRepository
		ledger    port.LedgerRepository
	)
	if cfg.Store.Memory() {
		store := memory.NewStore()
		demoCampaigns, demoURLs := db.Demo(thresholds, time.Now().UTC())
		for _, c := range demoCampaigns {
			store.PutCampaign(c)
		}
		for _, u := range demoURLs {
			store.PutURL(u)
		}
		campaigns, urls, ledger = store.Campaigns(), store.URLs(), store.Ledger()
		logger.Warn("using in-memory store, ledger is lost on restart", slog.Int("campaigns", len(demoCampaigns)))
	} else {
		if cfg.Psql.RunMigrations {
			from, err := db.Migrate(cfg.Psql.Addr.String())
			if err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully",
				slog.Uint64("from", uint64(from)),
				slog.Uint64("to", uint64(migrations.Version)))
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()

		if cfg.Psql.Seed {
			if err = db.Seed(ctx, pool, thresholds); err != nil {
				logger.Error("seed error", slog.Any("error", err))
				return
			}
			logger.Info("demo data seeded")
		}
		campaigns = postgres.NewCampaignRepository(pool)
		urls = postgres.NewURLRepository(pool)
		ledger = postgres.NewLedgerRepository(pool)
	}

	var locker port.Locker
	if cfg.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		err = client.Ping(pingCtx).Err()
		pingCancel()
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		locker = lock.NewRedisLocker(client)
		logger.Info("campaign lock enabled", slog.String("redis", cfg.Redis.Address))
	}

	network, err := newAdNetwork(cfg.AdNetwork, logger)
	if err != nil {
		logger.Error("ad network client error", slog.Any("error", err))
		return
	}

	var (
		m        *metrics.Metrics
		gatherer prometheus.Gatherer
	)
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m = metrics.New(registry, cfg.Metrics.Namespace)
		gatherer = registry
	}

	ctrl, err := usecase.NewController(usecase.Params{
		Campaigns: campaigns,
		URLs:      urls,
		Ledger:    ledger,
		Spend:     network,
		Network:   network,
		Locker:    locker,
		Metrics:   m,
		Logger:    logger,
		Config: usecase.Config{
			HighSpendBoundary:   cfg.Controller.HighSpendBoundary,
			InitialPricingWait:  cfg.Controller.InitialPricingWait,
			BatchWait:           cfg.Controller.BatchWait,
			BatchSweepInterval:  cfg.Controller.BatchSweepInterval,
			ActiveCheckInterval: cfg.Controller.ActiveCheckInterval,
			PausedCheckInterval: cfg.Controller.PausedCheckInterval,
			TickTimeout:         cfg.Controller.TickTimeout,
			LockTTL:             cfg.Redis.LockTTL,
		},
	})
	if err != nil {
		logger.Error("controller error", slog.Any("error", err))
		return
	}

	supervisor := usecase.NewSupervisor(campaigns, ctrl, cfg.Controller.SupervisorInterval, logger)
	supervisor.Start(ctx)
	defer supervisor.Stop()

	handler := httpadapter.NewHandler(ctrl, logger, gatherer)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

func newAdNetwork(cfg configs.AdNetwork, logger *slog.Logger) (*adnetwork.Client, error) {
	policy := adnetwork.DefaultRetryPolicy()
	if cfg.MaxAttempts > 0 {
		policy.MaxAttempts = uint32(cfg.MaxAttempts)
	}
	if cfg.Backoff > 0 {
		policy.BaseDelay = cfg.Backoff
		if policy.MaxDelay < policy.BaseDelay {
			policy.MaxDelay = policy.BaseDelay
		}
	}
	return adnetwork.NewClient(adnetwork.Options{
		BaseURL:     cfg.BaseURL,
		Token:       cfg.Token,
		HTTPClient:  &http.Client{Timeout: cfg.Timeout},
		RetryPolicy: policy,
		Logger:      logger,
	})
}
