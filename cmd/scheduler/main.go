package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/passblock-backend/internal/app"
	"github.com/goodnatureofminers/passblock-backend/internal/clock"
	"github.com/goodnatureofminers/passblock-backend/internal/generation"
	"github.com/goodnatureofminers/passblock-backend/internal/metrics"
	"github.com/goodnatureofminers/passblock-backend/internal/scheduler"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	GeneratorURL     string        `long:"generator-url" env:"SCHEDULER_GENERATOR_URL" description:"Endpoint of the external password generator" required:"true"`
	GeneratorToken   string        `long:"generator-token" env:"SCHEDULER_GENERATOR_TOKEN" description:"Bearer token of the external password generator"`
	GeneratorTimeout time.Duration `long:"generator-timeout" env:"SCHEDULER_GENERATOR_TIMEOUT" description:"Timeout of one generator call" default:"20s"`
	Interval         time.Duration `long:"interval" env:"SCHEDULER_INTERVAL" description:"Sweep interval" default:"30s"`
	HintTimeout      time.Duration `long:"hint-timeout" env:"SCHEDULER_HINT_TIMEOUT" description:"How long a winner may take to set the hint" default:"3m"`
	RetryLimit       int           `long:"retry-limit" env:"SCHEDULER_RETRY_LIMIT" description:"Generator failures before the fallback secret is used" default:"5"`
	BatchSize        int           `long:"batch-size" env:"SCHEDULER_BATCH_SIZE" description:"Blocks handled per check" default:"100"`
	Workers          int           `long:"workers" env:"SCHEDULER_WORKERS" description:"Blocks handled concurrently per check" default:"4"`
	MetricsAddr      string        `long:"metrics-addr" env:"SCHEDULER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	LogJSON          bool          `long:"log-json" env:"SCHEDULER_LOG_JSON" description:"Log in JSON"`

	Game app.GameOptions `group:"game" namespace:"game"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("scheduler failed", zap.Error(err))
	}
}

func newLogger(json bool) (*zap.Logger, error) {
	if json {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	core, err := app.NewCore(cfg.Game, clock.System{}, logger)
	if err != nil {
		return fmt.Errorf("init core: %w", err)
	}
	defer func() {
		if err := core.Close(); err != nil {
			logger.Error("failed to close core", zap.Error(err))
		}
	}()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	core.Start(ctx)

	genesis, created, err := core.Engine.EnsureGenesis(ctx)
	if err != nil {
		return fmt.Errorf("ensure genesis block: %w", err)
	}
	if created {
		logger.Info("genesis block created", zap.Uint64("block_id", genesis.ID))
	}

	external, err := generation.NewHTTPGenerator(&http.Client{Timeout: cfg.GeneratorTimeout}, cfg.GeneratorURL, cfg.GeneratorToken)
	if err != nil {
		return fmt.Errorf("init generator client: %w", err)
	}
	pipeline, err := generation.NewPipeline(external, metrics.NewGenerator(), cfg.GeneratorTimeout, logger)
	if err != nil {
		return fmt.Errorf("init generation pipeline: %w", err)
	}

	svc, err := scheduler.NewService(core.Store, core.Engine, pipeline, metrics.NewScheduler(), clock.System{},
		scheduler.Config{
			Interval:    cfg.Interval,
			HintTimeout: cfg.HintTimeout,
			RetryLimit:  cfg.RetryLimit,
			BatchSize:   cfg.BatchSize,
			Workers:     cfg.Workers,
		}, logger)
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	return svc.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
