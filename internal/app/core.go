package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/passblock-backend/internal/block"
	"github.com/goodnatureofminers/passblock-backend/internal/budget"
	"github.com/goodnatureofminers/passblock-backend/internal/clock"
	"github.com/goodnatureofminers/passblock-backend/internal/difficulty"
	"github.com/goodnatureofminers/passblock-backend/internal/events"
	"github.com/goodnatureofminers/passblock-backend/internal/metrics"
	"github.com/goodnatureofminers/passblock-backend/internal/ranking"
	"github.com/goodnatureofminers/passblock-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/passblock-backend/internal/repository/sqlite"
	"github.com/goodnatureofminers/passblock-backend/pkg/batcher"
	"go.uber.org/zap"
)

// Core is the wired game: store, budget, ranking, block engine and events.
type Core struct {
	Store   *sqlite.Repository
	Budget  *budget.Gauge
	Ranking *ranking.Ledger
	Policy  *difficulty.Policy
	Engine  *block.Engine
	Events  *events.Dispatcher

	analytics     *events.AnalyticsSink
	analyticsRepo *clickhouse.Repository
	logger        *zap.Logger

	startOnce sync.Once
	done      chan struct{}
}

// NewCore opens the stores and wires the components. The SQLite schema is
// migrated on open.
func NewCore(opts GameOptions, clk clock.Clock, logger *zap.Logger) (core *Core, err error) {
	genesis, err := opts.Genesis()
	if err != nil {
		return nil, err
	}
	policy, err := difficulty.NewPolicy(opts.MinLength, opts.MaxLength, opts.LengthStepProb, opts.ClassStepProb, genesis, difficulty.SharedRandom{})
	if err != nil {
		return nil, fmt.Errorf("init difficulty policy: %w", err)
	}

	store, err := sqlite.Open(opts.SQLiteDSN, metrics.NewSQLiteRepository())
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = store.Close()
		}
	}()
	if err = store.Migrate(); err != nil {
		return nil, err
	}

	gauge, err := budget.NewGauge(store, metrics.NewBudget(), clk,
		budget.Caps{Anonymous: opts.AnonymousCap, Registered: opts.RegisteredCap},
		opts.RefillPerMinute, logger)
	if err != nil {
		return nil, fmt.Errorf("init budget: %w", err)
	}
	ledger, err := ranking.NewLedger(store)
	if err != nil {
		return nil, fmt.Errorf("init ranking: %w", err)
	}

	sinks := []events.Sink{events.NewLogSink(logger)}
	var (
		analytics     *events.AnalyticsSink
		analyticsRepo *clickhouse.Repository
	)
	if opts.ClickhouseDSN != "" {
		analyticsRepo, err = clickhouse.NewRepository(opts.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return nil, fmt.Errorf("init analytics repository: %w", err)
		}
		analytics = events.NewAnalyticsSink(analyticsRepo, batcher.Options{
			Size:     opts.AnalyticsBatchSize,
			Interval: opts.AnalyticsFlushInterval,
			RPS:      opts.AnalyticsRPS,
		}, logger)
		sinks = append(sinks, analytics)
	}
	dispatcher, err := events.NewDispatcher(opts.EventBuffer, metrics.NewEvents(), logger, sinks...)
	if err != nil {
		return nil, fmt.Errorf("init events: %w", err)
	}

	engine, err := block.NewEngine(store, gauge, ledger, policy, dispatcher, metrics.NewBlockEngine(), clk,
		block.Config{
			PrizePoolStart:  opts.PrizePoolStart,
			PrizePerAttempt: opts.PrizePerAttempt,
			GenesisHint:     opts.GenesisHint,
		}, logger)
	if err != nil {
		return nil, fmt.Errorf("init block engine: %w", err)
	}

	return &Core{
		Store:         store,
		Budget:        gauge,
		Ranking:       ledger,
		Policy:        policy,
		Engine:        engine,
		Events:        dispatcher,
		analytics:     analytics,
		analyticsRepo: analyticsRepo,
		logger:        logger,
		done:          make(chan struct{}),
	}, nil
}

// Start delivers events in the background until ctx is done.
func (c *Core) Start(ctx context.Context) {
	c.startOnce.Do(func() {
		if c.analytics != nil {
			c.analytics.Start(ctx)
		}
		go func() {
			defer close(c.done)
			c.Events.Run(ctx)
			if c.analytics != nil {
				c.analytics.Stop()
			}
		}()
	})
}

// Close waits for event delivery to finish and releases the stores. The
// context given to Start must be done before Close is called.
func (c *Core) Close() error {
	started := true
	c.startOnce.Do(func() { started = false })
	if started {
		<-c.done
	}

	var errs []error
	if c.analyticsRepo != nil {
		errs = append(errs, c.analyticsRepo.Close())
	}
	errs = append(errs, c.Store.Close())
	return errors.Join(errs...)
}
