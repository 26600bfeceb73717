// Package scheduler drives blocks forward when people or the generator stall.
//
// Each sweep runs three checks, each a set of per-block conditional updates:
// hint timeouts, fallback activation and one generation attempt. A sweep that
// overlaps another finds nothing left to do for the blocks the first one moved.
package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/passblock-backend/internal/block"
	"github.com/goodnatureofminers/passblock-backend/internal/clock"
	"github.com/goodnatureofminers/passblock-backend/internal/generation"
	"github.com/goodnatureofminers/passblock-backend/internal/model"
	"github.com/goodnatureofminers/passblock-backend/pkg/workerpool"
	"go.uber.org/zap"
)

// Config tunes the sweep. Zero values fall back to defaults.
type Config struct {
	Interval    time.Duration
	HintTimeout time.Duration
	RetryLimit  int
	BatchSize   int
	Workers     int
}

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = defaultInterval
	}
	if c.HintTimeout <= 0 {
		c.HintTimeout = defaultHintTimeout
	}
	if c.RetryLimit <= 0 {
		c.RetryLimit = defaultRetryLimit
	}
	if c.BatchSize <= 0 {
		c.BatchSize = defaultBatchSize
	}
	if c.Workers <= 0 {
		c.Workers = defaultWorkers
	}
	return c
}

// Service is the timeout scheduler.
type Service struct {
	store     Store
	lifecycle Lifecycle
	generator Generator
	metrics   Metrics
	clock     clock.Clock
	sleep     func(context.Context, time.Duration) error
	cfg       Config
	logger    *zap.Logger
}

// NewService builds a Service with dependencies.
func NewService(
	store Store,
	lifecycle Lifecycle,
	generator Generator,
	metrics Metrics,
	clk clock.Clock,
	cfg Config,
	logger *zap.Logger,
) (*Service, error) {
	switch {
	case store == nil:
		return nil, errors.New("scheduler store is required")
	case lifecycle == nil:
		return nil, errors.New("block lifecycle is required")
	case generator == nil:
		return nil, errors.New("password generator is required")
	case metrics == nil:
		return nil, errors.New("scheduler metrics is required")
	case clk == nil:
		return nil, errors.New("scheduler clock is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		store:     store,
		lifecycle: lifecycle,
		generator: generator,
		metrics:   metrics,
		clock:     clk,
		sleep:     clock.Sleep,
		cfg:       cfg.withDefaults(),
		logger:    logger.Named("scheduler"),
	}, nil
}

// Run sweeps every interval until the context is canceled. A failed sweep is
// logged and retried on the next tick.
func (s *Service) Run(ctx context.Context) error {
	s.logger.Info("scheduler started",
		zap.Duration("interval", s.cfg.Interval),
		zap.Duration("hint_timeout", s.cfg.HintTimeout),
		zap.Int("retry_limit", s.cfg.RetryLimit),
	)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.Sweep(ctx); err != nil {
			s.logger.Warn("sweep failed, retrying next tick", zap.Error(err), zap.Duration("sleep", s.cfg.Interval))
		}
		if err := s.sleep(ctx, s.cfg.Interval); err != nil {
			return err
		}
	}
}

// Sweep runs every check once. The checks are independent: a failing one
// does not prevent the others.
func (s *Service) Sweep(ctx context.Context) error {
	return errors.Join(
		s.expireHints(ctx),
		s.fallback(ctx),
		s.generate(ctx),
	)
}

func (s *Service) expireHints(ctx context.Context) error {
	return s.check(ctx, checkHintTimeout, func(ctx context.Context) ([]model.Block, error) {
		return s.store.ListWaitingForHint(ctx, s.clock.Now().Add(-s.cfg.HintTimeout), s.cfg.BatchSize)
	}, func(ctx context.Context, b model.Block) error {
		applied, err := s.lifecycle.ExpireHint(ctx, b)
		if err != nil {
			return err
		}
		if !applied {
			s.logger.Debug("hint arrived before timeout", zap.Uint64("block_id", b.ID))
		}
		return nil
	})
}

func (s *Service) fallback(ctx context.Context) error {
	return s.check(ctx, checkFallback, func(ctx context.Context) ([]model.Block, error) {
		return s.store.ListFallbackCandidates(ctx, s.cfg.RetryLimit, s.cfg.BatchSize)
	}, func(ctx context.Context, b model.Block) error {
		if generation.Decide(b.GenerationRetryCount, s.cfg.RetryLimit) != generation.UseFallback {
			return nil
		}
		secret, err := s.generator.Fallback(b.Difficulty)
		if err != nil {
			return err
		}
		applied, err := s.lifecycle.Activate(ctx, b, secret, block.TriggerFallback)
		if err != nil {
			return err
		}
		if !applied {
			s.logger.Debug("block already activated", zap.Uint64("block_id", b.ID))
			return nil
		}
		s.logger.Info("block activated by fallback", zap.Uint64("block_id", b.ID), zap.Int("retries", b.GenerationRetryCount))
		return nil
	})
}

func (s *Service) generate(ctx context.Context) error {
	return s.check(ctx, checkGeneration, func(ctx context.Context) ([]model.Block, error) {
		return s.store.ListGenerationCandidates(ctx, s.cfg.RetryLimit, s.cfg.BatchSize)
	}, func(ctx context.Context, b model.Block) error {
		if generation.Decide(b.GenerationRetryCount, s.cfg.RetryLimit) != generation.Attempt {
			return nil
		}
		secret, err := s.generator.Generate(ctx, b.Hint, b.Difficulty)
		if err != nil {
			s.logger.Warn("generation failed",
				zap.Uint64("block_id", b.ID),
				zap.Int("retries", b.GenerationRetryCount),
				zap.String("kind", string(model.Kind(err))),
				zap.Error(err),
			)
			_, err = s.lifecycle.RecordGenerationFailure(ctx, b)
			return err
		}
		_, err = s.lifecycle.Activate(ctx, b, secret, block.TriggerGenerated)
		return err
	})
}

func (s *Service) check(
	ctx context.Context,
	name string,
	list func(context.Context) ([]model.Block, error),
	handle func(context.Context, model.Block) error,
) (err error) {
	started := time.Now()
	var blocks []model.Block
	defer func() {
		s.metrics.ObserveCheck(name, err, len(blocks), started)
	}()

	blocks, err = list(ctx)
	if err != nil {
		s.logger.Error("list candidates failed", zap.String("check", name), zap.Error(err))
		return err
	}
	if len(blocks) == 0 {
		return nil
	}

	s.logger.Debug("handling blocks", zap.String("check", name), zap.Int("blocks", len(blocks)))
	err = workerpool.Each(ctx, s.cfg.Workers, blocks, handle)
	if err != nil {
		s.logger.Error("check failed", zap.String("check", name), zap.Error(err))
	}
	return err
}
