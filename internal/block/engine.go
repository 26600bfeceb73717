// Package block runs the lifecycle of the single shared block: submissions,
// the atomic first-correct-wins resolution, hints and activation.
//
// Every status change is a conditional update in the store. A caller whose
// precondition no longer holds learns it from the returned flag and never
// overwrites another caller's transition.
package block

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/passblock-backend/internal/clock"
	"github.com/goodnatureofminers/passblock-backend/internal/generation"
	"go.uber.org/zap"
)

// Config holds the economic constants of the game.
type Config struct {
	PrizePoolStart  int64
	PrizePerAttempt int64
	GenesisHint     string
}

// Engine is the block state machine.
type Engine struct {
	store     Store
	budget    Budget
	ranking   Ranking
	policy    Policy
	publisher Publisher
	metrics   Metrics
	clock     clock.Clock
	cfg       Config
	logger    *zap.Logger

	hashSecret func(string) (string, error)
}

// NewEngine constructs an Engine.
func NewEngine(
	store Store,
	budget Budget,
	ranking Ranking,
	policy Policy,
	publisher Publisher,
	metrics Metrics,
	clk clock.Clock,
	cfg Config,
	logger *zap.Logger,
) (*Engine, error) {
	switch {
	case store == nil:
		return nil, errors.New("block store is required")
	case budget == nil:
		return nil, errors.New("budget is required")
	case ranking == nil:
		return nil, errors.New("ranking is required")
	case policy == nil:
		return nil, errors.New("difficulty policy is required")
	case publisher == nil:
		return nil, errors.New("event publisher is required")
	case metrics == nil:
		return nil, errors.New("block metrics is required")
	case clk == nil:
		return nil, errors.New("clock is required")
	}
	if cfg.PrizePoolStart < 0 || cfg.PrizePerAttempt < 0 {
		return nil, fmt.Errorf("prize amounts must not be negative, got %+v", cfg)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		store:     store,
		budget:    budget,
		ranking:   ranking,
		policy:    policy,
		publisher: publisher,
		metrics:   metrics,
		clock:     clk,
		cfg:       cfg,
		logger:    logger.Named("block"),

		hashSecret: generation.HashSecret,
	}, nil
}
