package block

import (
	"context"

	"github.com/goodnatureofminers/passblock-backend/internal/model"
)

// DefaultAttemptsLimit bounds attempt listings without an explicit limit.
const DefaultAttemptsLimit = 100

// ActiveBlock returns the block accepting attempts.
func (e *Engine) ActiveBlock(ctx context.Context) (model.Block, error) {
	return e.store.GetActiveBlock(ctx)
}

// Block returns a block by id.
func (e *Engine) Block(ctx context.Context, id uint64) (model.Block, error) {
	return e.store.GetBlock(ctx, id)
}

// LatestBlock returns the newest block whatever its status.
func (e *Engine) LatestBlock(ctx context.Context) (model.Block, error) {
	return e.store.GetLatestBlock(ctx)
}

// Attempts lists attempts on blockID in insertion order. Submitted values are
// always redacted, since the winning one is the block secret; only scores are
// visible.
func (e *Engine) Attempts(ctx context.Context, blockID uint64, limit int) ([]model.Attempt, error) {
	_, err := e.store.GetBlock(ctx, blockID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > DefaultAttemptsLimit {
		limit = DefaultAttemptsLimit
	}
	attempts, err := e.store.ListAttempts(ctx, blockID, limit)
	if err != nil {
		return nil, err
	}
	for i := range attempts {
		attempts[i].SubmittedValue = ""
	}
	return attempts, nil
}
