package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/passblock-backend/internal/model"
	"gorm.io/gorm"
)

// CountBlocks returns the number of stored blocks.
func (r *Repository) CountBlocks(ctx context.Context) (count int64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("count_blocks", err, start)
	}()

	if err = r.conn(ctx).Model(&blockRow{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count blocks: %w", err)
	}
	return count, nil
}

// CreateBlock inserts b and returns it with its assigned id.
func (r *Repository) CreateBlock(ctx context.Context, b model.Block) (created model.Block, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("create_block", err, start)
	}()

	row := newBlockRow(b)
	row.ID = 0
	if err = r.conn(ctx).Create(&row).Error; err != nil {
		return model.Block{}, fmt.Errorf("insert block: %w", err)
	}
	return row.toModel(), nil
}

// GetBlock loads a block by id.
func (r *Repository) GetBlock(ctx context.Context, id uint64) (model.Block, error) {
	return r.takeBlock(ctx, "get_block", fmt.Sprintf("get block %d", id), func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	})
}

// GetActiveBlock loads the block accepting attempts.
func (r *Repository) GetActiveBlock(ctx context.Context) (model.Block, error) {
	return r.takeBlock(ctx, "get_active_block", "get active block", func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", string(model.BlockActive))
	})
}

// GetLatestBlock loads the block with the highest id.
func (r *Repository) GetLatestBlock(ctx context.Context) (model.Block, error) {
	return r.takeBlock(ctx, "get_latest_block", "get latest block", func(db *gorm.DB) *gorm.DB {
		return db.Order("id DESC")
	})
}

// GetSuccessor loads the block created after previousID was solved.
func (r *Repository) GetSuccessor(ctx context.Context, previousID uint64) (model.Block, error) {
	return r.takeBlock(ctx, "get_successor", fmt.Sprintf("get successor of block %d", previousID), func(db *gorm.DB) *gorm.DB {
		return db.Where("previous_block_id = ?", previousID)
	})
}

func (r *Repository) takeBlock(ctx context.Context, operation, what string, scope func(*gorm.DB) *gorm.DB) (model.Block, error) {
	start := time.Now()
	var row blockRow
	if err := scope(r.conn(ctx)).Take(&row).Error; err != nil {
		err = wrapLookup(err, what)
		r.metrics.Observe(operation, err, start)
		return model.Block{}, err
	}
	r.metrics.Observe(operation, nil, start)
	return row.toModel(), nil
}

// ListWaitingForHint returns successors still waiting for a hint since before enteredBefore.
func (r *Repository) ListWaitingForHint(ctx context.Context, enteredBefore time.Time, limit int) ([]model.Block, error) {
	return r.listBlocks(ctx, "list_waiting_for_hint", limit, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ? AND winner_id IS NULL AND entered_waiting_at <= ?",
			string(model.BlockSolvedPendingHint), utc(enteredBefore))
	})
}

// ListGenerationCandidates returns blocks awaiting a password with retries below retryLimit.
func (r *Repository) ListGenerationCandidates(ctx context.Context, retryLimit, limit int) ([]model.Block, error) {
	return r.listBlocks(ctx, "list_generation_candidates", limit, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ? AND generation_retry_count < ?", string(model.BlockAwaitingPassword), retryLimit)
	})
}

// ListFallbackCandidates returns blocks awaiting a password that exhausted their retries.
func (r *Repository) ListFallbackCandidates(ctx context.Context, retryLimit, limit int) ([]model.Block, error) {
	return r.listBlocks(ctx, "list_fallback_candidates", limit, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ? AND generation_retry_count >= ?", string(model.BlockAwaitingPassword), retryLimit)
	})
}

func (r *Repository) listBlocks(ctx context.Context, operation string, limit int, scope func(*gorm.DB) *gorm.DB) (blocks []model.Block, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe(operation, err, start)
	}()

	var rows []blockRow
	q := scope(r.conn(ctx)).Order("id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err = q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	blocks = make([]model.Block, len(rows))
	for i, row := range rows {
		blocks[i] = row.toModel()
	}
	return blocks, nil
}

// IncrementPrizePool adds amount to the pool of an ACTIVE block.
func (r *Repository) IncrementPrizePool(ctx context.Context, id uint64, amount int64) (bool, error) {
	return r.casBlock(ctx, "increment_prize_pool", id,
		"status = ?", []any{string(model.BlockActive)},
		map[string]any{"prize_pool": gorm.Expr("prize_pool + ?", amount)})
}

// ResolveWinner moves an ACTIVE block to SOLVED_PENDING_HINT with winnerID.
// Exactly one of any number of concurrent callers gets true.
func (r *Repository) ResolveWinner(ctx context.Context, id, winnerID uint64, solvedAt time.Time) (bool, error) {
	return r.casBlock(ctx, "resolve_winner", id,
		"status = ?", []any{string(model.BlockActive)},
		map[string]any{
			"status":    string(model.BlockSolvedPendingHint),
			"winner_id": winnerID,
			"solved_at": utc(solvedAt),
		})
}

// SetHint stores the hint of a successor waiting for it and moves it to AWAITING_PASSWORD.
func (r *Repository) SetHint(ctx context.Context, id uint64, hint string, now time.Time) (bool, error) {
	return r.casBlock(ctx, "set_hint", id,
		"status = ? AND winner_id IS NULL", []any{string(model.BlockSolvedPendingHint)},
		map[string]any{
			"status":                 string(model.BlockAwaitingPassword),
			"hint":                   hint,
			"generation_retry_count": 0,
			"entered_waiting_at":     utc(now),
		})
}

// RecordGenerationFailure increments the retry count if it still equals expected.
func (r *Repository) RecordGenerationFailure(ctx context.Context, id uint64, expected int) (bool, error) {
	return r.casBlock(ctx, "record_generation_failure", id,
		"status = ? AND generation_retry_count = ?", []any{string(model.BlockAwaitingPassword), expected},
		map[string]any{"generation_retry_count": gorm.Expr("generation_retry_count + 1")})
}

// ActivateBlock stores the secret of a block awaiting a password and opens it for attempts.
func (r *Repository) ActivateBlock(ctx context.Context, id uint64, secretHash, secret string) (bool, error) {
	return r.casBlock(ctx, "activate_block", id,
		"status = ?", []any{string(model.BlockAwaitingPassword)},
		map[string]any{
			"status":                 string(model.BlockActive),
			"secret_hash":            secretHash,
			"secret_plaintext":       secret,
			"generation_retry_count": 0,
		})
}

// ClearBlock retires a solved block.
func (r *Repository) ClearBlock(ctx context.Context, id uint64) (bool, error) {
	return r.casBlock(ctx, "clear_block", id,
		"status = ? AND winner_id IS NOT NULL", []any{string(model.BlockSolvedPendingHint)},
		map[string]any{"status": string(model.BlockCleared)})
}

func (r *Repository) casBlock(ctx context.Context, operation string, id uint64, cond string, args []any, updates map[string]any) (applied bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe(operation, err, start)
	}()

	res := r.conn(ctx).Model(&blockRow{}).
		Where("id = ?", id).
		Where(cond, args...).
		Updates(updates)
	if err = res.Error; err != nil {
		return false, fmt.Errorf("%s block %d: %w", operation, id, err)
	}
	return res.RowsAffected == 1, nil
}
