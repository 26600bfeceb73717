package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/passblock-backend/internal/model"
	"gorm.io/gorm"
)

// HasAttempt reports whether userID already submitted value on blockID.
func (r *Repository) HasAttempt(ctx context.Context, blockID, userID uint64, value string) (exists bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("has_attempt", err, start)
	}()

	var count int64
	err = r.conn(ctx).Model(&attemptRow{}).
		Where("block_id = ? AND user_id = ? AND submitted_value = ?", blockID, userID, value).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check attempt: %w", err)
	}
	return count > 0, nil
}

// InsertAttempt appends a to the log. IsFirstSubmissionForUserOnBlock is derived
// here, in the same statement scope as the insert, and never changes afterwards.
func (r *Repository) InsertAttempt(ctx context.Context, a model.Attempt) (inserted model.Attempt, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_attempt", err, start)
	}()

	err = r.Tx(ctx, func(ctx context.Context) error {
		var prior int64
		if err := r.conn(ctx).Model(&attemptRow{}).
			Where("block_id = ? AND user_id = ?", a.BlockID, a.UserID).
			Count(&prior).Error; err != nil {
			return fmt.Errorf("count prior attempts: %w", err)
		}

		row := attemptRow{
			BlockID:           a.BlockID,
			UserID:            a.UserID,
			SubmittedValue:    a.SubmittedValue,
			SimilarityScore:   a.SimilarityScore,
			IsFirstSubmission: prior == 0,
			CreatedAt:         utc(a.CreatedAt),
		}
		if err := r.conn(ctx).Create(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("insert attempt: %w", model.ErrDuplicateSubmission)
			}
			return fmt.Errorf("insert attempt: %w", err)
		}
		inserted = row.toModel()
		return nil
	})
	if err != nil {
		return model.Attempt{}, err
	}
	return inserted, nil
}

// ListAttempts returns up to limit attempts on blockID in insertion order.
func (r *Repository) ListAttempts(ctx context.Context, blockID uint64, limit int) (attempts []model.Attempt, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("list_attempts", err, start)
	}()

	var rows []attemptRow
	q := r.conn(ctx).Where("block_id = ?", blockID).Order("id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err = q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list attempts of block %d: %w", blockID, err)
	}
	attempts = make([]model.Attempt, len(rows))
	for i, row := range rows {
		attempts[i] = row.toModel()
	}
	return attempts, nil
}
