package block

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/passblock-backend/internal/model"
	"github.com/goodnatureofminers/passblock-backend/internal/similarity"
	"go.uber.org/zap"
)

const (
	outcomeAccepted = "accepted"
	outcomeWinner   = "winner"
)

// errLeftActive rolls back an attempt on a block that stopped accepting them
// between the status check and the insert.
var errLeftActive = errors.New("block left active state")

type resolution struct {
	attempt   model.Attempt
	won       bool
	lost      bool
	pool      int64
	total     int64
	successor model.Block
}

// Submit evaluates value as userID's guess for blockID.
//
// Checks run before anything is spent: the block must be ACTIVE and the value
// new for this user. A correct guess that loses the winner race is still
// recorded; the caller gets its score, a refund and model.ErrAlreadySolved.
func (e *Engine) Submit(ctx context.Context, blockID, userID uint64, value string) (result model.SubmissionResult, err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveSubmission(submissionOutcome(result, err), started)
	}()

	if value == "" {
		return model.SubmissionResult{}, fmt.Errorf("empty submission: %w", model.ErrInvalidArgument)
	}

	b, err := e.store.GetBlock(ctx, blockID)
	if err != nil {
		return model.SubmissionResult{}, err
	}
	if b.Status != model.BlockActive {
		return model.SubmissionResult{}, fmt.Errorf("block %d is %s: %w", blockID, b.Status, model.ErrBlockNotActive)
	}

	dup, err := e.store.HasAttempt(ctx, blockID, userID, value)
	if err != nil {
		return model.SubmissionResult{}, err
	}
	if dup {
		return model.SubmissionResult{}, fmt.Errorf("user %d on block %d: %w", userID, blockID, model.ErrDuplicateSubmission)
	}

	ok, err := e.budget.TryConsume(ctx, userID)
	if err != nil {
		return model.SubmissionResult{}, err
	}
	if !ok {
		return model.SubmissionResult{}, fmt.Errorf("user %d: %w", userID, model.ErrInsufficientBudget)
	}

	score := similarity.Score(value, b.SecretPlaintext)
	now := e.clock.Now()

	res, err := e.record(ctx, b, userID, value, score, now)
	if err != nil {
		e.refund(ctx, userID)
		if errors.Is(err, errLeftActive) {
			return model.SubmissionResult{}, fmt.Errorf("block %d: %w", blockID, model.ErrBlockNotActive)
		}
		return model.SubmissionResult{}, err
	}

	e.publisher.Publish(model.AttemptRecorded(res.attempt))
	result = model.SubmissionResult{Accepted: true, Score: score}

	switch {
	case res.lost:
		e.refund(ctx, userID)
		e.logger.Debug("lost winner race", zap.Uint64("block_id", blockID), zap.Uint64("user_id", userID))
		return result, fmt.Errorf("block %d: %w", blockID, model.ErrAlreadySolved)
	case res.won:
		result.IsWinner = true
		e.announceWin(b.ID, userID, res, now)
	}
	return result, nil
}

// record appends the attempt, grows the pool and, for a correct guess, tries
// to resolve the winner. All of it commits or none of it does.
func (e *Engine) record(ctx context.Context, b model.Block, userID uint64, value string, score float64, now time.Time) (res resolution, err error) {
	err = e.store.Tx(ctx, func(ctx context.Context) error {
		res = resolution{}

		attempt, err := e.store.InsertAttempt(ctx, model.Attempt{
			BlockID:         b.ID,
			UserID:          userID,
			SubmittedValue:  value,
			SimilarityScore: score,
			CreatedAt:       now,
		})
		if err != nil {
			return err
		}
		res.attempt = attempt

		grown, err := e.store.IncrementPrizePool(ctx, b.ID, e.cfg.PrizePerAttempt)
		if err != nil {
			return err
		}
		if !grown {
			if score < similarity.Max {
				return errLeftActive
			}
			res.lost = true
			return nil
		}
		if score < similarity.Max {
			return nil
		}

		won, err := e.store.ResolveWinner(ctx, b.ID, userID, now)
		if err != nil {
			return err
		}
		if !won {
			res.lost = true
			return nil
		}
		res.won = true
		return e.award(ctx, b.ID, userID, now, &res)
	})
	if err != nil {
		return resolution{}, err
	}
	return res, nil
}

// award credits the frozen pool to the winner and pre-allocates the successor.
func (e *Engine) award(ctx context.Context, blockID, winnerID uint64, now time.Time, res *resolution) error {
	solved, err := e.store.GetBlock(ctx, blockID)
	if err != nil {
		return err
	}
	res.pool = solved.PrizePool

	res.total, err = e.ranking.Credit(ctx, winnerID, solved.PrizePool)
	if err != nil {
		return err
	}

	res.successor, err = e.store.CreateBlock(ctx, model.Block{
		Status:           model.BlockSolvedPendingHint,
		Difficulty:       e.policy.Next(solved.Difficulty),
		HintSetterID:     &winnerID,
		PrizePool:        e.cfg.PrizePoolStart,
		PreviousBlockID:  &blockID,
		EnteredWaitingAt: &now,
		CreatedAt:        now,
	})
	if err != nil {
		return fmt.Errorf("create successor of block %d: %w", blockID, err)
	}
	return nil
}

func (e *Engine) announceWin(blockID, winnerID uint64, res resolution, now time.Time) {
	e.metrics.ObserveTransition(string(model.BlockSolvedPendingHint), "solve")
	e.publisher.Publish(model.BlockStatusChanged(blockID, model.BlockSolvedPendingHint, &winnerID, now))
	e.publisher.Publish(model.RankingCredited(winnerID, res.total, now))
	e.publisher.Publish(model.BlockStatusChanged(res.successor.ID, model.BlockSolvedPendingHint, nil, now))

	e.logger.Info("block solved",
		zap.Uint64("block_id", blockID),
		zap.Uint64("winner_id", winnerID),
		zap.Int64("prize_pool", res.pool),
		zap.Uint64("successor_id", res.successor.ID),
		zap.Int("successor_length", res.successor.Difficulty.Length),
		zap.Strings("successor_classes", res.successor.Difficulty.Classes.Names()),
	)
}

func (e *Engine) refund(ctx context.Context, userID uint64) {
	if err := e.budget.Refund(ctx, userID); err != nil {
		e.logger.Error("refund failed", zap.Uint64("user_id", userID), zap.Error(err))
	}
}

func submissionOutcome(result model.SubmissionResult, err error) string {
	switch {
	case err != nil:
		return strings.ToLower(string(model.Kind(err)))
	case result.IsWinner:
		return outcomeWinner
	default:
		return outcomeAccepted
	}
}
