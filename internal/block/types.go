package block

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/goodnatureofminers/passblock-backend/internal/model"
)

type (
	Store interface {
		Tx(ctx context.Context, fn func(ctx context.Context) error) error
		CountBlocks(ctx context.Context) (int64, error)
		CreateBlock(ctx context.Context, b model.Block) (model.Block, error)
		GetBlock(ctx context.Context, id uint64) (model.Block, error)
		GetActiveBlock(ctx context.Context) (model.Block, error)
		GetLatestBlock(ctx context.Context) (model.Block, error)
		GetSuccessor(ctx context.Context, previousID uint64) (model.Block, error)
		HasAttempt(ctx context.Context, blockID, userID uint64, value string) (bool, error)
		InsertAttempt(ctx context.Context, a model.Attempt) (model.Attempt, error)
		ListAttempts(ctx context.Context, blockID uint64, limit int) ([]model.Attempt, error)
		IncrementPrizePool(ctx context.Context, id uint64, amount int64) (bool, error)
		ResolveWinner(ctx context.Context, id, winnerID uint64, solvedAt time.Time) (bool, error)
		SetHint(ctx context.Context, id uint64, hint string, now time.Time) (bool, error)
		RecordGenerationFailure(ctx context.Context, id uint64, expected int) (bool, error)
		ActivateBlock(ctx context.Context, id uint64, secretHash, secret string) (bool, error)
		ClearBlock(ctx context.Context, id uint64) (bool, error)
	}
	Budget interface {
		TryConsume(ctx context.Context, userID uint64) (bool, error)
		Refund(ctx context.Context, userID uint64) error
	}
	Ranking interface {
		Credit(ctx context.Context, userID uint64, points int64) (int64, error)
	}
	Policy interface {
		Genesis() model.Difficulty
		Next(d model.Difficulty) model.Difficulty
	}
	Publisher interface {
		Publish(e model.Event)
	}
	Metrics interface {
		ObserveSubmission(outcome string, started time.Time)
		ObserveTransition(to, trigger string)
	}
)
