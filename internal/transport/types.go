package transport

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"

	"github.com/goodnatureofminers/passblock-backend/internal/model"
)

type (
	Game interface {
		Submit(ctx context.Context, blockID, userID uint64, value string) (model.SubmissionResult, error)
		SubmitHint(ctx context.Context, blockID, userID uint64, hint string) (model.Block, error)
		ActiveBlock(ctx context.Context) (model.Block, error)
		LatestBlock(ctx context.Context) (model.Block, error)
		Block(ctx context.Context, id uint64) (model.Block, error)
		Attempts(ctx context.Context, blockID uint64, limit int) ([]model.Attempt, error)
	}
	Budgets interface {
		Register(ctx context.Context, userID uint64, tier model.Tier) (model.Budget, error)
		Budget(ctx context.Context, userID uint64) (model.Budget, error)
	}
	Ranks interface {
		Rank(ctx context.Context, userID uint64) (model.Rank, error)
	}
	Pinger interface {
		Ping(ctx context.Context) error
	}
)
