package scheduler

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/goodnatureofminers/passblock-backend/internal/model"
)

type (
	Store interface {
		ListWaitingForHint(ctx context.Context, enteredBefore time.Time, limit int) ([]model.Block, error)
		ListGenerationCandidates(ctx context.Context, retryLimit, limit int) ([]model.Block, error)
		ListFallbackCandidates(ctx context.Context, retryLimit, limit int) ([]model.Block, error)
	}
	Lifecycle interface {
		ExpireHint(ctx context.Context, b model.Block) (bool, error)
		RecordGenerationFailure(ctx context.Context, b model.Block) (bool, error)
		Activate(ctx context.Context, b model.Block, secret, trigger string) (bool, error)
	}
	Generator interface {
		Generate(ctx context.Context, hint string, d model.Difficulty) (string, error)
		Fallback(d model.Difficulty) (string, error)
	}
	Metrics interface {
		ObserveCheck(check string, err error, blocks int, started time.Time)
	}
)
