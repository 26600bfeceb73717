package budget

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/goodnatureofminers/passblock-backend/internal/model"
)

type (
	Store interface {
		CreateUser(ctx context.Context, u model.User) error
		GetUser(ctx context.Context, id uint64) (model.User, error)
		RefillBudget(ctx context.Context, id uint64, limit, minutes int, checkedAt, now time.Time) (bool, error)
		ConsumeBudget(ctx context.Context, id uint64) (bool, error)
		RefundBudget(ctx context.Context, id uint64, limit int) error
	}
	Metrics interface {
		ObserveConsume(ok bool, err error)
		ObserveRefund(err error)
		ObserveRefill(minutes int)
	}
)
