package events

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"

	"github.com/goodnatureofminers/passblock-backend/internal/model"
)

type (
	Sink interface {
		Name() string
		Consume(ctx context.Context, e model.Event) error
	}
	Metrics interface {
		ObservePublish(eventType string, queued bool)
		ObserveSinkError(sink string)
	}
	EventWriter interface {
		InsertGameEvents(ctx context.Context, events []model.Event) error
	}
)
