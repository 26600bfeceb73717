package events

import (
	"context"

	"github.com/goodnatureofminers/passblock-backend/internal/model"
	"go.uber.org/zap"
)

// LogSink writes every event to a structured log.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger.Named("game_events")}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Consume(_ context.Context, e model.Event) error {
	fields := []zap.Field{
		zap.String("type", string(e.Type)),
		zap.Time("occurred_at", e.OccurredAt),
	}
	switch e.Type {
	case model.EventAttemptRecorded:
		fields = append(fields,
			zap.Uint64("block_id", e.BlockID),
			zap.Uint64("user_id", e.UserID),
			zap.Float64("score", e.Score),
			zap.Bool("is_first", e.IsFirst),
		)
	case model.EventBlockStatusChanged:
		fields = append(fields,
			zap.Uint64("block_id", e.BlockID),
			zap.String("status", string(e.NewStatus)),
		)
		if e.WinnerID != nil {
			fields = append(fields, zap.Uint64("winner_id", *e.WinnerID))
		}
	case model.EventRankingCredited:
		fields = append(fields,
			zap.Uint64("user_id", e.UserID),
			zap.Int64("total_points", e.NewTotal),
		)
	}
	s.logger.Info("game event", fields...)
	return nil
}
