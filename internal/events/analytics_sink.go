package events

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/passblock-backend/internal/model"
	"github.com/goodnatureofminers/passblock-backend/pkg/batcher"
	"go.uber.org/zap"
)

var errAnalyticsBacklog = errors.New("analytics queue is full")

// AnalyticsSink batches events into an EventWriter.
type AnalyticsSink struct {
	batcher *batcher.Batcher[model.Event]
}

func NewAnalyticsSink(writer EventWriter, opts batcher.Options, logger *zap.Logger) *AnalyticsSink {
	return &AnalyticsSink{
		batcher: batcher.New(logger.Named("analytics"), writer.InsertGameEvents, opts),
	}
}

// Start begins flushing in the background. Only Stop ends it; canceling ctx
// does not, so events drained after cancellation are still written.
func (s *AnalyticsSink) Start(ctx context.Context) {
	s.batcher.Start(context.WithoutCancel(ctx))
}

// Stop flushes buffered events and waits for the flush to finish.
func (s *AnalyticsSink) Stop() {
	s.batcher.Stop()
}

func (s *AnalyticsSink) Name() string { return "clickhouse" }

func (s *AnalyticsSink) Consume(_ context.Context, e model.Event) error {
	if !s.batcher.TryAdd(e) {
		return errAnalyticsBacklog
	}
	return nil
}
