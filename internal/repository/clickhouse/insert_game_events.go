package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/passblock-backend/internal/model"
)

func insertGameEventsQuery() string {
	return `
INSERT INTO game_events (
	event_type,
	block_id,
	user_id,
	score,
	is_first,
	new_status,
	winner_id,
	new_total,
	occurred_at
) VALUES`
}

// InsertGameEvents stores events in ClickHouse.
func (r *Repository) InsertGameEvents(ctx context.Context, events []model.Event) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_game_events", len(events), err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertGameEventsQuery())
	if err != nil {
		return fmt.Errorf("prepare game events batch: %w", err)
	}

	for _, e := range events {
		if err = batch.Append(eventColumns(e)...); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append %s event: %w", e.Type, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert game events: %w", err)
	}
	return nil
}

func eventColumns(e model.Event) []any {
	var isFirst uint8
	if e.IsFirst {
		isFirst = 1
	}
	var winnerID uint64
	if e.WinnerID != nil {
		winnerID = *e.WinnerID
	}
	return []any{
		string(e.Type),
		e.BlockID,
		e.UserID,
		e.Score,
		isFirst,
		string(e.NewStatus),
		winnerID,
		e.NewTotal,
		e.OccurredAt.UTC(),
	}
}
