package model

import "time"

// EventType names an outbound notification.
type EventType string

const (
	EventAttemptRecorded    EventType = "attempt_recorded"
	EventBlockStatusChanged EventType = "block_status_changed"
	EventRankingCredited    EventType = "ranking_credited"
)

// Event is a best-effort notification emitted after a committed write.
// Only the fields relevant to Type are set.
type Event struct {
	Type       EventType
	BlockID    uint64
	UserID     uint64
	Score      float64
	IsFirst    bool
	NewStatus  BlockStatus
	WinnerID   *uint64
	NewTotal   int64
	OccurredAt time.Time
}

// AttemptRecorded builds an attempt notification.
func AttemptRecorded(a Attempt) Event {
	return Event{
		Type:       EventAttemptRecorded,
		BlockID:    a.BlockID,
		UserID:     a.UserID,
		Score:      a.SimilarityScore,
		IsFirst:    a.IsFirstSubmissionForUserOnBlock,
		OccurredAt: a.CreatedAt,
	}
}

// BlockStatusChanged builds a status change notification.
func BlockStatusChanged(blockID uint64, status BlockStatus, winnerID *uint64, at time.Time) Event {
	return Event{
		Type:       EventBlockStatusChanged,
		BlockID:    blockID,
		NewStatus:  status,
		WinnerID:   winnerID,
		OccurredAt: at,
	}
}

// RankingCredited builds a ranking credit notification.
func RankingCredited(userID uint64, newTotal int64, at time.Time) Event {
	return Event{
		Type:       EventRankingCredited,
		UserID:     userID,
		NewTotal:   newTotal,
		OccurredAt: at,
	}
}
