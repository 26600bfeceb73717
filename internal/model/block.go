// Package model defines domain models of the password block game.
package model

import "time"

// BlockStatus describes the lifecycle stage of a block.
type BlockStatus string

const (
	// BlockActive marks the single block that accepts attempts.
	BlockActive BlockStatus = "ACTIVE"
	// BlockSolvedPendingHint marks a solved block, or a successor waiting for its hint.
	BlockSolvedPendingHint BlockStatus = "SOLVED_PENDING_HINT"
	// BlockAwaitingPassword marks a successor whose secret is being generated.
	BlockAwaitingPassword BlockStatus = "AWAITING_PASSWORD"
	// BlockCleared marks a historical block.
	BlockCleared BlockStatus = "CLEARED"
)

// Valid reports whether s is a known status.
func (s BlockStatus) Valid() bool {
	switch s {
	case BlockActive, BlockSolvedPendingHint, BlockAwaitingPassword, BlockCleared:
		return true
	}
	return false
}

// Block is the shared puzzle unit.
type Block struct {
	ID                   uint64
	Status               BlockStatus
	Difficulty           Difficulty
	SecretHash           string
	SecretPlaintext      string
	Hint                 string
	WinnerID             *uint64
	HintSetterID         *uint64
	PrizePool            int64
	GenerationRetryCount int
	PreviousBlockID      *uint64
	EnteredWaitingAt     *time.Time
	SolvedAt             *time.Time
	CreatedAt            time.Time
}

// WaitingForHint reports whether b is a successor that still needs its hint.
// A solved block shares the status but always carries a winner.
func (b Block) WaitingForHint() bool {
	return b.Status == BlockSolvedPendingHint && b.WinnerID == nil
}

// PublicBlock is the externally visible projection of a block.
type PublicBlock struct {
	ID                   uint64      `json:"id"`
	Status               BlockStatus `json:"status"`
	Length               int         `json:"length"`
	CharacterClasses     []string    `json:"character_classes"`
	Hint                 string      `json:"hint,omitempty"`
	WinnerID             *uint64     `json:"winner_id,omitempty"`
	HintSetterID         *uint64     `json:"hint_setter_id,omitempty"`
	PrizePool            int64       `json:"prize_pool"`
	GenerationRetryCount int         `json:"generation_retry_count"`
	PreviousBlockID      *uint64     `json:"previous_block_id,omitempty"`
	EnteredWaitingAt     *time.Time  `json:"entered_waiting_at,omitempty"`
	SolvedAt             *time.Time  `json:"solved_at,omitempty"`
	CreatedAt            time.Time   `json:"created_at"`
}

// Public strips the secret from b.
func (b Block) Public() PublicBlock {
	return PublicBlock{
		ID:                   b.ID,
		Status:               b.Status,
		Length:               b.Difficulty.Length,
		CharacterClasses:     b.Difficulty.Classes.Names(),
		Hint:                 b.Hint,
		WinnerID:             b.WinnerID,
		HintSetterID:         b.HintSetterID,
		PrizePool:            b.PrizePool,
		GenerationRetryCount: b.GenerationRetryCount,
		PreviousBlockID:      b.PreviousBlockID,
		EnteredWaitingAt:     b.EnteredWaitingAt,
		SolvedAt:             b.SolvedAt,
		CreatedAt:            b.CreatedAt,
	}
}
