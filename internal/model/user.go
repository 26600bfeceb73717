package model

import "time"

// Tier is the account tier that determines the CP cap.
type Tier string

const (
	TierAnonymous  Tier = "anonymous"
	TierRegistered Tier = "registered"
)

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	return t == TierAnonymous || t == TierRegistered
}

// User holds the budget and ranking state of a player.
type User struct {
	ID                  uint64
	Tier                Tier
	CPBalance           int
	LastRefillCheckedAt time.Time
	TotalPoints         int64
	CreatedAt           time.Time
}

// Budget is the CP view returned to callers.
type Budget struct {
	UserID  uint64 `json:"user_id"`
	Balance int    `json:"balance"`
	Cap     int    `json:"cap"`
}

// Rank is the ranking view of a user.
type Rank struct {
	UserID      uint64 `json:"user_id"`
	TotalPoints int64  `json:"total_points"`
	Rank        int64  `json:"rank"`
}
