package model

import "time"

// Attempt is an append-only submission log entry.
type Attempt struct {
	ID                              uint64    `json:"id"`
	BlockID                         uint64    `json:"block_id"`
	UserID                          uint64    `json:"user_id"`
	SubmittedValue                  string    `json:"submitted_value,omitempty"`
	SimilarityScore                 float64   `json:"similarity_score"`
	IsFirstSubmissionForUserOnBlock bool      `json:"is_first_submission"`
	CreatedAt                       time.Time `json:"created_at"`
}

// SubmissionResult is returned by a submission.
type SubmissionResult struct {
	Accepted bool    `json:"accepted"`
	Score    float64 `json:"score"`
	IsWinner bool    `json:"is_winner"`
}
