package sqlite

import (
	"time"

	"github.com/goodnatureofminers/passblock-backend/internal/model"
)

type userRow struct {
	ID                  uint64 `gorm:"primaryKey;autoIncrement:false"`
	Tier                string
	CPBalance           int `gorm:"column:cp_balance"`
	LastRefillCheckedAt time.Time
	TotalPoints         int64
	CreatedAt           time.Time
}

func (userRow) TableName() string { return "users" }

func (u userRow) toModel() model.User {
	return model.User{
		ID:                  u.ID,
		Tier:                model.Tier(u.Tier),
		CPBalance:           u.CPBalance,
		LastRefillCheckedAt: u.LastRefillCheckedAt,
		TotalPoints:         u.TotalPoints,
		CreatedAt:           u.CreatedAt,
	}
}

type blockRow struct {
	ID                   uint64 `gorm:"primaryKey"`
	Status               string
	Length               int
	CharacterClasses     uint8
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

func (blockRow) TableName() string { return "blocks" }

func newBlockRow(b model.Block) blockRow {
	return blockRow{
		ID:                   b.ID,
		Status:               string(b.Status),
		Length:               b.Difficulty.Length,
		CharacterClasses:     uint8(b.Difficulty.Classes),
		SecretHash:           b.SecretHash,
		SecretPlaintext:      b.SecretPlaintext,
		Hint:                 b.Hint,
		WinnerID:             b.WinnerID,
		HintSetterID:         b.HintSetterID,
		PrizePool:            b.PrizePool,
		GenerationRetryCount: b.GenerationRetryCount,
		PreviousBlockID:      b.PreviousBlockID,
		EnteredWaitingAt:     utcPtr(b.EnteredWaitingAt),
		SolvedAt:             utcPtr(b.SolvedAt),
		CreatedAt:            utc(b.CreatedAt),
	}
}

func (b blockRow) toModel() model.Block {
	return model.Block{
		ID:     b.ID,
		Status: model.BlockStatus(b.Status),
		Difficulty: model.Difficulty{
			Length:  b.Length,
			Classes: model.ClassSet(b.CharacterClasses),
		},
		SecretHash:           b.SecretHash,
		SecretPlaintext:      b.SecretPlaintext,
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

type attemptRow struct {
	ID                uint64 `gorm:"primaryKey"`
	BlockID           uint64
	UserID            uint64
	SubmittedValue    string
	SimilarityScore   float64
	IsFirstSubmission bool
	CreatedAt         time.Time
}

func (attemptRow) TableName() string { return "attempts" }

func (a attemptRow) toModel() model.Attempt {
	return model.Attempt{
		ID:                              a.ID,
		BlockID:                         a.BlockID,
		UserID:                          a.UserID,
		SubmittedValue:                  a.SubmittedValue,
		SimilarityScore:                 a.SimilarityScore,
		IsFirstSubmissionForUserOnBlock: a.IsFirstSubmission,
		CreatedAt:                       a.CreatedAt,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
