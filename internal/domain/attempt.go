package domain

import (
	"time"

	"github.com/google/uuid"
)

// AttemptEvent is one append-only answer submission.
type AttemptEvent struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	ItemID   string
	ItemType ItemType
	// PassageID and SubQuestionID are set for multi-question items.
	PassageID     string
	SubQuestionID string
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
	AnsweredAt    time.Time
	CreatedAt     time.Time
}

// ResolveCorrect returns the explicit correctness flag when present,
// else compares the answers.
func ResolveCorrect(isCorrect *bool, userAnswer, correctAnswer string) bool {
	if isCorrect != nil {
		return *isCorrect
	}
	return userAnswer == correctAnswer
}

// ConsolidatedRecord is the per-item statistic folded from the event log.
// It is derived and never stored as the source of truth.
type ConsolidatedRecord struct {
	Key            string
	ItemType       ItemType
	CorrectCount   int
	IncorrectCount int
	TotalAttempts  int
	LastResult     Outcome
	SolvedAt       time.Time
}

// Submission is the outcome of applying one submission to a card.
type Submission struct {
	Card      *Card
	Label     CardLabel
	Events    []AttemptEvent
	Duplicate bool
}
