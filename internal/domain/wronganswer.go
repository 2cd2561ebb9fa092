package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// WrongAttempt is one mistake in a wrong-answer entry's history.
type WrongAttempt struct {
	WrongAt     time.Time `json:"wrongAt"`
	StageAtTime int       `json:"stageAtTime"`
}

// WrongAnswerEntry is a review-note item: one per (user, item) with an
// unresolved mistake. Card and Stats are attached on read.
type WrongAnswerEntry struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	ItemID             string
	ItemType           ItemType
	CardID             *uuid.UUID
	WrongData          json.RawMessage
	WrongAt            time.Time
	TotalWrongAttempts int
	History            []WrongAttempt

	ReviewWindowStart *time.Time
	ReviewWindowEnd   *time.Time
	CanReview         bool

	Card  *Card
	Stats *ConsolidatedRecord

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CategoryCount holds the note counts for one item type.
type CategoryCount struct {
	Type   ItemType
	Total  int
	Active int
}
