package domain

import (
	"time"

	"github.com/google/uuid"
)

// Card is the review state of one learning item for one user.
// (UserID, ItemID) is unique.
type Card struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	ItemID   string
	ItemType ItemType

	Stage             int
	NextReviewAt      *time.Time
	WaitingUntil      *time.Time
	OverdueDeadline   *time.Time
	IsOverdue         bool
	FrozenUntil       *time.Time
	IsFromWrongAnswer bool

	IsMastered   bool
	MasterCycles int
	MasteredAt   *time.Time

	CorrectTotal int
	WrongTotal   int

	LastAttemptAt   *time.Time
	LastWrongAt     *time.Time
	DailyWrongCount int

	// Version is the compare-and-swap token, bumped on every write.
	Version int

	Folders []FolderRef

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCard returns a card on first exposure: stage 0 and no timers.
func NewCard(userID uuid.UUID, itemID string, itemType ItemType, now time.Time) *Card {
	return &Card{
		ID:        uuid.New(),
		UserID:    userID,
		ItemID:    itemID,
		ItemType:  itemType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy of the card.
func (c *Card) Clone() *Card {
	if c == nil {
		return nil
	}
	cp := *c
	cp.NextReviewAt = copyTime(c.NextReviewAt)
	cp.WaitingUntil = copyTime(c.WaitingUntil)
	cp.OverdueDeadline = copyTime(c.OverdueDeadline)
	cp.FrozenUntil = copyTime(c.FrozenUntil)
	cp.MasteredAt = copyTime(c.MasteredAt)
	cp.LastAttemptAt = copyTime(c.LastAttemptAt)
	cp.LastWrongAt = copyTime(c.LastWrongAt)
	if c.Folders != nil {
		cp.Folders = make([]FolderRef, len(c.Folders))
		copy(cp.Folders, c.Folders)
	}
	return &cp
}

// TotalAttempts is the lifetime number of answers applied to the card.
func (c *Card) TotalAttempts() int {
	return c.CorrectTotal + c.WrongTotal
}

// ReviewWindow returns the span during which the card is comfortably reviewable.
// Start is the cool-down end (waitingUntil, else nextReviewAt), end is the overdue deadline.
func (c *Card) ReviewWindow() (start, end *time.Time) {
	start = c.WaitingUntil
	if start == nil {
		start = c.NextReviewAt
	}
	return start, c.OverdueDeadline
}

// InWrongAnswerFolder reports whether the card is filed in any wrong-answer folder.
func (c *Card) InWrongAnswerFolder() bool {
	for _, f := range c.Folders {
		if f.IsWrongAnswerFolder {
			return true
		}
	}
	return false
}

// Item is a learning item (vocabulary entry, grammar point, passage, clip).
// Items are managed outside the review engine; Language tags drive partitioning.
type Item struct {
	ID        string
	Type      ItemType
	Language  Language
	Title     string
	CreatedAt time.Time
}

// Folder is an organizational container for cards.
type Folder struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Name                string
	ParentID            *uuid.UUID
	IsWrongAnswerFolder bool
	CardCount           int
	CreatedAt           time.Time
}

// FolderRef is the folder membership embedded in a card.
type FolderRef struct {
	ID                  uuid.UUID
	Name                string
	ParentID            *uuid.UUID
	ParentName          *string
	IsWrongAnswerFolder bool
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
