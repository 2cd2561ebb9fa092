// Package consolidate folds attempt events into per-item statistics.
// Events close together in time form one session, and a session counts as a
// single review attempt that is correct only if every event in it is.
package consolidate

import (
	"fmt"
	"regexp"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
)

// ReviewableItem supplies the per-type rules used by Consolidate.
type ReviewableItem interface {
	Type() domain.ItemType
	// LogicalKey groups sub-question events that belong to one item.
	LogicalKey(e domain.AttemptEvent) string
	IsCorrect(e domain.AttemptEvent) bool
}

// Vocab items are answered one event per attempt.
type Vocab struct{}

func (Vocab) Type() domain.ItemType { return domain.ItemTypeVocab }
func (Vocab) LogicalKey(e domain.AttemptEvent) string { return e.ItemID }
func (Vocab) IsCorrect(e domain.AttemptEvent) bool { return e.IsCorrect }

// Grammar items are answered one event per attempt.
type Grammar struct{}

func (Grammar) Type() domain.ItemType { return domain.ItemTypeGrammar }
func (Grammar) LogicalKey(e domain.AttemptEvent) string { return e.ItemID }
func (Grammar) IsCorrect(e domain.AttemptEvent) bool { return e.IsCorrect }

// Listening items are keyed by clip.
type Listening struct{}

func (Listening) Type() domain.ItemType { return domain.ItemTypeListening }
func (Listening) LogicalKey(e domain.AttemptEvent) string { return e.ItemID }
func (Listening) IsCorrect(e domain.AttemptEvent) bool { return e.IsCorrect }

// Reading items are passages with several sub-questions. Events group by
// passage id, or by the item id with its "_Q<n>" suffix removed.
type Reading struct{}

var subQuestionSuffix = regexp.MustCompile(`_Q\d+$`)

func (Reading) Type() domain.ItemType { return domain.ItemTypeReading }

func (Reading) LogicalKey(e domain.AttemptEvent) string {
	if e.PassageID != "" {
		return e.PassageID
	}
	return PassageKey(e.ItemID)
}

func (Reading) IsCorrect(e domain.AttemptEvent) bool { return e.IsCorrect }

// PassageKey strips a trailing sub-question marker from a reading item id.
func PassageKey(itemID string) string {
	return subQuestionSuffix.ReplaceAllString(itemID, "")
}

// For returns the ReviewableItem for an item type.
func For(t domain.ItemType) (ReviewableItem, error) {
	switch t {
	case domain.ItemTypeVocab:
		return Vocab{}, nil
	case domain.ItemTypeGrammar:
		return Grammar{}, nil
	case domain.ItemTypeReading:
		return Reading{}, nil
	case domain.ItemTypeListening:
		return Listening{}, nil
	}
	return nil, domain.NewValidationError("type", fmt.Sprintf("unknown item type %q", t))
}
