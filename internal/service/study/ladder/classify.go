package ladder

import (
	"fmt"
	"math"
	"time"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
)

// Classify returns the single review label of card at now.
// The first matching rule wins:
//
//	mastered > frozen > overdue flag > waitingUntil > nextReviewAt > unsolved
func Classify(card *domain.Card, now time.Time) domain.CardLabel {
	if card == nil {
		return domain.CardLabelUnsolved
	}
	switch {
	case card.IsMastered:
		return domain.CardLabelMastered
	case card.FrozenUntil != nil && now.Before(*card.FrozenUntil):
		return domain.CardLabelFrozen
	case card.IsOverdue:
		return domain.CardLabelOverdue
	case card.WaitingUntil != nil:
		return waitingOrOverdue(*card.WaitingUntil, now)
	case card.NextReviewAt != nil:
		return waitingOrOverdue(*card.NextReviewAt, now)
	}
	return domain.CardLabelUnsolved
}

func waitingOrOverdue(until, now time.Time) domain.CardLabel {
	if now.Before(until) {
		return domain.CardLabelWaiting
	}
	return domain.CardLabelOverdue
}

// IsReviewable reports whether the card is offered for review at now.
func IsReviewable(card *domain.Card, now time.Time) bool {
	return Classify(card, now) == domain.CardLabelOverdue
}

// Deadline returns the instant the card's current label is counting down to,
// or nil when the label has no timer.
func Deadline(card *domain.Card, now time.Time) *time.Time {
	switch Classify(card, now) {
	case domain.CardLabelFrozen:
		return card.FrozenUntil
	case domain.CardLabelWaiting:
		start, _ := card.ReviewWindow()
		return start
	case domain.CardLabelOverdue:
		return card.OverdueDeadline
	}
	return nil
}

// FormatRemaining renders the time left until deadline:
// "now" once it has passed, whole hours below a day, whole days otherwise.
// Partial units round up.
func FormatRemaining(deadline, now time.Time) string {
	left := deadline.Sub(now)
	if left <= 0 {
		return "now"
	}
	if left < 24*time.Hour {
		return fmt.Sprintf("%d시간 후", int(math.Ceil(left.Hours())))
	}
	return fmt.Sprintf("%d일 후", int(math.Ceil(left.Hours()/24)))
}
