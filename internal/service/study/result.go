package study

import (
	"time"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
	"github.com/heartmarshall/srs-review-backend/internal/service/study/ladder"
)

// CardView is a card with the state derived from it at one instant.
type CardView struct {
	Card      *domain.Card
	Label     domain.CardLabel
	Deadline  *time.Time
	Remaining string
	Stats     *domain.ConsolidatedRecord
}

func newCardView(c *domain.Card, now time.Time) CardView {
	v := CardView{Card: c, Label: ladder.Classify(c, now)}
	if c == nil {
		return v
	}
	v.Deadline = ladder.Deadline(c, now)
	if v.Deadline != nil {
		v.Remaining = ladder.FormatRemaining(*v.Deadline, now)
	}
	return v
}
