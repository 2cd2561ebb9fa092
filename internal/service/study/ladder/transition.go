// Package ladder implements the stage ladder: the transition of a card on
// each answer and the classification of a card into its review label.
// Everything here is pure; callers pass "now" from the clock source.
package ladder

import (
	"fmt"
	"time"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
)

// Transition applies one answer outcome to card and returns the new state.
// The input card is not modified. Version is left for the store to bump.
func Transition(card *domain.Card, outcome domain.Outcome, now time.Time, p domain.SRSPolicy) (*domain.Card, error) {
	if card == nil {
		return nil, fmt.Errorf("transition: card: %w", domain.ErrNotFound)
	}
	if !outcome.IsValid() {
		return nil, domain.NewValidationError("outcome", "must be correct or incorrect")
	}

	next := card.Clone()
	next.LastAttemptAt = &now
	next.UpdatedAt = now

	if outcome == domain.OutcomeCorrect {
		applyCorrect(next, now, p)
	} else {
		applyIncorrect(next, now, p)
	}

	return next, nil
}

func applyCorrect(c *domain.Card, now time.Time, p domain.SRSPolicy) {
	c.CorrectTotal++
	c.DailyWrongCount = 0

	if c.IsMastered {
		// A recheck scheduled on a mastered card is settled by a correct answer.
		if c.WaitingUntil != nil || c.NextReviewAt != nil {
			clearTimers(c)
			c.IsFromWrongAnswer = false
		}
		return
	}

	prev := c.Stage
	c.Stage = min(prev+1, p.MasteryStage)

	if c.Stage >= p.MasteryStage {
		c.IsMastered = true
		c.MasteredAt = &now
		c.MasterCycles++
		c.IsFromWrongAnswer = false
		clearTimers(c)
		return
	}

	schedule(c, now.Add(p.IntervalFor(prev)), p)
}

func applyIncorrect(c *domain.Card, now time.Time, p domain.SRSPolicy) {
	c.WrongTotal++
	c.IsFromWrongAnswer = true

	if c.LastWrongAt == nil || !SameDay(*c.LastWrongAt, now, p.Location) {
		c.DailyWrongCount = 0
	}
	c.DailyWrongCount++
	c.LastWrongAt = &now

	switch {
	case !c.IsMastered:
		c.Stage = demote(c.Stage, p)
	case p.ResetMasteryOnMistake:
		c.IsMastered = false
		c.Stage = demote(c.Stage, p)
	}
	// With ResetMasteryOnMistake off a mastered card keeps its stage and
	// mastery; the timers below schedule a recheck only.

	schedule(c, now.Add(p.WrongCooldown), p)

	if p.FreezeAfterFailures > 0 && c.DailyWrongCount >= p.FreezeAfterFailures {
		until := now.Add(p.FreezeDuration)
		c.FrozenUntil = &until
	}
}

func schedule(c *domain.Card, waitUntil time.Time, p domain.SRSPolicy) {
	deadline := waitUntil.Add(p.OverdueGrace)
	c.NextReviewAt = &waitUntil
	c.WaitingUntil = &waitUntil
	c.OverdueDeadline = &deadline
	c.IsOverdue = false
}

func clearTimers(c *domain.Card) {
	c.NextReviewAt = nil
	c.WaitingUntil = nil
	c.OverdueDeadline = nil
	c.IsOverdue = false
}

func demote(stage int, p domain.SRSPolicy) int {
	if p.Demotion == domain.DemotionReset {
		return 0
	}
	return max(0, stage-p.DemotionSteps)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
// A nil loc means UTC.
func SameDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.UTC
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
