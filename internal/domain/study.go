package domain

import (
	"time"
)

// SRSPolicy holds the stage ladder constants (pure domain type).
type SRSPolicy struct {
	// StageIntervals[s] is the wait after a correct answer at stage s.
	StageIntervals        []time.Duration
	MasteryStage          int
	WrongCooldown         time.Duration
	OverdueGrace          time.Duration
	Demotion              DemotionMode
	DemotionSteps         int
	ResetMasteryOnMistake bool
	// FreezeAfterFailures of 0 disables the protective hold.
	FreezeAfterFailures int
	FreezeDuration      time.Duration
	SessionGap          time.Duration
	Location            *time.Location
}

// IntervalFor returns the wait for a non-terminal stage, clamped to the ladder.
func (p SRSPolicy) IntervalFor(stage int) time.Duration {
	if len(p.StageIntervals) == 0 {
		return 0
	}
	if stage < 0 {
		stage = 0
	}
	if stage >= len(p.StageIntervals) {
		stage = len(p.StageIntervals) - 1
	}
	return p.StageIntervals[stage]
}

// AvailableCards is the language partition of reviewable cards.
type AvailableCards struct {
	Total                int
	Japanese             []*Card
	English              []*Card
	HasMultipleLanguages bool
}

// Streak holds consecutive study days and today's answer count.
type Streak struct {
	Streak         int
	DailyQuizCount int
}

// DayAttemptCount holds the attempt count for a specific date.
type DayAttemptCount struct {
	Date  time.Time
	Count int
}

// Change is a notification about a mutated resource of one user.
type Change struct {
	UserID   string       `json:"userId"`
	Resource ResourceType `json:"resource"`
	IDs      []string     `json:"ids,omitempty"`
	At       time.Time    `json:"at"`
}
