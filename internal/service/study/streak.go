package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
	"github.com/heartmarshall/srs-review-backend/pkg/ctxutil"
)

// streakLookback bounds how many days of activity are scanned for a streak.
const streakLookback = 365

// GetStreak returns the consecutive study days of the caller and the number
// of answers given today, both in the configured timezone.
func (s *Service) GetStreak(ctx context.Context) (domain.Streak, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Streak{}, domain.ErrUnauthorized
	}

	now := s.clock.Now()
	tz := s.policy.Location
	dayStart := DayStart(now, tz)
	// Attempts stamped past today exist once the clock offset moves back.
	dayEnd := dayStart.AddDate(0, 0, 1)

	var (
		days  []domain.DayAttemptCount
		today int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		days, err = s.attempts.DailyCounts(gctx, userID, tz.String(), dayStart.AddDate(0, 0, -streakLookback), dayEnd)
		if err != nil {
			return fmt.Errorf("daily counts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		today, err = s.attempts.CountBetween(gctx, userID, dayStart, dayEnd)
		if err != nil {
			return fmt.Errorf("count today: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.Streak{}, err
	}

	nowInTz := now.In(tz)
	streak := calculateStreak(days, time.Date(nowInTz.Year(), nowInTz.Month(), nowInTz.Day(), 0, 0, 0, 0, time.UTC))

	s.log.InfoContext(ctx, "streak loaded",
		slog.String("user_id", userID.String()),
		slog.Int("streak", streak),
		slog.Int("daily_quiz_count", today),
	)

	return domain.Streak{Streak: streak, DailyQuizCount: today}, nil
}

// calculateStreak counts consecutive days with answers ending today, or
// yesterday when nothing was answered yet today. days must be sorted
// newest first.
func calculateStreak(days []domain.DayAttemptCount, today time.Time) int {
	if len(days) == 0 {
		return 0
	}

	sameDay := func(a, b time.Time) bool {
		return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
	}

	expected := today
	if !sameDay(days[0].Date, today) {
		expected = today.AddDate(0, 0, -1)
	}

	streak := 0
	for _, d := range days {
		if d.Count == 0 {
			continue
		}
		if !sameDay(d.Date, expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}
