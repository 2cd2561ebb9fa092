package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/heartmarshall/srs-review-backend/internal/config"
)

type sweepStore interface {
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
	ReleaseFrozen(ctx context.Context, now time.Time) (int64, error)
}

type nowFunc interface {
	Now() time.Time
}

type clockRefresher interface {
	Refresh(ctx context.Context) error
}

// SweepResult counts the cards touched by one sweep.
type SweepResult struct {
	MarkedOverdue int64
	Released      int64
}

// Sweeper flags cards past their overdue deadline and lifts expired freezes,
// both relative to the clock source.
type Sweeper struct {
	cards sweepStore
	clock nowFunc
	log   *slog.Logger
}

// NewSweeper creates a Sweeper.
func NewSweeper(log *slog.Logger, cards sweepStore, clk nowFunc) *Sweeper {
	return &Sweeper{cards: cards, clock: clk, log: log.With("job", "sweep")}
}

// Run performs one sweep.
func (s *Sweeper) Run(ctx context.Context) (SweepResult, error) {
	now := s.clock.Now()

	var res SweepResult
	var err error
	if res.MarkedOverdue, err = s.cards.MarkOverdue(ctx, now); err != nil {
		return res, fmt.Errorf("mark overdue: %w", err)
	}
	if res.Released, err = s.cards.ReleaseFrozen(ctx, now); err != nil {
		return res, fmt.Errorf("release frozen: %w", err)
	}

	if res.MarkedOverdue > 0 || res.Released > 0 {
		s.log.InfoContext(ctx, "sweep completed",
			slog.Int64("marked_overdue", res.MarkedOverdue),
			slog.Int64("released", res.Released),
			slog.Time("now", now),
		)
	}
	return res, nil
}

// jobTimeout bounds a single job run.
const jobTimeout = time.Minute

// StartScheduler registers the periodic jobs and starts them in the
// background. Callers stop the returned scheduler on shutdown.
func StartScheduler(ctx context.Context, log *slog.Logger, cfg config.SchedulerConfig, sweeper *Sweeper, clk clockRefresher) (*gocron.Scheduler, error) {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	if _, err := s.Every(cfg.SweepInterval).Do(func() {
		runCtx, cancel := context.WithTimeout(ctx, jobTimeout)
		defer cancel()
		if _, err := sweeper.Run(runCtx); err != nil {
			log.ErrorContext(runCtx, "sweep failed", slog.String("error", err.Error()))
		}
	}); err != nil {
		return nil, fmt.Errorf("schedule sweep: %w", err)
	}

	if _, err := s.Every(cfg.ClockRefreshInterval).Do(func() {
		runCtx, cancel := context.WithTimeout(ctx, jobTimeout)
		defer cancel()
		if err := clk.Refresh(runCtx); err != nil {
			log.ErrorContext(runCtx, "clock refresh failed", slog.String("error", err.Error()))
		}
	}); err != nil {
		return nil, fmt.Errorf("schedule clock refresh: %w", err)
	}

	s.StartAsync()
	log.Info("scheduler started",
		slog.Duration("sweep_interval", cfg.SweepInterval),
		slog.Duration("clock_refresh_interval", cfg.ClockRefreshInterval),
	)
	return s, nil
}
