// Package timemachine lets an admin shift the clock source by whole days to
// rehearse schedules, and clear protective freezes in bulk.
package timemachine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
	"github.com/heartmarshall/srs-review-backend/pkg/ctxutil"
)

// MaxOffsetDays bounds the offset in either direction.
const MaxOffsetDays = 3650

type offsetStore interface {
	Get(ctx context.Context) (int, error)
	Set(ctx context.Context, days int, now time.Time) error
}

type freezeClearer interface {
	ClearAllFrozen(ctx context.Context, now time.Time) (int64, error)
}

// clockSource is the adjustable clock shared by every service.
type clockSource interface {
	Now() time.Time
	Offset() int
	SetOffset(days int)
}

// State is the current offset with the shifted and real time.
type State struct {
	DayOffset int
	Now       time.Time
	RealNow   time.Time
}

// Service implements the admin time machine.
type Service struct {
	store   offsetStore
	cards   freezeClearer
	clock   clockSource
	realNow func() time.Time
	log     *slog.Logger
}

// NewService creates a new time-machine service.
func NewService(log *slog.Logger, store offsetStore, cards freezeClearer, clk clockSource) *Service {
	return &Service{
		store:   store,
		cards:   cards,
		clock:   clk,
		realNow: time.Now,
		log:     log.With("service", "timemachine"),
	}
}

func requireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// Get returns the current offset.
func (s *Service) Get(ctx context.Context) (State, error) {
	if err := requireAdmin(ctx); err != nil {
		return State{}, err
	}
	return s.state(), nil
}

// Set persists a new day offset and applies it to the clock source.
func (s *Service) Set(ctx context.Context, days int) (State, error) {
	if err := requireAdmin(ctx); err != nil {
		return State{}, err
	}
	if days < -MaxOffsetDays || days > MaxOffsetDays {
		return State{}, domain.NewValidationError("day_offset", fmt.Sprintf("must be within ±%d days", MaxOffsetDays))
	}
	return s.apply(ctx, days)
}

// Reset returns the clock source to real time.
func (s *Service) Reset(ctx context.Context) (State, error) {
	if err := requireAdmin(ctx); err != nil {
		return State{}, err
	}
	return s.apply(ctx, 0)
}

// EmergencyFix clears every protective freeze and returns how many cards
// were released.
func (s *Service) EmergencyFix(ctx context.Context) (int64, error) {
	if err := requireAdmin(ctx); err != nil {
		return 0, err
	}

	n, err := s.cards.ClearAllFrozen(ctx, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("clear frozen cards: %w", err)
	}

	s.log.WarnContext(ctx, "frozen cards cleared", slog.Int64("count", n))
	return n, nil
}

// Refresh loads the persisted offset into the clock source. It runs without a
// session from the periodic job so every instance converges.
func (s *Service) Refresh(ctx context.Context) error {
	days, err := s.store.Get(ctx)
	if err != nil {
		return fmt.Errorf("load clock offset: %w", err)
	}
	if prev := s.clock.Offset(); prev != days {
		s.clock.SetOffset(days)
		s.log.InfoContext(ctx, "clock offset refreshed",
			slog.Int("from", prev),
			slog.Int("to", days),
		)
	}
	return nil
}

func (s *Service) apply(ctx context.Context, days int) (State, error) {
	if err := s.store.Set(ctx, days, s.realNow().UTC()); err != nil {
		return State{}, fmt.Errorf("save clock offset: %w", err)
	}
	prev := s.clock.Offset()
	s.clock.SetOffset(days)

	session, _ := ctxutil.SessionFromCtx(ctx)
	s.log.WarnContext(ctx, "clock offset changed",
		slog.String("user_id", session.UserID.String()),
		slog.Int("from", prev),
		slog.Int("to", days),
	)
	return s.state(), nil
}

func (s *Service) state() State {
	return State{
		DayOffset: s.clock.Offset(),
		Now:       s.clock.Now(),
		RealNow:   s.realNow().UTC(),
	}
}
