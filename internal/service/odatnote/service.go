// Package odatnote implements the wrong-answer notebook: per-category
// counts, the note list with card state, recording mistakes, bulk delete and
// spreadsheet export.
package odatnote

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
	"github.com/heartmarshall/srs-review-backend/internal/service/study"
	"github.com/heartmarshall/srs-review-backend/internal/service/study/consolidate"
	"github.com/heartmarshall/srs-review-backend/internal/service/study/ladder"
	"github.com/heartmarshall/srs-review-backend/pkg/ctxutil"
)

type noteRepo interface {
	ListByType(ctx context.Context, userID uuid.UUID, itemType domain.ItemType) ([]domain.WrongAnswerEntry, error)
	ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.WrongAnswerEntry, error)
	CountByType(ctx context.Context, userID uuid.UUID, itemType domain.ItemType) (domain.CategoryCount, error)
	DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)
}

type cardRepo interface {
	ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*domain.Card, error)
}

type attemptRepo interface {
	ListForKeys(ctx context.Context, userID uuid.UUID, keys []string) ([]domain.AttemptEvent, error)
}

type folderRepo interface {
	RemoveCards(ctx context.Context, cardIDs []uuid.UUID, wrongAnswerOnly bool) (int64, error)
	RefsByCardIDs(ctx context.Context, cardIDs []uuid.UUID) (map[uuid.UUID][]domain.FolderRef, error)
}

type submitter interface {
	SubmitAttempt(ctx context.Context, input study.SubmitAttemptInput) (*domain.Submission, error)
}

type notifier interface {
	Publish(c domain.Change)
}

type clockSource interface {
	Now() time.Time
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the wrong-answer notebook.
type Service struct {
	notes    noteRepo
	cards    cardRepo
	attempts attemptRepo
	folders  folderRepo
	submit   submitter
	bus      notifier
	clock    clockSource
	tx       txManager
	log      *slog.Logger
	schemas  schemas
	gap      time.Duration
}

// NewService creates a new notebook service. It fails only if the embedded
// wrongData schemas do not compile.
func NewService(
	log *slog.Logger,
	notes noteRepo,
	cards cardRepo,
	attempts attemptRepo,
	folders folderRepo,
	submit submitter,
	bus notifier,
	clk clockSource,
	tx txManager,
	sessionGap time.Duration,
) (*Service, error) {
	sch, err := compileSchemas()
	if err != nil {
		return nil, err
	}
	return &Service{
		notes:    notes,
		cards:    cards,
		attempts: attempts,
		folders:  folders,
		submit:   submit,
		bus:      bus,
		clock:    clk,
		tx:       tx,
		log:      log.With("service", "odatnote"),
		schemas:  sch,
		gap:      sessionGap,
	}, nil
}

// Categories returns the total and active note counts of every item type.
func (s *Service) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	counts := make([]domain.CategoryCount, len(domain.ItemTypes))
	g, gctx := errgroup.WithContext(ctx)
	for i, t := range domain.ItemTypes {
		g.Go(func() error {
			c, err := s.notes.CountByType(gctx, userID, t)
			if err != nil {
				return fmt.Errorf("count %s notes: %w", t, err)
			}
			counts[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}

// List returns the notes of one item type, each with its card, review
// window and consolidated stats.
func (s *Service) List(ctx context.Context, itemType domain.ItemType) ([]domain.WrongAnswerEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if !itemType.IsValid() {
		return nil, domain.NewValidationError("type", "must be vocab, grammar, reading or listening")
	}

	entries, err := s.notes.ListByType(ctx, userID, itemType)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if err := s.enrich(ctx, userID, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Service) enrich(ctx context.Context, userID uuid.UUID, entries []domain.WrongAnswerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	var cardIDs []uuid.UUID
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.CardID != nil {
			cardIDs = append(cardIDs, *e.CardID)
		}
		keys = append(keys, e.ItemID)
	}

	var (
		cards  []*domain.Card
		events []domain.AttemptEvent
		refs   map[uuid.UUID][]domain.FolderRef
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if len(cardIDs) == 0 {
			return nil
		}
		cards, err = s.cards.ListByIDs(gctx, userID, cardIDs)
		if err != nil {
			return fmt.Errorf("load cards: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		refs, err = s.folders.RefsByCardIDs(gctx, cardIDs)
		if err != nil {
			return fmt.Errorf("load folders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		events, err = s.attempts.ListForKeys(gctx, userID, keys)
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	byID := make(map[uuid.UUID]*domain.Card, len(cards))
	for _, c := range cards {
		c.Folders = refs[c.ID]
		if c.Folders == nil {
			c.Folders = []domain.FolderRef{}
		}
		byID[c.ID] = c
	}
	stats := consolidate.Index(consolidate.ByItem(events, s.gap))

	now := s.clock.Now()
	for i := range entries {
		e := &entries[i]
		if e.CardID != nil {
			if c, ok := byID[*e.CardID]; ok {
				e.Card = c
				e.ReviewWindowStart, e.ReviewWindowEnd = c.ReviewWindow()
				e.CanReview = ladder.IsReviewable(c, now)
			}
		}
		if rec, ok := stats[consolidate.RecordKey{Type: e.ItemType, Key: e.ItemID}]; ok {
			e.Stats = &rec
		}
	}
	return nil
}

// Create records a mistake on an item through the regular submission path,
// so the card is scheduled, filed into the wrong-answer folder and the note
// entry is appended to.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Submission, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.schemas.validate(input.Type, input.WrongData); err != nil {
		return nil, err
	}

	wrong := false
	sub, err := s.submit.SubmitAttempt(ctx, study.SubmitAttemptInput{
		ItemID:         input.ItemID,
		ItemType:       input.Type,
		PassageID:      input.PassageID,
		UserAnswer:     input.UserAnswer,
		CorrectAnswer:  input.CorrectAnswer,
		IsCorrect:      &wrong,
		AnsweredAt:     input.AnsweredAt,
		IdempotencyKey: input.IdempotencyKey,
		WrongData:      input.WrongData,
	})
	if err != nil {
		return nil, fmt.Errorf("record mistake: %w", err)
	}
	return sub, nil
}

// DeleteMultiple removes notes of the caller in one transaction and detaches
// their cards from the wrong-answer folders. Either every note is removed or
// none is.
func (s *Service) DeleteMultiple(ctx context.Context, input DeleteInput) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return 0, err
	}

	ids := uniqueIDs(input.IDs)
	itemIDs := make([]string, 0, len(ids))
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		entries, err := s.notes.ListByIDs(ctx, userID, ids)
		if err != nil {
			return fmt.Errorf("load notes: %w", err)
		}
		if len(entries) != len(ids) {
			return fmt.Errorf("wrong answers: %w", domain.ErrNotFound)
		}

		var cardIDs []uuid.UUID
		for _, e := range entries {
			itemIDs = append(itemIDs, e.ItemID)
			if e.CardID != nil {
				cardIDs = append(cardIDs, *e.CardID)
			}
		}

		if _, err := s.folders.RemoveCards(ctx, cardIDs, true); err != nil {
			return fmt.Errorf("detach wrong-answer folders: %w", err)
		}
		if _, err := s.notes.DeleteByIDs(ctx, userID, ids); err != nil {
			return fmt.Errorf("delete notes: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	at := s.clock.Now()
	s.bus.Publish(domain.Change{UserID: userID.String(), Resource: domain.ResourceWrongAnswer, IDs: itemIDs, At: at})
	s.bus.Publish(domain.Change{UserID: userID.String(), Resource: domain.ResourceFolder, At: at})

	s.log.InfoContext(ctx, "wrong answers deleted",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(ids)),
	)
	return len(ids), nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
