package study

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/heartmarshall/srs-review-backend/internal/adapter/postgres/wronganswer"
	"github.com/heartmarshall/srs-review-backend/internal/domain"
	"github.com/heartmarshall/srs-review-backend/internal/service/study/consolidate"
	"github.com/heartmarshall/srs-review-backend/internal/service/study/ladder"
	"github.com/heartmarshall/srs-review-backend/pkg/ctxutil"
)

// maxClockSkew is how far in the future of the clock source an answer may be stamped.
const maxClockSkew = time.Minute

// submission is one review attempt about one card, possibly made of
// several sub-question events.
type submission struct {
	key        string
	cardItemID string
	itemType   domain.ItemType
	events     []domain.AttemptEvent
	answeredAt *time.Time
	wrongData  json.RawMessage
}

// outcome folds the events with the AND rule.
func (sub submission) outcome() domain.Outcome {
	for _, e := range sub.events {
		if !e.IsCorrect {
			return domain.OutcomeIncorrect
		}
	}
	return domain.OutcomeCorrect
}

// SubmitAttempt applies one answer to a single-question item.
func (s *Service) SubmitAttempt(ctx context.Context, input SubmitAttemptInput) (*domain.Submission, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	cardItemID := input.ItemID
	passageID := input.PassageID
	if input.ItemType == domain.ItemTypeReading {
		if passageID == "" {
			passageID = consolidate.PassageKey(input.ItemID)
		}
		cardItemID = passageID
	}

	return s.submit(ctx, userID, submission{
		key:        input.IdempotencyKey,
		cardItemID: cardItemID,
		itemType:   input.ItemType,
		answeredAt: input.AnsweredAt,
		wrongData:  input.WrongData,
		events: []domain.AttemptEvent{{
			ItemID:        input.ItemID,
			ItemType:      input.ItemType,
			PassageID:     passageID,
			UserAnswer:    input.UserAnswer,
			CorrectAnswer: input.CorrectAnswer,
			IsCorrect:     domain.ResolveCorrect(input.IsCorrect, input.UserAnswer, input.CorrectAnswer),
		}},
	})
}

// SubmitPassage applies the answers to every question of a reading passage
// as one review attempt. The attempt is correct only if every answer is.
func (s *Service) SubmitPassage(ctx context.Context, input SubmitPassageInput) (*domain.Submission, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	events := make([]domain.AttemptEvent, len(input.Answers))
	for i, a := range input.Answers {
		sub := strings.TrimSpace(a.SubQuestionID)
		events[i] = domain.AttemptEvent{
			ItemID:        input.PassageID + "_" + sub,
			ItemType:      domain.ItemTypeReading,
			PassageID:     input.PassageID,
			SubQuestionID: sub,
			UserAnswer:    a.UserAnswer,
			CorrectAnswer: a.CorrectAnswer,
			IsCorrect:     domain.ResolveCorrect(a.IsCorrect, a.UserAnswer, a.CorrectAnswer),
		}
	}

	return s.submit(ctx, userID, submission{
		key:        input.IdempotencyKey,
		cardItemID: input.PassageID,
		itemType:   domain.ItemTypeReading,
		answeredAt: input.AnsweredAt,
		wrongData:  input.WrongData,
		events:     events,
	})
}

// submit runs the submission transaction, retrying it on lost
// compare-and-swap races and transient failures.
func (s *Service) submit(ctx context.Context, userID uuid.UUID, sub submission) (*domain.Submission, error) {
	var result *domain.Submission

	backoff := retry.WithMaxRetries(s.retry.MaxRetries, retry.NewExponential(s.retry.BaseDelay))
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		res, err := s.submitOnce(ctx, userID, sub)
		if err != nil {
			if domain.IsRetryable(err) {
				s.log.WarnContext(ctx, "submission retried",
					slog.String("user_id", userID.String()),
					slog.String("item_id", sub.cardItemID),
					slog.Int("attempt", attempt),
					slog.String("error", err.Error()),
				)
				return retry.RetryableError(err)
			}
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Duplicate {
		s.publish(userID, domain.ResourceCard, sub.cardItemID)
		s.publish(userID, domain.ResourceHistory, sub.cardItemID)
		if sub.outcome() == domain.OutcomeIncorrect {
			s.publish(userID, domain.ResourceWrongAnswer, sub.cardItemID)
			s.publish(userID, domain.ResourceFolder, sub.cardItemID)
		}
	}

	s.log.InfoContext(ctx, "attempt submitted",
		slog.String("user_id", userID.String()),
		slog.String("item_id", sub.cardItemID),
		slog.String("outcome", string(sub.outcome())),
		slog.Bool("duplicate", result.Duplicate),
		slog.String("label", string(result.Label)),
	)

	return result, nil
}

func (s *Service) submitOnce(ctx context.Context, userID uuid.UUID, sub submission) (*domain.Submission, error) {
	now := s.clock.Now()

	stamp := now
	if sub.answeredAt != nil {
		stamp = sub.answeredAt.UTC()
		if stamp.After(now.Add(maxClockSkew)) {
			return nil, domain.NewValidationError("answered_at", "is in the future")
		}
	}

	var result *domain.Submission
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		reserved, firstItemID, err := s.attempts.Reserve(ctx, userID, sub.key, sub.cardItemID, now)
		if err != nil {
			return fmt.Errorf("reserve idempotency key: %w", err)
		}
		if !reserved {
			if firstItemID != sub.cardItemID {
				return domain.NewValidationError("idempotency_key", "already used for another item")
			}
			dup, err := s.cards.GetByItem(ctx, userID, sub.cardItemID)
			if err != nil {
				return fmt.Errorf("load card of repeated submission: %w", err)
			}
			if err := s.attachFolders(ctx, []*domain.Card{dup}); err != nil {
				return fmt.Errorf("load folders: %w", err)
			}
			result = &domain.Submission{Card: dup, Label: ladder.Classify(dup, now), Duplicate: true, Events: []domain.AttemptEvent{}}
			return nil
		}

		current, created, err := s.loadOrNew(ctx, userID, sub, now)
		if err != nil {
			return err
		}
		// A server stamp can trail LastAttemptAt after the clock offset moved
		// back; it is clamped so the card's timeline stays monotonic.
		answeredAt := stamp
		if current.LastAttemptAt != nil && answeredAt.Before(*current.LastAttemptAt) {
			if sub.answeredAt != nil {
				return domain.NewValidationError("answered_at", "is older than the last applied attempt")
			}
			answeredAt = *current.LastAttemptAt
		}

		events := make([]domain.AttemptEvent, len(sub.events))
		for i, e := range sub.events {
			e.ID = uuid.New()
			e.UserID = userID
			e.AnsweredAt = answeredAt
			e.CreatedAt = now
			events[i] = e
		}
		if err := s.attempts.Append(ctx, events); err != nil {
			return fmt.Errorf("append events: %w", err)
		}

		outcome := sub.outcome()
		next, err := ladder.Transition(current, outcome, answeredAt, s.policy)
		if err != nil {
			return err
		}

		if created {
			if err := s.cards.Create(ctx, next); err != nil {
				return fmt.Errorf("create card: %w", err)
			}
		} else if err := s.cards.UpdateCAS(ctx, next); err != nil {
			return fmt.Errorf("update card: %w", err)
		}

		if outcome == domain.OutcomeIncorrect {
			if err := s.recordMistake(ctx, userID, next, sub, current.Stage, answeredAt); err != nil {
				return err
			}
		}

		if err := s.attachFolders(ctx, []*domain.Card{next}); err != nil {
			return fmt.Errorf("load folders: %w", err)
		}

		result = &domain.Submission{Card: next, Label: ladder.Classify(next, now), Events: events}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) loadOrNew(ctx context.Context, userID uuid.UUID, sub submission, now time.Time) (*domain.Card, bool, error) {
	c, err := s.cards.GetByItem(ctx, userID, sub.cardItemID)
	if err == nil {
		if c.ItemType != sub.itemType {
			return nil, false, domain.NewValidationError("item_type", "does not match the item's card")
		}
		return c, false, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewCard(userID, sub.cardItemID, sub.itemType, now), true, nil
	}
	return nil, false, fmt.Errorf("load card: %w", err)
}

// recordMistake files the card into the wrong-answer folder of its type and
// appends the mistake to the item's wrong-answer entry.
func (s *Service) recordMistake(ctx context.Context, userID uuid.UUID, c *domain.Card, sub submission, stageBefore int, at time.Time) error {
	folderID, err := s.folders.EnsureWrongAnswerFolder(ctx, userID, c.ItemType, at)
	if err != nil {
		return fmt.Errorf("ensure wrong-answer folder: %w", err)
	}
	if _, err := s.folders.AddCards(ctx, userID, folderID, []uuid.UUID{c.ID}, at); err != nil {
		return fmt.Errorf("file card into wrong-answer folder: %w", err)
	}

	cardID := c.ID
	if _, err := s.wrongs.Record(ctx, wronganswer.Mistake{
		UserID:    userID,
		ItemID:    c.ItemID,
		ItemType:  c.ItemType,
		CardID:    &cardID,
		WrongData: sub.wrongData,
		At:        at,
		Stage:     stageBefore,
	}); err != nil {
		return fmt.Errorf("record wrong answer: %w", err)
	}
	return nil
}
