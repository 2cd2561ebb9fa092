// Package card implements the Card store using PostgreSQL.
package card

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/srs-review-backend/internal/adapter/postgres"
	"github.com/heartmarshall/srs-review-backend/internal/domain"
)

// Columns is the column list every card query selects, in scan order.
var Columns = []string{
	"id", "user_id", "item_id", "item_type", "stage",
	"next_review_at", "waiting_until", "overdue_deadline", "is_overdue", "frozen_until",
	"is_from_wrong_answer", "is_mastered", "master_cycles", "mastered_at",
	"correct_total", "wrong_total", "last_attempt_at", "last_wrong_at", "daily_wrong_count",
	"version", "created_at", "updated_at",
}

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new card repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

func selectCards() sq.SelectBuilder {
	return postgres.Builder().Select(Columns...).From("cards")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByItem returns the card of userID for itemID.
func (r *Repo) GetByItem(ctx context.Context, userID uuid.UUID, itemID string) (*domain.Card, error) {
	query, args, err := selectCards().
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"item_id": itemID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get card query: %w", err)
	}

	c, err := scanCard(r.q(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "card", itemID)
	}
	return c, nil
}

// GetByID returns a card by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	query, args, err := selectCards().
		Where(sq.Eq{"id": cardID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get card query: %w", err)
	}

	c, err := scanCard(r.q(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}
	return c, nil
}

// ListReviewCandidates returns the cards of userID whose timers allow review
// at now. Callers classify the result for the exact label.
func (r *Repo) ListReviewCandidates(ctx context.Context, userID uuid.UUID, now time.Time) ([]*domain.Card, error) {
	return r.list(ctx, selectCards().
		Where(sq.Eq{"user_id": userID}).
		Where("NOT is_mastered").
		Where("(frozen_until IS NULL OR frozen_until <= ?)", now).
		Where("(is_overdue OR COALESCE(waiting_until, next_review_at) <= ?)", now).
		OrderBy("overdue_deadline ASC NULLS LAST", "item_id ASC"))
}

// ListMastered returns the mastered cards of userID, most recent first.
func (r *Repo) ListMastered(ctx context.Context, userID uuid.UUID) ([]*domain.Card, error) {
	return r.list(ctx, selectCards().
		Where(sq.Eq{"user_id": userID}).
		Where("is_mastered").
		OrderBy("mastered_at DESC NULLS LAST", "item_id ASC"))
}

// ListByItemIDs returns the cards of userID for the given items.
func (r *Repo) ListByItemIDs(ctx context.Context, userID uuid.UUID, itemIDs []string) ([]*domain.Card, error) {
	if len(itemIDs) == 0 {
		return []*domain.Card{}, nil
	}
	return r.list(ctx, selectCards().
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"item_id": itemIDs}).
		OrderBy("item_id ASC"))
}

// ListByIDs returns the cards of userID with the given ids.
func (r *Repo) ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*domain.Card, error) {
	if len(ids) == 0 {
		return []*domain.Card{}, nil
	}
	return r.list(ctx, selectCards().
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"id": ids}).
		OrderBy("item_id ASC"))
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]*domain.Card, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cards query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "cards", "list")
	}
	defer rows.Close()

	cards := []*domain.Card{}
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "cards", "list")
	}

	return cards, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new card at version 1. A concurrent insert of the same
// (user, item) yields domain.ErrConflict so the caller can reload.
// An unknown item yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, c *domain.Card) error {
	c.Version = 1
	query, args, err := postgres.Builder().
		Insert("cards").
		Columns(Columns...).
		Values(
			c.ID, c.UserID, c.ItemID, string(c.ItemType), c.Stage,
			c.NextReviewAt, c.WaitingUntil, c.OverdueDeadline, c.IsOverdue, c.FrozenUntil,
			c.IsFromWrongAnswer, c.IsMastered, c.MasterCycles, c.MasteredAt,
			c.CorrectTotal, c.WrongTotal, c.LastAttemptAt, c.LastWrongAt, c.DailyWrongCount,
			c.Version, c.CreatedAt, c.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert card query: %w", err)
	}

	if _, err := r.q(ctx).Exec(ctx, query, args...); err != nil {
		mapped := postgres.MapError(err, "card", c.ItemID)
		if errors.Is(mapped, domain.ErrAlreadyExists) {
			return fmt.Errorf("card %s: %w", c.ItemID, domain.ErrConflict)
		}
		return mapped
	}
	return nil
}

// UpdateCAS writes the review state of c only if the stored version still
// equals c.Version. On success c.Version holds the new version; a lost race
// yields domain.ErrConflict.
func (r *Repo) UpdateCAS(ctx context.Context, c *domain.Card) error {
	query, args, err := postgres.Builder().
		Update("cards").
		Set("stage", c.Stage).
		Set("next_review_at", c.NextReviewAt).
		Set("waiting_until", c.WaitingUntil).
		Set("overdue_deadline", c.OverdueDeadline).
		Set("is_overdue", c.IsOverdue).
		Set("frozen_until", c.FrozenUntil).
		Set("is_from_wrong_answer", c.IsFromWrongAnswer).
		Set("is_mastered", c.IsMastered).
		Set("master_cycles", c.MasterCycles).
		Set("mastered_at", c.MasteredAt).
		Set("correct_total", c.CorrectTotal).
		Set("wrong_total", c.WrongTotal).
		Set("last_attempt_at", c.LastAttemptAt).
		Set("last_wrong_at", c.LastWrongAt).
		Set("daily_wrong_count", c.DailyWrongCount).
		Set("updated_at", c.UpdatedAt).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": c.ID}).
		Where(sq.Eq{"version": c.Version}).
		Suffix("RETURNING version").
		ToSql()
	if err != nil {
		return fmt.Errorf("build update card query: %w", err)
	}

	var version int
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&version); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("card %s version %d: %w", c.ID, c.Version, domain.ErrConflict)
		}
		return postgres.MapError(err, "card", c.ID)
	}

	c.Version = version
	return nil
}

// DeleteByIDs removes the cards of userID with the given ids and returns
// the number of rows removed.
func (r *Repo) DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := postgres.Builder().
		Delete("cards").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete cards query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "cards", userID)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Maintenance
// ---------------------------------------------------------------------------

// MarkOverdue flags every active card whose overdue deadline has passed.
func (r *Repo) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := postgres.Builder().
		Update("cards").
		Set("is_overdue", true).
		Set("updated_at", now).
		Set("version", sq.Expr("version + 1")).
		Where("NOT is_overdue").
		Where("NOT is_mastered").
		Where(sq.LtOrEq{"overdue_deadline": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build mark overdue query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "cards", "mark_overdue")
	}
	return tag.RowsAffected(), nil
}

// ReleaseFrozen clears holds that ended at or before now.
func (r *Repo) ReleaseFrozen(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := postgres.Builder().
		Update("cards").
		Set("frozen_until", nil).
		Set("updated_at", now).
		Set("version", sq.Expr("version + 1")).
		Where(sq.LtOrEq{"frozen_until": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build release frozen query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "cards", "release_frozen")
	}
	return tag.RowsAffected(), nil
}

// ClearAllFrozen lifts every hold regardless of its end and resets the
// same-day failure counters of the released cards.
func (r *Repo) ClearAllFrozen(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := postgres.Builder().
		Update("cards").
		Set("frozen_until", nil).
		Set("daily_wrong_count", 0).
		Set("updated_at", now).
		Set("version", sq.Expr("version + 1")).
		Where(sq.NotEq{"frozen_until": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build clear frozen query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "cards", "clear_frozen")
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanCard(row pgx.Row) (*domain.Card, error) {
	var (
		c        domain.Card
		itemType string
	)
	err := row.Scan(
		&c.ID, &c.UserID, &c.ItemID, &itemType, &c.Stage,
		&c.NextReviewAt, &c.WaitingUntil, &c.OverdueDeadline, &c.IsOverdue, &c.FrozenUntil,
		&c.IsFromWrongAnswer, &c.IsMastered, &c.MasterCycles, &c.MasteredAt,
		&c.CorrectTotal, &c.WrongTotal, &c.LastAttemptAt, &c.LastWrongAt, &c.DailyWrongCount,
		&c.Version, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.ItemType = domain.ItemType(itemType)
	return &c, nil
}
