// Package wronganswer implements review-note storage using PostgreSQL.
package wronganswer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/srs-review-backend/internal/adapter/postgres"
	"github.com/heartmarshall/srs-review-backend/internal/domain"
)

var columns = []string{
	"id", "user_id", "item_id", "item_type", "card_id", "wrong_data",
	"wrong_at", "total_wrong_attempts", "history", "created_at", "updated_at",
}

type entryRow struct {
	ID                 uuid.UUID  `db:"id"`
	UserID             uuid.UUID  `db:"user_id"`
	ItemID             string     `db:"item_id"`
	ItemType           string     `db:"item_type"`
	CardID             *uuid.UUID `db:"card_id"`
	WrongData          []byte     `db:"wrong_data"`
	WrongAt            time.Time  `db:"wrong_at"`
	TotalWrongAttempts int        `db:"total_wrong_attempts"`
	History            []byte     `db:"history"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

func (r entryRow) toDomain() (domain.WrongAnswerEntry, error) {
	e := domain.WrongAnswerEntry{
		ID:                 r.ID,
		UserID:             r.UserID,
		ItemID:             r.ItemID,
		ItemType:           domain.ItemType(r.ItemType),
		CardID:             r.CardID,
		WrongData:          json.RawMessage(r.WrongData),
		WrongAt:            r.WrongAt,
		TotalWrongAttempts: r.TotalWrongAttempts,
		History:            []domain.WrongAttempt{},
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
	if len(r.History) > 0 {
		if err := json.Unmarshal(r.History, &e.History); err != nil {
			return e, fmt.Errorf("decode history of %s: %w", r.ID, err)
		}
	}
	return e, nil
}

// Repo provides wrong-answer entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new wrong-answer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// Mistake is one mistake to record against an item.
type Mistake struct {
	UserID    uuid.UUID
	ItemID    string
	ItemType  domain.ItemType
	CardID    *uuid.UUID
	WrongData json.RawMessage
	At        time.Time
	Stage     int
}

// Record inserts the entry of an item on its first mistake, or appends the
// mistake to the existing entry's history. Empty wrongData keeps the stored
// payload. It returns the entry id.
func (r *Repo) Record(ctx context.Context, m Mistake) (uuid.UUID, error) {
	history, err := json.Marshal([]domain.WrongAttempt{{WrongAt: m.At, StageAtTime: m.Stage}})
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode history: %w", err)
	}
	data := string(m.WrongData)
	if data == "" {
		data = "{}"
	}

	query, args, err := postgres.Builder().
		Insert("wrong_answers").
		Columns(columns...).
		Values(
			uuid.New(), m.UserID, m.ItemID, string(m.ItemType), m.CardID, data,
			m.At, 1, string(history), m.At, m.At,
		).
		Suffix(`ON CONFLICT (user_id, item_id) DO UPDATE SET
			wrong_at = EXCLUDED.wrong_at,
			total_wrong_attempts = wrong_answers.total_wrong_attempts + 1,
			history = wrong_answers.history || EXCLUDED.history,
			wrong_data = CASE WHEN EXCLUDED.wrong_data = '{}'::jsonb THEN wrong_answers.wrong_data ELSE EXCLUDED.wrong_data END,
			card_id = COALESCE(EXCLUDED.card_id, wrong_answers.card_id),
			updated_at = EXCLUDED.updated_at
			RETURNING id`).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build record mistake query: %w", err)
	}

	var id uuid.UUID
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, postgres.MapError(err, "wrong_answer", m.ItemID)
	}
	return id, nil
}

// ListByType returns the entries of userID for itemType, latest mistake first.
func (r *Repo) ListByType(ctx context.Context, userID uuid.UUID, itemType domain.ItemType) ([]domain.WrongAnswerEntry, error) {
	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From("wrong_answers").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"item_type": string(itemType)}).
		OrderBy("wrong_at DESC", "item_id ASC"))
}

// ListByIDs returns the entries of userID with the given ids.
func (r *Repo) ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.WrongAnswerEntry, error) {
	if len(ids) == 0 {
		return []domain.WrongAnswerEntry{}, nil
	}
	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From("wrong_answers").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"id": ids}).
		OrderBy("wrong_at DESC", "item_id ASC"))
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]domain.WrongAnswerEntry, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list wrong answers query: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "wrong_answers", "list")
	}

	entries := make([]domain.WrongAnswerEntry, 0, len(rows))
	for _, row := range rows {
		e, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// CountByType returns totals per item type for userID. An entry is active
// while its card is linked and not mastered.
func (r *Repo) CountByType(ctx context.Context, userID uuid.UUID, itemType domain.ItemType) (domain.CategoryCount, error) {
	query, args, err := postgres.Builder().
		Select("count(*)", "count(*) FILTER (WHERE c.id IS NOT NULL AND NOT c.is_mastered)").
		From("wrong_answers w").
		LeftJoin("cards c ON c.id = w.card_id").
		Where(sq.Eq{"w.user_id": userID}).
		Where(sq.Eq{"w.item_type": string(itemType)}).
		ToSql()
	if err != nil {
		return domain.CategoryCount{}, fmt.Errorf("build count wrong answers query: %w", err)
	}

	var total, active int64
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&total, &active); err != nil {
		return domain.CategoryCount{}, postgres.MapError(err, "wrong_answers", userID)
	}
	return domain.CategoryCount{Type: itemType, Total: int(total), Active: int(active)}, nil
}

// DeleteByIDs removes the entries of userID with the given ids.
func (r *Repo) DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	return r.delete(ctx, userID, sq.Eq{"id": ids}, len(ids))
}

// DeleteByCardIDs removes the entries of userID linked to the given cards.
func (r *Repo) DeleteByCardIDs(ctx context.Context, userID uuid.UUID, cardIDs []uuid.UUID) (int64, error) {
	return r.delete(ctx, userID, sq.Eq{"card_id": cardIDs}, len(cardIDs))
}

func (r *Repo) delete(ctx context.Context, userID uuid.UUID, pred sq.Eq, n int) (int64, error) {
	if n == 0 {
		return 0, nil
	}
	query, args, err := postgres.Builder().
		Delete("wrong_answers").
		Where(sq.Eq{"user_id": userID}).
		Where(pred).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete wrong answers query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "wrong_answers", userID)
	}
	return tag.RowsAffected(), nil
}

