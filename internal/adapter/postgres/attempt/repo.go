// Package attempt implements the append-only attempt event log.
package attempt

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/srs-review-backend/internal/adapter/postgres"
	"github.com/heartmarshall/srs-review-backend/internal/domain"
)

var eventColumns = []string{
	"id", "user_id", "item_id", "item_type", "passage_id", "sub_question_id",
	"user_answer", "correct_answer", "is_correct", "answered_at", "created_at",
}

type eventRow struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	ItemID        string    `db:"item_id"`
	ItemType      string    `db:"item_type"`
	PassageID     string    `db:"passage_id"`
	SubQuestionID string    `db:"sub_question_id"`
	UserAnswer    string    `db:"user_answer"`
	CorrectAnswer string    `db:"correct_answer"`
	IsCorrect     bool      `db:"is_correct"`
	AnsweredAt    time.Time `db:"answered_at"`
	CreatedAt     time.Time `db:"created_at"`
}

func (r eventRow) toDomain() domain.AttemptEvent {
	return domain.AttemptEvent{
		ID:            r.ID,
		UserID:        r.UserID,
		ItemID:        r.ItemID,
		ItemType:      domain.ItemType(r.ItemType),
		PassageID:     r.PassageID,
		SubQuestionID: r.SubQuestionID,
		UserAnswer:    r.UserAnswer,
		CorrectAnswer: r.CorrectAnswer,
		IsCorrect:     r.IsCorrect,
		AnsweredAt:    r.AnsweredAt,
		CreatedAt:     r.CreatedAt,
	}
}

// Repo provides attempt event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new attempt repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// Reserve claims an idempotency key for a submission about itemID.
// When the key was already used it returns reserved=false and the item id
// recorded with the first use.
func (r *Repo) Reserve(ctx context.Context, userID uuid.UUID, key, itemID string, now time.Time) (reserved bool, firstItemID string, err error) {
	query, args, err := postgres.Builder().
		Insert("attempt_submissions").
		Columns("user_id", "idempotency_key", "item_id", "created_at").
		Values(userID, key, itemID, now).
		Suffix("ON CONFLICT (user_id, idempotency_key) DO NOTHING").
		ToSql()
	if err != nil {
		return false, "", fmt.Errorf("build reserve query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return false, "", postgres.MapError(err, "submission", key)
	}
	if tag.RowsAffected() == 1 {
		return true, itemID, nil
	}

	query, args, err = postgres.Builder().
		Select("item_id").
		From("attempt_submissions").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"idempotency_key": key}).
		ToSql()
	if err != nil {
		return false, "", fmt.Errorf("build submission lookup query: %w", err)
	}

	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&firstItemID); err != nil {
		return false, "", postgres.MapError(err, "submission", key)
	}
	return false, firstItemID, nil
}

// Append writes events to the log in one statement.
func (r *Repo) Append(ctx context.Context, events []domain.AttemptEvent) error {
	if len(events) == 0 {
		return nil
	}

	b := postgres.Builder().Insert("attempt_events").Columns(eventColumns...)
	for _, e := range events {
		b = b.Values(
			e.ID, e.UserID, e.ItemID, string(e.ItemType), e.PassageID, e.SubQuestionID,
			e.UserAnswer, e.CorrectAnswer, e.IsCorrect, e.AnsweredAt, e.CreatedAt,
		)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build append events query: %w", err)
	}

	if _, err := r.q(ctx).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "attempt_events", events[0].ItemID)
	}
	return nil
}

// ListByUser returns the events of userID in answer order, optionally
// restricted to one item type.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, itemType *domain.ItemType) ([]domain.AttemptEvent, error) {
	b := postgres.Builder().
		Select(eventColumns...).
		From("attempt_events").
		Where(sq.Eq{"user_id": userID})
	if itemType != nil {
		b = b.Where(sq.Eq{"item_type": string(*itemType)})
	}
	return r.selectEvents(ctx, b.OrderBy("answered_at ASC", "created_at ASC"))
}

// ListForKeys returns the events of userID whose item id or passage id is
// one of keys, in answer order.
func (r *Repo) ListForKeys(ctx context.Context, userID uuid.UUID, keys []string) ([]domain.AttemptEvent, error) {
	if len(keys) == 0 {
		return []domain.AttemptEvent{}, nil
	}
	return r.selectEvents(ctx, postgres.Builder().
		Select(eventColumns...).
		From("attempt_events").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Or{sq.Eq{"item_id": keys}, sq.Eq{"passage_id": keys}}).
		OrderBy("answered_at ASC", "created_at ASC"))
}

func (r *Repo) selectEvents(ctx context.Context, b sq.SelectBuilder) ([]domain.AttemptEvent, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list events query: %w", err)
	}

	var rows []eventRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "attempt_events", "list")
	}

	events := make([]domain.AttemptEvent, len(rows))
	for i, row := range rows {
		events[i] = row.toDomain()
	}
	return events, nil
}

// DailyCounts returns the number of events per calendar day in tz answered in
// [since, until), most recent day first.
func (r *Repo) DailyCounts(ctx context.Context, userID uuid.UUID, tz string, since, until time.Time) ([]domain.DayAttemptCount, error) {
	query, args, err := postgres.Builder().
		Select().
		Column(sq.Expr("(answered_at AT TIME ZONE ?)::date AS day", tz)).
		Column("count(*) AS count").
		From("attempt_events").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"answered_at": since}).
		Where(sq.Lt{"answered_at": until}).
		GroupBy("day").
		OrderBy("day DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build daily counts query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "attempt_events", userID)
	}
	defer rows.Close()

	days := []domain.DayAttemptCount{}
	for rows.Next() {
		var (
			day   time.Time
			count int64
		)
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("scan daily count: %w", err)
		}
		days = append(days, domain.DayAttemptCount{Date: day, Count: int(count)})
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "attempt_events", userID)
	}
	return days, nil
}

// CountBetween returns the number of events of userID answered in [since, until).
func (r *Repo) CountBetween(ctx context.Context, userID uuid.UUID, since, until time.Time) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From("attempt_events").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"answered_at": since}).
		Where(sq.Lt{"answered_at": until}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int64
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "attempt_events", userID)
	}
	return int(n), nil
}

// DeleteForKeys removes the events of userID about the given item keys.
func (r *Repo) DeleteForKeys(ctx context.Context, userID uuid.UUID, keys []string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	query, args, err := postgres.Builder().
		Delete("attempt_events").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Or{sq.Eq{"item_id": keys}, sq.Eq{"passage_id": keys}}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete events query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "attempt_events", userID)
	}
	return tag.RowsAffected(), nil
}
