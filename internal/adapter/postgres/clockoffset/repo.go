// Package clockoffset stores the time-machine day offset shared by all instances.
package clockoffset

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/srs-review-backend/internal/adapter/postgres"
)

// Repo reads and writes the single time_machine row.
type Repo struct {
	db postgres.Querier
}

// New creates a new clock offset repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// Get returns the stored day offset.
func (r *Repo) Get(ctx context.Context) (int, error) {
	query, args, err := postgres.Builder().
		Select("day_offset").
		From("time_machine").
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build get offset query: %w", err)
	}

	var days int
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&days); err != nil {
		return 0, postgres.MapError(err, "time_machine", 1)
	}
	return days, nil
}

// Set stores the day offset.
func (r *Repo) Set(ctx context.Context, days int, now time.Time) error {
	query, args, err := postgres.Builder().
		Insert("time_machine").
		Columns("id", "day_offset", "updated_at").
		Values(1, days, now).
		Suffix("ON CONFLICT (id) DO UPDATE SET day_offset = EXCLUDED.day_offset, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build set offset query: %w", err)
	}

	if _, err := r.q(ctx).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "time_machine", 1)
	}
	return nil
}
