// Package item implements read access to learning items and their language tags.
package item

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/srs-review-backend/internal/adapter/postgres"
	"github.com/heartmarshall/srs-review-backend/internal/domain"
)

type itemRow struct {
	ID        string    `db:"id"`
	ItemType  string    `db:"item_type"`
	Language  string    `db:"language"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at"`
}

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new item repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// GetByIDs returns the items with the given ids. Unknown ids are omitted.
func (r *Repo) GetByIDs(ctx context.Context, ids []string) ([]domain.Item, error) {
	if len(ids) == 0 {
		return []domain.Item{}, nil
	}

	query, args, err := postgres.Builder().
		Select("id", "item_type", "language", "title", "created_at").
		From("items").
		Where(sq.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get items query: %w", err)
	}

	var rows []itemRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "items", "batch")
	}

	items := make([]domain.Item, len(rows))
	for i, row := range rows {
		items[i] = domain.Item{
			ID:        row.ID,
			Type:      domain.ItemType(row.ItemType),
			Language:  domain.Language(row.Language),
			Title:     row.Title,
			CreatedAt: row.CreatedAt,
		}
	}
	return items, nil
}

// Create inserts an item, replacing language and title of an existing id.
func (r *Repo) Create(ctx context.Context, it domain.Item) error {
	query, args, err := postgres.Builder().
		Insert("items").
		Columns("id", "item_type", "language", "title", "created_at").
		Values(it.ID, string(it.Type), string(it.Language), it.Title, it.CreatedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET language = EXCLUDED.language, title = EXCLUDED.title").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert item query: %w", err)
	}

	if _, err := r.q(ctx).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "item", it.ID)
	}
	return nil
}
