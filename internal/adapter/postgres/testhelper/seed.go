//go:build integration

package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedItem inserts a learning item with a unique id and returns it.
func SeedItem(t *testing.T, pool *pgxpool.Pool, itemType domain.ItemType, lang domain.Language) domain.Item {
	t.Helper()

	it := domain.Item{
		ID:        string(itemType) + "-" + uniqueSuffix(),
		Type:      itemType,
		Language:  lang,
		Title:     "item " + uniqueSuffix(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO items (id, item_type, language, title, created_at) VALUES ($1, $2, $3, $4, $5)`,
		it.ID, string(it.Type), string(it.Language), it.Title, it.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem: %v", err)
	}
	return it
}

// SeedCard inserts a fresh stage-0 card of userID for item and returns it.
func SeedCard(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, it domain.Item) *domain.Card {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.NewCard(userID, it.ID, it.Type, now)
	c.Version = 1

	_, err := pool.Exec(context.Background(),
		`INSERT INTO cards (id, user_id, item_id, item_type, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.UserID, c.ItemID, string(c.ItemType), c.Version, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCard: %v", err)
	}
	return c
}
