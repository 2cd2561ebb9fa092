// Package dataloader provides per-request DataLoaders that batch item
// lookups issued while one request is being served into single SQL calls.
package dataloader

import (
	"context"
	"fmt"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type itemRepo interface {
	GetByIDs(ctx context.Context, ids []string) ([]domain.Item, error)
}

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	ItemByID *dataloader.Loader[string, domain.Item]
}

// NewLoaders creates a fresh set of loaders. Must be called per request
// because loaders cache results.
func NewLoaders(items itemRepo) *Loaders {
	return &Loaders{
		ItemByID: dataloader.NewBatchedLoader(
			newItemsBatchFn(items),
			dataloader.WithWait[string, domain.Item](wait),
			dataloader.WithBatchCapacity[string, domain.Item](maxBatch),
		),
	}
}

func newItemsBatchFn(repo itemRepo) dataloader.BatchFunc[string, domain.Item] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[domain.Item] {
		items, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[domain.Item], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[domain.Item]{Error: err}
			}
			return results
		}

		byID := make(map[string]domain.Item, len(items))
		for _, it := range items {
			byID[it.ID] = it
		}

		results := make([]*dataloader.Result[domain.Item], len(keys))
		for i, key := range keys {
			if it, ok := byID[key]; ok {
				results[i] = &dataloader.Result[domain.Item]{Data: it}
			} else {
				results[i] = &dataloader.Result[domain.Item]{Error: fmt.Errorf("item %s: %w", key, domain.ErrNotFound)}
			}
		}
		return results
	}
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context, or nil.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}
