package dataloader

import (
	"context"
	"errors"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
)

// Source resolves items through the request's loaders when present and
// through the repository otherwise (jobs, CLI).
type Source struct {
	repo itemRepo
}

// NewSource creates an item source over repo.
func NewSource(repo itemRepo) *Source {
	return &Source{repo: repo}
}

// GetByIDs returns the known items among ids. Unknown ids are omitted.
func (s *Source) GetByIDs(ctx context.Context, ids []string) ([]domain.Item, error) {
	l := FromContext(ctx)
	if l == nil {
		return s.repo.GetByIDs(ctx, ids)
	}

	thunk := l.ItemByID.LoadMany(ctx, ids)
	data, errs := thunk()

	items := make([]domain.Item, 0, len(data))
	for i, it := range data {
		if i < len(errs) && errs[i] != nil {
			if errors.Is(errs[i], domain.ErrNotFound) {
				continue
			}
			return nil, errs[i]
		}
		items = append(items, it)
	}
	return items, nil
}
