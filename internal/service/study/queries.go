package study

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
	"github.com/heartmarshall/srs-review-backend/internal/service/study/consolidate"
	"github.com/heartmarshall/srs-review-backend/pkg/ctxutil"
)

// GetMasteredCards returns every mastered card of the caller.
func (s *Service) GetMasteredCards(ctx context.Context) ([]*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	cards, err := s.cards.ListMastered(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list mastered cards: %w", err)
	}
	if err := s.attachFolders(ctx, cards); err != nil {
		return nil, fmt.Errorf("load folders: %w", err)
	}
	return cards, nil
}

// GetCard returns the card of one item with its label and consolidated stats.
func (s *Service) GetCard(ctx context.Context, itemID string) (CardView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return CardView{}, domain.ErrUnauthorized
	}

	itemID = strings.TrimSpace(itemID)
	if errs := validateID("item_id", itemID); len(errs) > 0 {
		return CardView{}, domain.Violations(errs).Err()
	}

	c, err := s.cards.GetByItem(ctx, userID, itemID)
	if err != nil {
		return CardView{}, fmt.Errorf("get card: %w", err)
	}
	if err := s.attachFolders(ctx, []*domain.Card{c}); err != nil {
		return CardView{}, fmt.Errorf("load folders: %w", err)
	}

	events, err := s.attempts.ListForKeys(ctx, userID, []string{itemID})
	if err != nil {
		return CardView{}, fmt.Errorf("list attempts: %w", err)
	}

	view := newCardView(c, s.clock.Now())
	if len(events) > 0 {
		item, err := consolidate.For(c.ItemType)
		if err != nil {
			return CardView{}, err
		}
		rec := consolidate.Consolidate(item, events, s.policy.SessionGap)
		view.Stats = &rec
	}
	return view, nil
}

// History returns the consolidated record of every item the caller has
// answered, optionally restricted to one item type.
func (s *Service) History(ctx context.Context, itemType *domain.ItemType) ([]domain.ConsolidatedRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if itemType != nil && !itemType.IsValid() {
		return nil, domain.NewValidationError("type", "must be vocab, grammar, reading or listening")
	}

	events, err := s.attempts.ListByUser(ctx, userID, itemType)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	return consolidate.ByItem(events, s.policy.SessionGap), nil
}
