package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
	"github.com/heartmarshall/srs-review-backend/internal/service/study/ladder"
	"github.com/heartmarshall/srs-review-backend/pkg/ctxutil"
)

// Partition splits the overdue cards by the language tag of their item.
// Cards whose item has no known language are left out. Each item appears at
// most once, keeping the first card seen.
func Partition(cards []*domain.Card, langs map[string]domain.Language, now time.Time) domain.AvailableCards {
	out := domain.AvailableCards{
		Japanese: []*domain.Card{},
		English:  []*domain.Card{},
	}

	seen := make(map[string]bool, len(cards))
	for _, c := range cards {
		if c == nil || seen[c.ItemID] || !ladder.IsReviewable(c, now) {
			continue
		}
		switch langs[c.ItemID] {
		case domain.LanguageJapanese:
			out.Japanese = append(out.Japanese, c)
		case domain.LanguageEnglish:
			out.English = append(out.English, c)
		default:
			continue
		}
		seen[c.ItemID] = true
	}

	out.Total = len(out.Japanese) + len(out.English)
	out.HasMultipleLanguages = len(out.Japanese) > 0 && len(out.English) > 0
	return out
}

// GetAvailable returns the reviewable cards of the caller partitioned by language.
func (s *Service) GetAvailable(ctx context.Context) (domain.AvailableCards, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.AvailableCards{}, domain.ErrUnauthorized
	}

	now := s.clock.Now()
	avail, err := s.available(ctx, now)
	if err != nil {
		return domain.AvailableCards{}, err
	}

	s.log.InfoContext(ctx, "available cards loaded",
		slog.String("user_id", userID.String()),
		slog.Int("total", avail.Total),
		slog.Bool("multiple_languages", avail.HasMultipleLanguages),
	)
	return avail, nil
}

// BatchReview returns the deduplicated item ids of one language partition.
// When both languages are present the caller must pick one.
func (s *Service) BatchReview(ctx context.Context, input BatchReviewInput) ([]string, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	avail, err := s.available(ctx, s.clock.Now())
	if err != nil {
		return nil, err
	}

	var chosen []*domain.Card
	switch {
	case input.Language != nil && *input.Language == domain.LanguageJapanese:
		chosen = avail.Japanese
	case input.Language != nil:
		chosen = avail.English
	case avail.HasMultipleLanguages:
		return nil, domain.NewValidationError("language", "required when both languages have reviewable cards")
	default:
		chosen = append(avail.Japanese, avail.English...)
	}

	ids := make([]string, 0, len(chosen))
	seen := make(map[string]bool, len(chosen))
	for _, c := range chosen {
		if seen[c.ItemID] {
			continue
		}
		seen[c.ItemID] = true
		ids = append(ids, c.ItemID)
	}
	return ids, nil
}

func (s *Service) available(ctx context.Context, now time.Time) (domain.AvailableCards, error) {
	userID, _ := ctxutil.UserIDFromCtx(ctx)

	cards, err := s.cards.ListReviewCandidates(ctx, userID, now)
	if err != nil {
		return domain.AvailableCards{}, fmt.Errorf("list review candidates: %w", err)
	}

	itemIDs := make([]string, 0, len(cards))
	for _, c := range cards {
		itemIDs = append(itemIDs, c.ItemID)
	}
	items, err := s.items.GetByIDs(ctx, itemIDs)
	if err != nil {
		return domain.AvailableCards{}, fmt.Errorf("load items: %w", err)
	}
	langs := make(map[string]domain.Language, len(items))
	for _, it := range items {
		langs[it.ID] = it.Language
	}

	avail := Partition(cards, langs, now)
	all := append(append([]*domain.Card{}, avail.Japanese...), avail.English...)
	if err := s.attachFolders(ctx, all); err != nil {
		return domain.AvailableCards{}, fmt.Errorf("load folders: %w", err)
	}
	return avail, nil
}
