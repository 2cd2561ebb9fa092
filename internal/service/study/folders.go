package study

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
	"github.com/heartmarshall/srs-review-backend/pkg/ctxutil"
)

// ListFolders returns the folders of the caller with their card counts.
func (s *Service) ListFolders(ctx context.Context) ([]domain.Folder, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	folders, err := s.folders.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	return folders, nil
}

// CreateFolder creates a regular folder. Wrong-answer folders are created on
// demand by submissions only.
func (s *Service) CreateFolder(ctx context.Context, input CreateFolderInput) (*domain.Folder, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := &domain.Folder{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      strings.TrimSpace(input.Name),
		ParentID:  input.ParentID,
		CreatedAt: s.clock.Now(),
	}
	if err := s.folders.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}

	s.publish(userID, domain.ResourceFolder, f.ID.String())
	s.log.InfoContext(ctx, "folder created",
		slog.String("user_id", userID.String()),
		slog.String("folder_id", f.ID.String()),
	)
	return f, nil
}

// AddCardsToFolder files cards into a folder and returns how many were added.
func (s *Service) AddCardsToFolder(ctx context.Context, input AddCardsInput) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return 0, err
	}

	added, err := s.folders.AddCards(ctx, userID, input.FolderID, uniqueIDs(input.CardIDs), s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("add cards to folder: %w", err)
	}

	s.publish(userID, domain.ResourceFolder, input.FolderID.String())
	return int(added), nil
}

// DeleteFolder removes a folder with its subfolders. The cards stay.
func (s *Service) DeleteFolder(ctx context.Context, folderID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if folderID == uuid.Nil {
		return domain.NewValidationError("folder_id", "required")
	}

	if err := s.folders.Delete(ctx, userID, folderID); err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}

	s.publish(userID, domain.ResourceFolder, folderID.String())
	s.log.InfoContext(ctx, "folder deleted",
		slog.String("user_id", userID.String()),
		slog.String("folder_id", folderID.String()),
	)
	return nil
}

// DeleteCards removes cards of the caller in one transaction, detaching their
// folder memberships, wrong-answer entries and attempt history. Either every
// card is removed or none is.
func (s *Service) DeleteCards(ctx context.Context, input DeleteCardsInput) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return 0, err
	}

	ids := uniqueIDs(input.CardIDs)
	var itemIDs []string
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		cards, err := s.cards.ListByIDs(ctx, userID, ids)
		if err != nil {
			return fmt.Errorf("load cards: %w", err)
		}
		if len(cards) != len(ids) {
			return fmt.Errorf("cards: %w", domain.ErrNotFound)
		}
		itemIDs = make([]string, len(cards))
		for i, c := range cards {
			itemIDs[i] = c.ItemID
		}

		if _, err := s.folders.RemoveCards(ctx, ids, false); err != nil {
			return fmt.Errorf("detach folders: %w", err)
		}
		if _, err := s.wrongs.DeleteByCardIDs(ctx, userID, ids); err != nil {
			return fmt.Errorf("delete wrong answers: %w", err)
		}
		if _, err := s.attempts.DeleteForKeys(ctx, userID, itemIDs); err != nil {
			return fmt.Errorf("delete attempts: %w", err)
		}
		if _, err := s.cards.DeleteByIDs(ctx, userID, ids); err != nil {
			return fmt.Errorf("delete cards: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.publish(userID, domain.ResourceCard, itemIDs...)
	s.publish(userID, domain.ResourceFolder)
	s.publish(userID, domain.ResourceWrongAnswer)
	s.publish(userID, domain.ResourceHistory, itemIDs...)

	s.log.InfoContext(ctx, "cards deleted",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(ids)),
	)
	return len(ids), nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
