// Package folder implements folder storage and card membership.
package folder

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

// WrongAnswerFolderName returns the name of the per-type wrong-answer folder.
func WrongAnswerFolderName(t domain.ItemType) string {
	return fmt.Sprintf("Wrong answers (%s)", t)
}

type folderRow struct {
	ID                  uuid.UUID  `db:"id"`
	UserID              uuid.UUID  `db:"user_id"`
	Name                string     `db:"name"`
	ParentID            *uuid.UUID `db:"parent_id"`
	IsWrongAnswerFolder bool       `db:"is_wrong_answer_folder"`
	CardCount           int64      `db:"card_count"`
	CreatedAt           time.Time  `db:"created_at"`
}

type refRow struct {
	CardID              uuid.UUID  `db:"card_id"`
	ID                  uuid.UUID  `db:"id"`
	Name                string     `db:"name"`
	ParentID            *uuid.UUID `db:"parent_id"`
	ParentName          *string    `db:"parent_name"`
	IsWrongAnswerFolder bool       `db:"is_wrong_answer_folder"`
}

// Repo provides folder persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new folder repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// List returns the folders of userID with their card counts, ordered by name.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.Folder, error) {
	query, args, err := postgres.Builder().
		Select(
			"f.id", "f.user_id", "f.name", "f.parent_id", "f.is_wrong_answer_folder",
			"count(fi.card_id) AS card_count", "f.created_at",
		).
		From("folders f").
		LeftJoin("folder_items fi ON fi.folder_id = f.id").
		Where(sq.Eq{"f.user_id": userID}).
		GroupBy("f.id").
		OrderBy("f.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list folders query: %w", err)
	}

	var rows []folderRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "folders", userID)
	}

	folders := make([]domain.Folder, len(rows))
	for i, row := range rows {
		folders[i] = domain.Folder{
			ID:                  row.ID,
			UserID:              row.UserID,
			Name:                row.Name,
			ParentID:            row.ParentID,
			IsWrongAnswerFolder: row.IsWrongAnswerFolder,
			CardCount:           int(row.CardCount),
			CreatedAt:           row.CreatedAt,
		}
	}
	return folders, nil
}

// Create inserts a folder. A parent must belong to the same user.
func (r *Repo) Create(ctx context.Context, f *domain.Folder) error {
	if f.ParentID != nil {
		if err := r.ensureOwned(ctx, f.UserID, *f.ParentID); err != nil {
			return err
		}
	}

	query, args, err := postgres.Builder().
		Insert("folders").
		Columns("id", "user_id", "name", "parent_id", "is_wrong_answer_folder", "created_at").
		Values(f.ID, f.UserID, f.Name, f.ParentID, f.IsWrongAnswerFolder, f.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert folder query: %w", err)
	}

	if _, err := r.q(ctx).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "folder", f.Name)
	}
	return nil
}

func (r *Repo) ensureOwned(ctx context.Context, userID, folderID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Select("1").
		From("folders").
		Where(sq.Eq{"id": folderID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build folder owner query: %w", err)
	}

	var one int
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&one); err != nil {
		return postgres.MapError(err, "folder", folderID)
	}
	return nil
}

// Delete removes a folder of userID; subfolders and memberships cascade.
func (r *Repo) Delete(ctx context.Context, userID, folderID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete("folders").
		Where(sq.Eq{"id": folderID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete folder query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "folder", folderID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("folder %s: %w", folderID, domain.ErrNotFound)
	}
	return nil
}

// EnsureWrongAnswerFolder returns the id of the wrong-answer folder of
// userID for itemType, creating it on first use.
func (r *Repo) EnsureWrongAnswerFolder(ctx context.Context, userID uuid.UUID, itemType domain.ItemType, now time.Time) (uuid.UUID, error) {
	query, args, err := postgres.Builder().
		Insert("folders").
		Columns("id", "user_id", "name", "is_wrong_answer_folder", "created_at").
		Values(uuid.New(), userID, WrongAnswerFolderName(itemType), true, now).
		Suffix("ON CONFLICT (user_id, name) DO UPDATE SET is_wrong_answer_folder = true RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build ensure folder query: %w", err)
	}

	var id uuid.UUID
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, postgres.MapError(err, "folder", WrongAnswerFolderName(itemType))
	}
	return id, nil
}

// AddCards files the given cards of userID into folderID. A wrong-answer
// folder only accepts cards that currently carry the wrong-answer flag;
// other cards yield domain.ErrValidation. Cards already present are kept.
func (r *Repo) AddCards(ctx context.Context, userID, folderID uuid.UUID, cardIDs []uuid.UUID, now time.Time) (int64, error) {
	if len(cardIDs) == 0 {
		return 0, nil
	}

	var isWrong bool
	query, args, err := postgres.Builder().
		Select("is_wrong_answer_folder").
		From("folders").
		Where(sq.Eq{"id": folderID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build folder lookup query: %w", err)
	}
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&isWrong); err != nil {
		return 0, postgres.MapError(err, "folder", folderID)
	}

	sel := postgres.Builder().
		Select().
		Column(sq.Expr("?::uuid", folderID)).
		Column("c.id").
		Column(sq.Expr("?::timestamptz", now)).
		From("cards c").
		Where(sq.Eq{"c.user_id": userID}).
		Where(sq.Eq{"c.id": cardIDs})
	if isWrong {
		sel = sel.Where("c.is_from_wrong_answer")
	}

	query, args, err = postgres.Builder().
		Insert("folder_items").
		Columns("folder_id", "card_id", "added_at").
		Select(sel).
		Suffix("ON CONFLICT (folder_id, card_id) DO NOTHING").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build add cards query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "folder_items", folderID)
	}

	if isWrong && tag.RowsAffected() < int64(len(cardIDs)) {
		missing, err := r.countNotFiled(ctx, folderID, cardIDs)
		if err != nil {
			return 0, err
		}
		if missing > 0 {
			return 0, domain.NewValidationError("card_ids", "only cards from a fresh mistake can enter a wrong-answer folder")
		}
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) countNotFiled(ctx context.Context, folderID uuid.UUID, cardIDs []uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From("folder_items").
		Where(sq.Eq{"folder_id": folderID}).
		Where(sq.Eq{"card_id": cardIDs}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build membership count query: %w", err)
	}

	var n int64
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "folder_items", folderID)
	}
	return len(cardIDs) - int(n), nil
}

// RemoveCards detaches the given cards from their folders, or only from
// wrong-answer folders when wrongAnswerOnly is set.
func (r *Repo) RemoveCards(ctx context.Context, cardIDs []uuid.UUID, wrongAnswerOnly bool) (int64, error) {
	if len(cardIDs) == 0 {
		return 0, nil
	}
	b := postgres.Builder().
		Delete("folder_items").
		Where(sq.Eq{"card_id": cardIDs})
	if wrongAnswerOnly {
		b = b.Where("folder_id IN (SELECT id FROM folders WHERE is_wrong_answer_folder)")
	}

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build remove cards query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "folder_items", "remove")
	}
	return tag.RowsAffected(), nil
}

// RefsByCardIDs returns the folder memberships of the given cards keyed by card id.
func (r *Repo) RefsByCardIDs(ctx context.Context, cardIDs []uuid.UUID) (map[uuid.UUID][]domain.FolderRef, error) {
	refs := make(map[uuid.UUID][]domain.FolderRef)
	if len(cardIDs) == 0 {
		return refs, nil
	}

	query, args, err := postgres.Builder().
		Select(
			"fi.card_id", "f.id", "f.name", "f.parent_id",
			"p.name AS parent_name", "f.is_wrong_answer_folder",
		).
		From("folder_items fi").
		Join("folders f ON f.id = fi.folder_id").
		LeftJoin("folders p ON p.id = f.parent_id").
		Where(sq.Eq{"fi.card_id": cardIDs}).
		OrderBy("fi.card_id", "f.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build folder refs query: %w", err)
	}

	var rows []refRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "folder_items", "refs")
	}

	for _, row := range rows {
		refs[row.CardID] = append(refs[row.CardID], domain.FolderRef{
			ID:                  row.ID,
			Name:                row.Name,
			ParentID:            row.ParentID,
			ParentName:          row.ParentName,
			IsWrongAnswerFolder: row.IsWrongAnswerFolder,
		})
	}
	return refs, nil
}

