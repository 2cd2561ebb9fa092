package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/srs-review-backend/internal/adapter/postgres/wronganswer"
	"github.com/heartmarshall/srs-review-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardRepo interface {
	GetByItem(ctx context.Context, userID uuid.UUID, itemID string) (*domain.Card, error)
	ListReviewCandidates(ctx context.Context, userID uuid.UUID, now time.Time) ([]*domain.Card, error)
	ListMastered(ctx context.Context, userID uuid.UUID) ([]*domain.Card, error)
	ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*domain.Card, error)
	Create(ctx context.Context, c *domain.Card) error
	UpdateCAS(ctx context.Context, c *domain.Card) error
	DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)
}

type attemptRepo interface {
	Reserve(ctx context.Context, userID uuid.UUID, key, itemID string, now time.Time) (bool, string, error)
	Append(ctx context.Context, events []domain.AttemptEvent) error
	ListByUser(ctx context.Context, userID uuid.UUID, itemType *domain.ItemType) ([]domain.AttemptEvent, error)
	ListForKeys(ctx context.Context, userID uuid.UUID, keys []string) ([]domain.AttemptEvent, error)
	DailyCounts(ctx context.Context, userID uuid.UUID, tz string, since, until time.Time) ([]domain.DayAttemptCount, error)
	CountBetween(ctx context.Context, userID uuid.UUID, since, until time.Time) (int, error)
	DeleteForKeys(ctx context.Context, userID uuid.UUID, keys []string) (int64, error)
}

type folderRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Folder, error)
	Create(ctx context.Context, f *domain.Folder) error
	Delete(ctx context.Context, userID, folderID uuid.UUID) error
	EnsureWrongAnswerFolder(ctx context.Context, userID uuid.UUID, itemType domain.ItemType, now time.Time) (uuid.UUID, error)
	AddCards(ctx context.Context, userID, folderID uuid.UUID, cardIDs []uuid.UUID, now time.Time) (int64, error)
	RemoveCards(ctx context.Context, cardIDs []uuid.UUID, wrongAnswerOnly bool) (int64, error)
	RefsByCardIDs(ctx context.Context, cardIDs []uuid.UUID) (map[uuid.UUID][]domain.FolderRef, error)
}

type wrongAnswerRepo interface {
	Record(ctx context.Context, m wronganswer.Mistake) (uuid.UUID, error)
	DeleteByCardIDs(ctx context.Context, userID uuid.UUID, cardIDs []uuid.UUID) (int64, error)
}

type itemSource interface {
	GetByIDs(ctx context.Context, ids []string) ([]domain.Item, error)
}

type notifier interface {
	Publish(c domain.Change)
}

type clockSource interface {
	Now() time.Time
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// RetryConfig bounds the transparent retries of a submission.
type RetryConfig struct {
	MaxRetries uint64
	BaseDelay  time.Duration
}

// Service implements the review scheduling business logic.
type Service struct {
	cards    cardRepo
	attempts attemptRepo
	folders  folderRepo
	wrongs   wrongAnswerRepo
	items    itemSource
	bus      notifier
	clock    clockSource
	tx       txManager
	log      *slog.Logger
	policy   domain.SRSPolicy
	retry    RetryConfig
}

// NewService creates a new study service.
func NewService(
	log *slog.Logger,
	cards cardRepo,
	attempts attemptRepo,
	folders folderRepo,
	wrongs wrongAnswerRepo,
	items itemSource,
	bus notifier,
	clk clockSource,
	tx txManager,
	policy domain.SRSPolicy,
	retry RetryConfig,
) *Service {
	if retry.BaseDelay <= 0 {
		retry.BaseDelay = 10 * time.Millisecond
	}
	if policy.Location == nil {
		policy.Location = time.UTC
	}
	return &Service{
		cards:    cards,
		attempts: attempts,
		folders:  folders,
		wrongs:   wrongs,
		items:    items,
		bus:      bus,
		clock:    clk,
		tx:       tx,
		log:      log.With("service", "study"),
		policy:   policy,
		retry:    retry,
	}
}

// Policy returns the active ladder constants.
func (s *Service) Policy() domain.SRSPolicy {
	return s.policy
}

func (s *Service) publish(userID uuid.UUID, resource domain.ResourceType, ids ...string) {
	s.bus.Publish(domain.Change{
		UserID:   userID.String(),
		Resource: resource,
		IDs:      ids,
		At:       s.clock.Now(),
	})
}

// attachFolders fills the folder memberships of cards in place.
func (s *Service) attachFolders(ctx context.Context, cards []*domain.Card) error {
	if len(cards) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	refs, err := s.folders.RefsByCardIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, c := range cards {
		c.Folders = refs[c.ID]
		if c.Folders == nil {
			c.Folders = []domain.FolderRef{}
		}
	}
	return nil
}
