package study

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/srs-review-backend/internal/domain"
	"sync"
	"time"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	GetByItemFunc            func(ctx context.Context, userID uuid.UUID, itemID string) (*domain.Card, error)
	ListReviewCandidatesFunc func(ctx context.Context, userID uuid.UUID, now time.Time) ([]*domain.Card, error)
	ListMasteredFunc         func(ctx context.Context, userID uuid.UUID) ([]*domain.Card, error)
	ListByIDsFunc            func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*domain.Card, error)
	CreateFunc               func(ctx context.Context, c *domain.Card) error
	UpdateCASFunc            func(ctx context.Context, c *domain.Card) error
	DeleteByIDsFunc          func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)

	calls struct {
		GetByItem []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ItemID string
		}
		ListReviewCandidates []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Now    time.Time
		}
		ListMastered []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListByIDs []struct {
			Ctx    context.Context
			UserID uuid.UUID
			IDs    []uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Card
		}
		UpdateCAS []struct {
			Ctx context.Context
			C   *domain.Card
		}
		DeleteByIDs []struct {
			Ctx    context.Context
			UserID uuid.UUID
			IDs    []uuid.UUID
		}
	}
	lockGetByItem            sync.RWMutex
	lockListReviewCandidates sync.RWMutex
	lockListMastered         sync.RWMutex
	lockListByIDs            sync.RWMutex
	lockCreate               sync.RWMutex
	lockUpdateCAS            sync.RWMutex
	lockDeleteByIDs          sync.RWMutex
}

func (mock *cardRepoMock) GetByItem(ctx context.Context, userID uuid.UUID, itemID string) (*domain.Card, error) {
	if mock.GetByItemFunc == nil {
		panic("cardRepoMock.GetByItemFunc: method is nil but cardRepo.GetByItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ItemID string
	}{Ctx: ctx, UserID: userID, ItemID: itemID}
	mock.lockGetByItem.Lock()
	mock.calls.GetByItem = append(mock.calls.GetByItem, callInfo)
	mock.lockGetByItem.Unlock()
	return mock.GetByItemFunc(ctx, userID, itemID)
}

func (mock *cardRepoMock) GetByItemCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ItemID string
} {
	mock.lockGetByItem.RLock()
	calls := mock.calls.GetByItem
	mock.lockGetByItem.RUnlock()
	return calls
}

func (mock *cardRepoMock) ListReviewCandidates(ctx context.Context, userID uuid.UUID, now time.Time) ([]*domain.Card, error) {
	if mock.ListReviewCandidatesFunc == nil {
		panic("cardRepoMock.ListReviewCandidatesFunc: method is nil but cardRepo.ListReviewCandidates was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Now    time.Time
	}{Ctx: ctx, UserID: userID, Now: now}
	mock.lockListReviewCandidates.Lock()
	mock.calls.ListReviewCandidates = append(mock.calls.ListReviewCandidates, callInfo)
	mock.lockListReviewCandidates.Unlock()
	return mock.ListReviewCandidatesFunc(ctx, userID, now)
}

func (mock *cardRepoMock) ListReviewCandidatesCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Now    time.Time
} {
	mock.lockListReviewCandidates.RLock()
	calls := mock.calls.ListReviewCandidates
	mock.lockListReviewCandidates.RUnlock()
	return calls
}

func (mock *cardRepoMock) ListMastered(ctx context.Context, userID uuid.UUID) ([]*domain.Card, error) {
	if mock.ListMasteredFunc == nil {
		panic("cardRepoMock.ListMasteredFunc: method is nil but cardRepo.ListMastered was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListMastered.Lock()
	mock.calls.ListMastered = append(mock.calls.ListMastered, callInfo)
	mock.lockListMastered.Unlock()
	return mock.ListMasteredFunc(ctx, userID)
}

func (mock *cardRepoMock) ListMasteredCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListMastered.RLock()
	calls := mock.calls.ListMastered
	mock.lockListMastered.RUnlock()
	return calls
}

func (mock *cardRepoMock) ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*domain.Card, error) {
	if mock.ListByIDsFunc == nil {
		panic("cardRepoMock.ListByIDsFunc: method is nil but cardRepo.ListByIDs was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		IDs    []uuid.UUID
	}{Ctx: ctx, UserID: userID, IDs: ids}
	mock.lockListByIDs.Lock()
	mock.calls.ListByIDs = append(mock.calls.ListByIDs, callInfo)
	mock.lockListByIDs.Unlock()
	return mock.ListByIDsFunc(ctx, userID, ids)
}

func (mock *cardRepoMock) ListByIDsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	IDs    []uuid.UUID
} {
	mock.lockListByIDs.RLock()
	calls := mock.calls.ListByIDs
	mock.lockListByIDs.RUnlock()
	return calls
}

func (mock *cardRepoMock) Create(ctx context.Context, c *domain.Card) error {
	if mock.CreateFunc == nil {
		panic("cardRepoMock.CreateFunc: method is nil but cardRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Card
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *cardRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Card
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *cardRepoMock) UpdateCAS(ctx context.Context, c *domain.Card) error {
	if mock.UpdateCASFunc == nil {
		panic("cardRepoMock.UpdateCASFunc: method is nil but cardRepo.UpdateCAS was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Card
	}{Ctx: ctx, C: c}
	mock.lockUpdateCAS.Lock()
	mock.calls.UpdateCAS = append(mock.calls.UpdateCAS, callInfo)
	mock.lockUpdateCAS.Unlock()
	return mock.UpdateCASFunc(ctx, c)
}

func (mock *cardRepoMock) UpdateCASCalls() []struct {
	Ctx context.Context
	C   *domain.Card
} {
	mock.lockUpdateCAS.RLock()
	calls := mock.calls.UpdateCAS
	mock.lockUpdateCAS.RUnlock()
	return calls
}

func (mock *cardRepoMock) DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if mock.DeleteByIDsFunc == nil {
		panic("cardRepoMock.DeleteByIDsFunc: method is nil but cardRepo.DeleteByIDs was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		IDs    []uuid.UUID
	}{Ctx: ctx, UserID: userID, IDs: ids}
	mock.lockDeleteByIDs.Lock()
	mock.calls.DeleteByIDs = append(mock.calls.DeleteByIDs, callInfo)
	mock.lockDeleteByIDs.Unlock()
	return mock.DeleteByIDsFunc(ctx, userID, ids)
}

func (mock *cardRepoMock) DeleteByIDsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	IDs    []uuid.UUID
} {
	mock.lockDeleteByIDs.RLock()
	calls := mock.calls.DeleteByIDs
	mock.lockDeleteByIDs.RUnlock()
	return calls
}
