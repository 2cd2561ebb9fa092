package odatnote

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/srs-review-backend/internal/domain"
	"sync"
)

var _ noteRepo = &noteRepoMock{}

type noteRepoMock struct {
	ListByTypeFunc  func(ctx context.Context, userID uuid.UUID, itemType domain.ItemType) ([]domain.WrongAnswerEntry, error)
	ListByIDsFunc   func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.WrongAnswerEntry, error)
	CountByTypeFunc func(ctx context.Context, userID uuid.UUID, itemType domain.ItemType) (domain.CategoryCount, error)
	DeleteByIDsFunc func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)

	calls struct {
		ListByType []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			ItemType domain.ItemType
		}
		ListByIDs []struct {
			Ctx    context.Context
			UserID uuid.UUID
			IDs    []uuid.UUID
		}
		CountByType []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			ItemType domain.ItemType
		}
		DeleteByIDs []struct {
			Ctx    context.Context
			UserID uuid.UUID
			IDs    []uuid.UUID
		}
	}
	lockListByType  sync.RWMutex
	lockListByIDs   sync.RWMutex
	lockCountByType sync.RWMutex
	lockDeleteByIDs sync.RWMutex
}

func (mock *noteRepoMock) ListByType(ctx context.Context, userID uuid.UUID, itemType domain.ItemType) ([]domain.WrongAnswerEntry, error) {
	if mock.ListByTypeFunc == nil {
		panic("noteRepoMock.ListByTypeFunc: method is nil but noteRepo.ListByType was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		ItemType domain.ItemType
	}{Ctx: ctx, UserID: userID, ItemType: itemType}
	mock.lockListByType.Lock()
	mock.calls.ListByType = append(mock.calls.ListByType, callInfo)
	mock.lockListByType.Unlock()
	return mock.ListByTypeFunc(ctx, userID, itemType)
}

func (mock *noteRepoMock) ListByTypeCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	ItemType domain.ItemType
} {
	mock.lockListByType.RLock()
	calls := mock.calls.ListByType
	mock.lockListByType.RUnlock()
	return calls
}

func (mock *noteRepoMock) ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.WrongAnswerEntry, error) {
	if mock.ListByIDsFunc == nil {
		panic("noteRepoMock.ListByIDsFunc: method is nil but noteRepo.ListByIDs was just called")
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

func (mock *noteRepoMock) ListByIDsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	IDs    []uuid.UUID
} {
	mock.lockListByIDs.RLock()
	calls := mock.calls.ListByIDs
	mock.lockListByIDs.RUnlock()
	return calls
}

func (mock *noteRepoMock) CountByType(ctx context.Context, userID uuid.UUID, itemType domain.ItemType) (domain.CategoryCount, error) {
	if mock.CountByTypeFunc == nil {
		panic("noteRepoMock.CountByTypeFunc: method is nil but noteRepo.CountByType was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		ItemType domain.ItemType
	}{Ctx: ctx, UserID: userID, ItemType: itemType}
	mock.lockCountByType.Lock()
	mock.calls.CountByType = append(mock.calls.CountByType, callInfo)
	mock.lockCountByType.Unlock()
	return mock.CountByTypeFunc(ctx, userID, itemType)
}

func (mock *noteRepoMock) CountByTypeCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	ItemType domain.ItemType
} {
	mock.lockCountByType.RLock()
	calls := mock.calls.CountByType
	mock.lockCountByType.RUnlock()
	return calls
}

func (mock *noteRepoMock) DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if mock.DeleteByIDsFunc == nil {
		panic("noteRepoMock.DeleteByIDsFunc: method is nil but noteRepo.DeleteByIDs was just called")
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

func (mock *noteRepoMock) DeleteByIDsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	IDs    []uuid.UUID
} {
	mock.lockDeleteByIDs.RLock()
	calls := mock.calls.DeleteByIDs
	mock.lockDeleteByIDs.RUnlock()
	return calls
}
