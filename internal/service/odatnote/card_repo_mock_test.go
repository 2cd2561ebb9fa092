package odatnote

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/srs-review-backend/internal/domain"
	"sync"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	ListByIDsFunc func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*domain.Card, error)

	calls struct {
		ListByIDs []struct {
			Ctx    context.Context
			UserID uuid.UUID
			IDs    []uuid.UUID
		}
	}
	lockListByIDs sync.RWMutex
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
