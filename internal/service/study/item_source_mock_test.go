package study

import (
	"context"
	"sync"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
)

var _ itemSource = &itemSourceMock{}

type itemSourceMock struct {
	GetByIDsFunc func(ctx context.Context, ids []string) ([]domain.Item, error)

	calls struct {
		GetByIDs []struct {
			Ctx context.Context
			IDs []string
		}
	}
	lockGetByIDs sync.RWMutex
}

func (mock *itemSourceMock) GetByIDs(ctx context.Context, ids []string) ([]domain.Item, error) {
	if mock.GetByIDsFunc == nil {
		panic("itemSourceMock.GetByIDsFunc: method is nil but itemSource.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []string
	}{Ctx: ctx, IDs: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *itemSourceMock) GetByIDsCalls() []struct {
	Ctx context.Context
	IDs []string
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}
