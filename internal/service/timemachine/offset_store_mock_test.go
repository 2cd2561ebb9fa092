package timemachine

import (
	"context"
	"sync"
	"time"
)

var _ offsetStore = &offsetStoreMock{}

type offsetStoreMock struct {
	GetFunc func(ctx context.Context) (int, error)
	SetFunc func(ctx context.Context, days int, now time.Time) error

	calls struct {
		Get []struct {
			Ctx context.Context
		}
		Set []struct {
			Ctx  context.Context
			Days int
			Now  time.Time
		}
	}
	lockGet sync.RWMutex
	lockSet sync.RWMutex
}

func (mock *offsetStoreMock) Get(ctx context.Context) (int, error) {
	if mock.GetFunc == nil {
		panic("offsetStoreMock.GetFunc: method is nil but offsetStore.Get was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *offsetStoreMock) GetCalls() []struct{ Ctx context.Context } {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *offsetStoreMock) Set(ctx context.Context, days int, now time.Time) error {
	if mock.SetFunc == nil {
		panic("offsetStoreMock.SetFunc: method is nil but offsetStore.Set was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Days int
		Now  time.Time
	}{Ctx: ctx, Days: days, Now: now}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, days, now)
}

func (mock *offsetStoreMock) SetCalls() []struct {
	Ctx  context.Context
	Days int
	Now  time.Time
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}
