package timemachine

import (
	"context"
	"sync"
	"time"
)

var _ freezeClearer = &freezeClearerMock{}

type freezeClearerMock struct {
	ClearAllFrozenFunc func(ctx context.Context, now time.Time) (int64, error)

	calls struct {
		ClearAllFrozen []struct {
			Ctx context.Context
			Now time.Time
		}
	}
	lockClearAllFrozen sync.RWMutex
}

func (mock *freezeClearerMock) ClearAllFrozen(ctx context.Context, now time.Time) (int64, error) {
	if mock.ClearAllFrozenFunc == nil {
		panic("freezeClearerMock.ClearAllFrozenFunc: method is nil but freezeClearer.ClearAllFrozen was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Now time.Time
	}{Ctx: ctx, Now: now}
	mock.lockClearAllFrozen.Lock()
	mock.calls.ClearAllFrozen = append(mock.calls.ClearAllFrozen, callInfo)
	mock.lockClearAllFrozen.Unlock()
	return mock.ClearAllFrozenFunc(ctx, now)
}

func (mock *freezeClearerMock) ClearAllFrozenCalls() []struct {
	Ctx context.Context
	Now time.Time
} {
	mock.lockClearAllFrozen.RLock()
	calls := mock.calls.ClearAllFrozen
	mock.lockClearAllFrozen.RUnlock()
	return calls
}
