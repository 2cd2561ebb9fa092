package app

import (
	"context"
	"sync"
	"time"
)

var _ sweepStore = &sweepStoreMock{}

type sweepStoreMock struct {
	MarkOverdueFunc   func(ctx context.Context, now time.Time) (int64, error)
	ReleaseFrozenFunc func(ctx context.Context, now time.Time) (int64, error)

	calls struct {
		MarkOverdue []struct {
			Ctx context.Context
			Now time.Time
		}
		ReleaseFrozen []struct {
			Ctx context.Context
			Now time.Time
		}
	}
	lockMarkOverdue   sync.RWMutex
	lockReleaseFrozen sync.RWMutex
}

func (mock *sweepStoreMock) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	if mock.MarkOverdueFunc == nil {
		panic("sweepStoreMock.MarkOverdueFunc: method is nil but sweepStore.MarkOverdue was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Now time.Time
	}{Ctx: ctx, Now: now}
	mock.lockMarkOverdue.Lock()
	mock.calls.MarkOverdue = append(mock.calls.MarkOverdue, callInfo)
	mock.lockMarkOverdue.Unlock()
	return mock.MarkOverdueFunc(ctx, now)
}

func (mock *sweepStoreMock) MarkOverdueCalls() []struct {
	Ctx context.Context
	Now time.Time
} {
	mock.lockMarkOverdue.RLock()
	calls := mock.calls.MarkOverdue
	mock.lockMarkOverdue.RUnlock()
	return calls
}

func (mock *sweepStoreMock) ReleaseFrozen(ctx context.Context, now time.Time) (int64, error) {
	if mock.ReleaseFrozenFunc == nil {
		panic("sweepStoreMock.ReleaseFrozenFunc: method is nil but sweepStore.ReleaseFrozen was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Now time.Time
	}{Ctx: ctx, Now: now}
	mock.lockReleaseFrozen.Lock()
	mock.calls.ReleaseFrozen = append(mock.calls.ReleaseFrozen, callInfo)
	mock.lockReleaseFrozen.Unlock()
	return mock.ReleaseFrozenFunc(ctx, now)
}

func (mock *sweepStoreMock) ReleaseFrozenCalls() []struct {
	Ctx context.Context
	Now time.Time
} {
	mock.lockReleaseFrozen.RLock()
	calls := mock.calls.ReleaseFrozen
	mock.lockReleaseFrozen.RUnlock()
	return calls
}
