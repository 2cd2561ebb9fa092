package rest

import (
	"context"
	"github.com/heartmarshall/srs-review-backend/internal/service/timemachine"
	"sync"
)

var _ timeMachineService = &timeMachineServiceMock{}

type timeMachineServiceMock struct {
	GetFunc          func(ctx context.Context) (timemachine.State, error)
	SetFunc          func(ctx context.Context, days int) (timemachine.State, error)
	ResetFunc        func(ctx context.Context) (timemachine.State, error)
	EmergencyFixFunc func(ctx context.Context) (int64, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
		Set []struct {
			Ctx  context.Context
			Days int
		}
		Reset []struct {
			Ctx context.Context
		}
		EmergencyFix []struct {
			Ctx context.Context
		}
	}
	lockGet          sync.RWMutex
	lockSet          sync.RWMutex
	lockReset        sync.RWMutex
	lockEmergencyFix sync.RWMutex
}

func (mock *timeMachineServiceMock) Get(ctx context.Context) (timemachine.State, error) {
	if mock.GetFunc == nil {
		panic("timeMachineServiceMock.GetFunc: method is nil but timeMachineService.Get was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *timeMachineServiceMock) GetCalls() []struct{ Ctx context.Context } {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *timeMachineServiceMock) Set(ctx context.Context, days int) (timemachine.State, error) {
	if mock.SetFunc == nil {
		panic("timeMachineServiceMock.SetFunc: method is nil but timeMachineService.Set was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Days int
	}{Ctx: ctx, Days: days}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, days)
}

func (mock *timeMachineServiceMock) SetCalls() []struct {
	Ctx  context.Context
	Days int
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}

func (mock *timeMachineServiceMock) Reset(ctx context.Context) (timemachine.State, error) {
	if mock.ResetFunc == nil {
		panic("timeMachineServiceMock.ResetFunc: method is nil but timeMachineService.Reset was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockReset.Lock()
	mock.calls.Reset = append(mock.calls.Reset, callInfo)
	mock.lockReset.Unlock()
	return mock.ResetFunc(ctx)
}

func (mock *timeMachineServiceMock) ResetCalls() []struct{ Ctx context.Context } {
	mock.lockReset.RLock()
	calls := mock.calls.Reset
	mock.lockReset.RUnlock()
	return calls
}

func (mock *timeMachineServiceMock) EmergencyFix(ctx context.Context) (int64, error) {
	if mock.EmergencyFixFunc == nil {
		panic("timeMachineServiceMock.EmergencyFixFunc: method is nil but timeMachineService.EmergencyFix was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockEmergencyFix.Lock()
	mock.calls.EmergencyFix = append(mock.calls.EmergencyFix, callInfo)
	mock.lockEmergencyFix.Unlock()
	return mock.EmergencyFixFunc(ctx)
}

func (mock *timeMachineServiceMock) EmergencyFixCalls() []struct{ Ctx context.Context } {
	mock.lockEmergencyFix.RLock()
	calls := mock.calls.EmergencyFix
	mock.lockEmergencyFix.RUnlock()
	return calls
}
