package study

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/srs-review-backend/internal/domain"
	"sync"
	"time"
)

var _ attemptRepo = &attemptRepoMock{}

type attemptRepoMock struct {
	ReserveFunc       func(ctx context.Context, userID uuid.UUID, key string, itemID string, now time.Time) (bool, string, error)
	AppendFunc        func(ctx context.Context, events []domain.AttemptEvent) error
	ListByUserFunc    func(ctx context.Context, userID uuid.UUID, itemType *domain.ItemType) ([]domain.AttemptEvent, error)
	ListForKeysFunc   func(ctx context.Context, userID uuid.UUID, keys []string) ([]domain.AttemptEvent, error)
	DailyCountsFunc   func(ctx context.Context, userID uuid.UUID, tz string, since time.Time, until time.Time) ([]domain.DayAttemptCount, error)
	CountBetweenFunc  func(ctx context.Context, userID uuid.UUID, since time.Time, until time.Time) (int, error)
	DeleteForKeysFunc func(ctx context.Context, userID uuid.UUID, keys []string) (int64, error)

	calls struct {
		Reserve []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Key    string
			ItemID string
			Now    time.Time
		}
		Append []struct {
			Ctx    context.Context
			Events []domain.AttemptEvent
		}
		ListByUser []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			ItemType *domain.ItemType
		}
		ListForKeys []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Keys   []string
		}
		DailyCounts []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Tz     string
			Since  time.Time
			Until  time.Time
		}
		CountBetween []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Since  time.Time
			Until  time.Time
		}
		DeleteForKeys []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Keys   []string
		}
	}
	lockReserve       sync.RWMutex
	lockAppend        sync.RWMutex
	lockListByUser    sync.RWMutex
	lockListForKeys   sync.RWMutex
	lockDailyCounts   sync.RWMutex
	lockCountBetween  sync.RWMutex
	lockDeleteForKeys sync.RWMutex
}

func (mock *attemptRepoMock) Reserve(ctx context.Context, userID uuid.UUID, key string, itemID string, now time.Time) (bool, string, error) {
	if mock.ReserveFunc == nil {
		panic("attemptRepoMock.ReserveFunc: method is nil but attemptRepo.Reserve was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Key    string
		ItemID string
		Now    time.Time
	}{Ctx: ctx, UserID: userID, Key: key, ItemID: itemID, Now: now}
	mock.lockReserve.Lock()
	mock.calls.Reserve = append(mock.calls.Reserve, callInfo)
	mock.lockReserve.Unlock()
	return mock.ReserveFunc(ctx, userID, key, itemID, now)
}

func (mock *attemptRepoMock) ReserveCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Key    string
	ItemID string
	Now    time.Time
} {
	mock.lockReserve.RLock()
	calls := mock.calls.Reserve
	mock.lockReserve.RUnlock()
	return calls
}

func (mock *attemptRepoMock) Append(ctx context.Context, events []domain.AttemptEvent) error {
	if mock.AppendFunc == nil {
		panic("attemptRepoMock.AppendFunc: method is nil but attemptRepo.Append was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Events []domain.AttemptEvent
	}{Ctx: ctx, Events: events}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, events)
}

func (mock *attemptRepoMock) AppendCalls() []struct {
	Ctx    context.Context
	Events []domain.AttemptEvent
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *attemptRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, itemType *domain.ItemType) ([]domain.AttemptEvent, error) {
	if mock.ListByUserFunc == nil {
		panic("attemptRepoMock.ListByUserFunc: method is nil but attemptRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		ItemType *domain.ItemType
	}{Ctx: ctx, UserID: userID, ItemType: itemType}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, itemType)
}

func (mock *attemptRepoMock) ListByUserCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	ItemType *domain.ItemType
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *attemptRepoMock) ListForKeys(ctx context.Context, userID uuid.UUID, keys []string) ([]domain.AttemptEvent, error) {
	if mock.ListForKeysFunc == nil {
		panic("attemptRepoMock.ListForKeysFunc: method is nil but attemptRepo.ListForKeys was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Keys   []string
	}{Ctx: ctx, UserID: userID, Keys: keys}
	mock.lockListForKeys.Lock()
	mock.calls.ListForKeys = append(mock.calls.ListForKeys, callInfo)
	mock.lockListForKeys.Unlock()
	return mock.ListForKeysFunc(ctx, userID, keys)
}

func (mock *attemptRepoMock) ListForKeysCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Keys   []string
} {
	mock.lockListForKeys.RLock()
	calls := mock.calls.ListForKeys
	mock.lockListForKeys.RUnlock()
	return calls
}

func (mock *attemptRepoMock) DailyCounts(ctx context.Context, userID uuid.UUID, tz string, since time.Time, until time.Time) ([]domain.DayAttemptCount, error) {
	if mock.DailyCountsFunc == nil {
		panic("attemptRepoMock.DailyCountsFunc: method is nil but attemptRepo.DailyCounts was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Tz     string
		Since  time.Time
		Until  time.Time
	}{Ctx: ctx, UserID: userID, Tz: tz, Since: since, Until: until}
	mock.lockDailyCounts.Lock()
	mock.calls.DailyCounts = append(mock.calls.DailyCounts, callInfo)
	mock.lockDailyCounts.Unlock()
	return mock.DailyCountsFunc(ctx, userID, tz, since, until)
}

func (mock *attemptRepoMock) DailyCountsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Tz     string
	Since  time.Time
	Until  time.Time
} {
	mock.lockDailyCounts.RLock()
	calls := mock.calls.DailyCounts
	mock.lockDailyCounts.RUnlock()
	return calls
}

func (mock *attemptRepoMock) CountBetween(ctx context.Context, userID uuid.UUID, since time.Time, until time.Time) (int, error) {
	if mock.CountBetweenFunc == nil {
		panic("attemptRepoMock.CountBetweenFunc: method is nil but attemptRepo.CountBetween was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Since  time.Time
		Until  time.Time
	}{Ctx: ctx, UserID: userID, Since: since, Until: until}
	mock.lockCountBetween.Lock()
	mock.calls.CountBetween = append(mock.calls.CountBetween, callInfo)
	mock.lockCountBetween.Unlock()
	return mock.CountBetweenFunc(ctx, userID, since, until)
}

func (mock *attemptRepoMock) CountBetweenCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Since  time.Time
	Until  time.Time
} {
	mock.lockCountBetween.RLock()
	calls := mock.calls.CountBetween
	mock.lockCountBetween.RUnlock()
	return calls
}

func (mock *attemptRepoMock) DeleteForKeys(ctx context.Context, userID uuid.UUID, keys []string) (int64, error) {
	if mock.DeleteForKeysFunc == nil {
		panic("attemptRepoMock.DeleteForKeysFunc: method is nil but attemptRepo.DeleteForKeys was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Keys   []string
	}{Ctx: ctx, UserID: userID, Keys: keys}
	mock.lockDeleteForKeys.Lock()
	mock.calls.DeleteForKeys = append(mock.calls.DeleteForKeys, callInfo)
	mock.lockDeleteForKeys.Unlock()
	return mock.DeleteForKeysFunc(ctx, userID, keys)
}

func (mock *attemptRepoMock) DeleteForKeysCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Keys   []string
} {
	mock.lockDeleteForKeys.RLock()
	calls := mock.calls.DeleteForKeys
	mock.lockDeleteForKeys.RUnlock()
	return calls
}
