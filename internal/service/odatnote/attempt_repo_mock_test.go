package odatnote

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
)

var _ attemptRepo = &attemptRepoMock{}

type attemptRepoMock struct {
	ListForKeysFunc func(ctx context.Context, userID uuid.UUID, keys []string) ([]domain.AttemptEvent, error)

	calls struct {
		ListForKeys []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Keys   []string
		}
	}
	lockListForKeys sync.RWMutex
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
