package study

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/srs-review-backend/internal/adapter/postgres/wronganswer"
	"sync"
)

var _ wrongAnswerRepo = &wrongAnswerRepoMock{}

type wrongAnswerRepoMock struct {
	RecordFunc          func(ctx context.Context, m wronganswer.Mistake) (uuid.UUID, error)
	DeleteByCardIDsFunc func(ctx context.Context, userID uuid.UUID, cardIDs []uuid.UUID) (int64, error)

	calls struct {
		Record []struct {
			Ctx context.Context
			M   wronganswer.Mistake
		}
		DeleteByCardIDs []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			CardIDs []uuid.UUID
		}
	}
	lockRecord          sync.RWMutex
	lockDeleteByCardIDs sync.RWMutex
}

func (mock *wrongAnswerRepoMock) Record(ctx context.Context, m wronganswer.Mistake) (uuid.UUID, error) {
	if mock.RecordFunc == nil {
		panic("wrongAnswerRepoMock.RecordFunc: method is nil but wrongAnswerRepo.Record was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   wronganswer.Mistake
	}{Ctx: ctx, M: m}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, m)
}

func (mock *wrongAnswerRepoMock) RecordCalls() []struct {
	Ctx context.Context
	M   wronganswer.Mistake
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}

func (mock *wrongAnswerRepoMock) DeleteByCardIDs(ctx context.Context, userID uuid.UUID, cardIDs []uuid.UUID) (int64, error) {
	if mock.DeleteByCardIDsFunc == nil {
		panic("wrongAnswerRepoMock.DeleteByCardIDsFunc: method is nil but wrongAnswerRepo.DeleteByCardIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		CardIDs []uuid.UUID
	}{Ctx: ctx, UserID: userID, CardIDs: cardIDs}
	mock.lockDeleteByCardIDs.Lock()
	mock.calls.DeleteByCardIDs = append(mock.calls.DeleteByCardIDs, callInfo)
	mock.lockDeleteByCardIDs.Unlock()
	return mock.DeleteByCardIDsFunc(ctx, userID, cardIDs)
}

func (mock *wrongAnswerRepoMock) DeleteByCardIDsCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	CardIDs []uuid.UUID
} {
	mock.lockDeleteByCardIDs.RLock()
	calls := mock.calls.DeleteByCardIDs
	mock.lockDeleteByCardIDs.RUnlock()
	return calls
}
