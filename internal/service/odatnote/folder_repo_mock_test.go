package odatnote

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
)

var _ folderRepo = &folderRepoMock{}

type folderRepoMock struct {
	RemoveCardsFunc   func(ctx context.Context, cardIDs []uuid.UUID, wrongAnswerOnly bool) (int64, error)
	RefsByCardIDsFunc func(ctx context.Context, cardIDs []uuid.UUID) (map[uuid.UUID][]domain.FolderRef, error)

	calls struct {
		RemoveCards []struct {
			Ctx             context.Context
			CardIDs         []uuid.UUID
			WrongAnswerOnly bool
		}
		RefsByCardIDs []struct {
			Ctx     context.Context
			CardIDs []uuid.UUID
		}
	}
	lockRemoveCards   sync.RWMutex
	lockRefsByCardIDs sync.RWMutex
}

func (mock *folderRepoMock) RemoveCards(ctx context.Context, cardIDs []uuid.UUID, wrongAnswerOnly bool) (int64, error) {
	if mock.RemoveCardsFunc == nil {
		panic("folderRepoMock.RemoveCardsFunc: method is nil but folderRepo.RemoveCards was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		CardIDs         []uuid.UUID
		WrongAnswerOnly bool
	}{Ctx: ctx, CardIDs: cardIDs, WrongAnswerOnly: wrongAnswerOnly}
	mock.lockRemoveCards.Lock()
	mock.calls.RemoveCards = append(mock.calls.RemoveCards, callInfo)
	mock.lockRemoveCards.Unlock()
	return mock.RemoveCardsFunc(ctx, cardIDs, wrongAnswerOnly)
}

func (mock *folderRepoMock) RemoveCardsCalls() []struct {
	Ctx             context.Context
	CardIDs         []uuid.UUID
	WrongAnswerOnly bool
} {
	mock.lockRemoveCards.RLock()
	calls := mock.calls.RemoveCards
	mock.lockRemoveCards.RUnlock()
	return calls
}

func (mock *folderRepoMock) RefsByCardIDs(ctx context.Context, cardIDs []uuid.UUID) (map[uuid.UUID][]domain.FolderRef, error) {
	if mock.RefsByCardIDsFunc == nil {
		panic("folderRepoMock.RefsByCardIDsFunc: method is nil but folderRepo.RefsByCardIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		CardIDs []uuid.UUID
	}{Ctx: ctx, CardIDs: cardIDs}
	mock.lockRefsByCardIDs.Lock()
	mock.calls.RefsByCardIDs = append(mock.calls.RefsByCardIDs, callInfo)
	mock.lockRefsByCardIDs.Unlock()
	return mock.RefsByCardIDsFunc(ctx, cardIDs)
}

func (mock *folderRepoMock) RefsByCardIDsCalls() []struct {
	Ctx     context.Context
	CardIDs []uuid.UUID
} {
	mock.lockRefsByCardIDs.RLock()
	calls := mock.calls.RefsByCardIDs
	mock.lockRefsByCardIDs.RUnlock()
	return calls
}
