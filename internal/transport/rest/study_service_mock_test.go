package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/srs-review-backend/internal/domain"
	"github.com/heartmarshall/srs-review-backend/internal/service/study"
	"sync"
)

var _ studyService = &studyServiceMock{}

type studyServiceMock struct {
	GetAvailableFunc     func(ctx context.Context) (domain.AvailableCards, error)
	BatchReviewFunc      func(ctx context.Context, input study.BatchReviewInput) ([]string, error)
	GetMasteredCardsFunc func(ctx context.Context) ([]*domain.Card, error)
	GetStreakFunc        func(ctx context.Context) (domain.Streak, error)
	GetCardFunc          func(ctx context.Context, itemID string) (study.CardView, error)
	HistoryFunc          func(ctx context.Context, itemType *domain.ItemType) ([]domain.ConsolidatedRecord, error)
	SubmitAttemptFunc    func(ctx context.Context, input study.SubmitAttemptInput) (*domain.Submission, error)
	SubmitPassageFunc    func(ctx context.Context, input study.SubmitPassageInput) (*domain.Submission, error)
	ListFoldersFunc      func(ctx context.Context) ([]domain.Folder, error)
	CreateFolderFunc     func(ctx context.Context, input study.CreateFolderInput) (*domain.Folder, error)
	AddCardsToFolderFunc func(ctx context.Context, input study.AddCardsInput) (int, error)
	DeleteFolderFunc     func(ctx context.Context, folderID uuid.UUID) error
	DeleteCardsFunc      func(ctx context.Context, input study.DeleteCardsInput) (int, error)

	calls struct {
		GetAvailable []struct {
			Ctx context.Context
		}
		BatchReview []struct {
			Ctx   context.Context
			Input study.BatchReviewInput
		}
		GetMasteredCards []struct {
			Ctx context.Context
		}
		GetStreak []struct {
			Ctx context.Context
		}
		GetCard []struct {
			Ctx    context.Context
			ItemID string
		}
		History []struct {
			Ctx      context.Context
			ItemType *domain.ItemType
		}
		SubmitAttempt []struct {
			Ctx   context.Context
			Input study.SubmitAttemptInput
		}
		SubmitPassage []struct {
			Ctx   context.Context
			Input study.SubmitPassageInput
		}
		ListFolders []struct {
			Ctx context.Context
		}
		CreateFolder []struct {
			Ctx   context.Context
			Input study.CreateFolderInput
		}
		AddCardsToFolder []struct {
			Ctx   context.Context
			Input study.AddCardsInput
		}
		DeleteFolder []struct {
			Ctx      context.Context
			FolderID uuid.UUID
		}
		DeleteCards []struct {
			Ctx   context.Context
			Input study.DeleteCardsInput
		}
	}
	lockGetAvailable     sync.RWMutex
	lockBatchReview      sync.RWMutex
	lockGetMasteredCards sync.RWMutex
	lockGetStreak        sync.RWMutex
	lockGetCard          sync.RWMutex
	lockHistory          sync.RWMutex
	lockSubmitAttempt    sync.RWMutex
	lockSubmitPassage    sync.RWMutex
	lockListFolders      sync.RWMutex
	lockCreateFolder     sync.RWMutex
	lockAddCardsToFolder sync.RWMutex
	lockDeleteFolder     sync.RWMutex
	lockDeleteCards      sync.RWMutex
}

func (mock *studyServiceMock) GetAvailable(ctx context.Context) (domain.AvailableCards, error) {
	if mock.GetAvailableFunc == nil {
		panic("studyServiceMock.GetAvailableFunc: method is nil but studyService.GetAvailable was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockGetAvailable.Lock()
	mock.calls.GetAvailable = append(mock.calls.GetAvailable, callInfo)
	mock.lockGetAvailable.Unlock()
	return mock.GetAvailableFunc(ctx)
}

func (mock *studyServiceMock) GetAvailableCalls() []struct{ Ctx context.Context } {
	mock.lockGetAvailable.RLock()
	calls := mock.calls.GetAvailable
	mock.lockGetAvailable.RUnlock()
	return calls
}

func (mock *studyServiceMock) BatchReview(ctx context.Context, input study.BatchReviewInput) ([]string, error) {
	if mock.BatchReviewFunc == nil {
		panic("studyServiceMock.BatchReviewFunc: method is nil but studyService.BatchReview was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.BatchReviewInput
	}{Ctx: ctx, Input: input}
	mock.lockBatchReview.Lock()
	mock.calls.BatchReview = append(mock.calls.BatchReview, callInfo)
	mock.lockBatchReview.Unlock()
	return mock.BatchReviewFunc(ctx, input)
}

func (mock *studyServiceMock) BatchReviewCalls() []struct {
	Ctx   context.Context
	Input study.BatchReviewInput
} {
	mock.lockBatchReview.RLock()
	calls := mock.calls.BatchReview
	mock.lockBatchReview.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetMasteredCards(ctx context.Context) ([]*domain.Card, error) {
	if mock.GetMasteredCardsFunc == nil {
		panic("studyServiceMock.GetMasteredCardsFunc: method is nil but studyService.GetMasteredCards was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockGetMasteredCards.Lock()
	mock.calls.GetMasteredCards = append(mock.calls.GetMasteredCards, callInfo)
	mock.lockGetMasteredCards.Unlock()
	return mock.GetMasteredCardsFunc(ctx)
}

func (mock *studyServiceMock) GetMasteredCardsCalls() []struct{ Ctx context.Context } {
	mock.lockGetMasteredCards.RLock()
	calls := mock.calls.GetMasteredCards
	mock.lockGetMasteredCards.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetStreak(ctx context.Context) (domain.Streak, error) {
	if mock.GetStreakFunc == nil {
		panic("studyServiceMock.GetStreakFunc: method is nil but studyService.GetStreak was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockGetStreak.Lock()
	mock.calls.GetStreak = append(mock.calls.GetStreak, callInfo)
	mock.lockGetStreak.Unlock()
	return mock.GetStreakFunc(ctx)
}

func (mock *studyServiceMock) GetStreakCalls() []struct{ Ctx context.Context } {
	mock.lockGetStreak.RLock()
	calls := mock.calls.GetStreak
	mock.lockGetStreak.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetCard(ctx context.Context, itemID string) (study.CardView, error) {
	if mock.GetCardFunc == nil {
		panic("studyServiceMock.GetCardFunc: method is nil but studyService.GetCard was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID string
	}{Ctx: ctx, ItemID: itemID}
	mock.lockGetCard.Lock()
	mock.calls.GetCard = append(mock.calls.GetCard, callInfo)
	mock.lockGetCard.Unlock()
	return mock.GetCardFunc(ctx, itemID)
}

func (mock *studyServiceMock) GetCardCalls() []struct {
	Ctx    context.Context
	ItemID string
} {
	mock.lockGetCard.RLock()
	calls := mock.calls.GetCard
	mock.lockGetCard.RUnlock()
	return calls
}

func (mock *studyServiceMock) History(ctx context.Context, itemType *domain.ItemType) ([]domain.ConsolidatedRecord, error) {
	if mock.HistoryFunc == nil {
		panic("studyServiceMock.HistoryFunc: method is nil but studyService.History was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ItemType *domain.ItemType
	}{Ctx: ctx, ItemType: itemType}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, itemType)
}

func (mock *studyServiceMock) HistoryCalls() []struct {
	Ctx      context.Context
	ItemType *domain.ItemType
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

func (mock *studyServiceMock) SubmitAttempt(ctx context.Context, input study.SubmitAttemptInput) (*domain.Submission, error) {
	if mock.SubmitAttemptFunc == nil {
		panic("studyServiceMock.SubmitAttemptFunc: method is nil but studyService.SubmitAttempt was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.SubmitAttemptInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmitAttempt.Lock()
	mock.calls.SubmitAttempt = append(mock.calls.SubmitAttempt, callInfo)
	mock.lockSubmitAttempt.Unlock()
	return mock.SubmitAttemptFunc(ctx, input)
}

func (mock *studyServiceMock) SubmitAttemptCalls() []struct {
	Ctx   context.Context
	Input study.SubmitAttemptInput
} {
	mock.lockSubmitAttempt.RLock()
	calls := mock.calls.SubmitAttempt
	mock.lockSubmitAttempt.RUnlock()
	return calls
}

func (mock *studyServiceMock) SubmitPassage(ctx context.Context, input study.SubmitPassageInput) (*domain.Submission, error) {
	if mock.SubmitPassageFunc == nil {
		panic("studyServiceMock.SubmitPassageFunc: method is nil but studyService.SubmitPassage was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.SubmitPassageInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmitPassage.Lock()
	mock.calls.SubmitPassage = append(mock.calls.SubmitPassage, callInfo)
	mock.lockSubmitPassage.Unlock()
	return mock.SubmitPassageFunc(ctx, input)
}

func (mock *studyServiceMock) SubmitPassageCalls() []struct {
	Ctx   context.Context
	Input study.SubmitPassageInput
} {
	mock.lockSubmitPassage.RLock()
	calls := mock.calls.SubmitPassage
	mock.lockSubmitPassage.RUnlock()
	return calls
}

func (mock *studyServiceMock) ListFolders(ctx context.Context) ([]domain.Folder, error) {
	if mock.ListFoldersFunc == nil {
		panic("studyServiceMock.ListFoldersFunc: method is nil but studyService.ListFolders was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListFolders.Lock()
	mock.calls.ListFolders = append(mock.calls.ListFolders, callInfo)
	mock.lockListFolders.Unlock()
	return mock.ListFoldersFunc(ctx)
}

func (mock *studyServiceMock) ListFoldersCalls() []struct{ Ctx context.Context } {
	mock.lockListFolders.RLock()
	calls := mock.calls.ListFolders
	mock.lockListFolders.RUnlock()
	return calls
}

func (mock *studyServiceMock) CreateFolder(ctx context.Context, input study.CreateFolderInput) (*domain.Folder, error) {
	if mock.CreateFolderFunc == nil {
		panic("studyServiceMock.CreateFolderFunc: method is nil but studyService.CreateFolder was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.CreateFolderInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateFolder.Lock()
	mock.calls.CreateFolder = append(mock.calls.CreateFolder, callInfo)
	mock.lockCreateFolder.Unlock()
	return mock.CreateFolderFunc(ctx, input)
}

func (mock *studyServiceMock) CreateFolderCalls() []struct {
	Ctx   context.Context
	Input study.CreateFolderInput
} {
	mock.lockCreateFolder.RLock()
	calls := mock.calls.CreateFolder
	mock.lockCreateFolder.RUnlock()
	return calls
}

func (mock *studyServiceMock) AddCardsToFolder(ctx context.Context, input study.AddCardsInput) (int, error) {
	if mock.AddCardsToFolderFunc == nil {
		panic("studyServiceMock.AddCardsToFolderFunc: method is nil but studyService.AddCardsToFolder was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.AddCardsInput
	}{Ctx: ctx, Input: input}
	mock.lockAddCardsToFolder.Lock()
	mock.calls.AddCardsToFolder = append(mock.calls.AddCardsToFolder, callInfo)
	mock.lockAddCardsToFolder.Unlock()
	return mock.AddCardsToFolderFunc(ctx, input)
}

func (mock *studyServiceMock) AddCardsToFolderCalls() []struct {
	Ctx   context.Context
	Input study.AddCardsInput
} {
	mock.lockAddCardsToFolder.RLock()
	calls := mock.calls.AddCardsToFolder
	mock.lockAddCardsToFolder.RUnlock()
	return calls
}

func (mock *studyServiceMock) DeleteFolder(ctx context.Context, folderID uuid.UUID) error {
	if mock.DeleteFolderFunc == nil {
		panic("studyServiceMock.DeleteFolderFunc: method is nil but studyService.DeleteFolder was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		FolderID uuid.UUID
	}{Ctx: ctx, FolderID: folderID}
	mock.lockDeleteFolder.Lock()
	mock.calls.DeleteFolder = append(mock.calls.DeleteFolder, callInfo)
	mock.lockDeleteFolder.Unlock()
	return mock.DeleteFolderFunc(ctx, folderID)
}

func (mock *studyServiceMock) DeleteFolderCalls() []struct {
	Ctx      context.Context
	FolderID uuid.UUID
} {
	mock.lockDeleteFolder.RLock()
	calls := mock.calls.DeleteFolder
	mock.lockDeleteFolder.RUnlock()
	return calls
}

func (mock *studyServiceMock) DeleteCards(ctx context.Context, input study.DeleteCardsInput) (int, error) {
	if mock.DeleteCardsFunc == nil {
		panic("studyServiceMock.DeleteCardsFunc: method is nil but studyService.DeleteCards was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.DeleteCardsInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteCards.Lock()
	mock.calls.DeleteCards = append(mock.calls.DeleteCards, callInfo)
	mock.lockDeleteCards.Unlock()
	return mock.DeleteCardsFunc(ctx, input)
}

func (mock *studyServiceMock) DeleteCardsCalls() []struct {
	Ctx   context.Context
	Input study.DeleteCardsInput
} {
	mock.lockDeleteCards.RLock()
	calls := mock.calls.DeleteCards
	mock.lockDeleteCards.RUnlock()
	return calls
}
