package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
	"github.com/heartmarshall/srs-review-backend/internal/service/study"
)

type studyService interface {
	GetAvailable(ctx context.Context) (domain.AvailableCards, error)
	BatchReview(ctx context.Context, input study.BatchReviewInput) ([]string, error)
	GetMasteredCards(ctx context.Context) ([]*domain.Card, error)
	GetStreak(ctx context.Context) (domain.Streak, error)
	GetCard(ctx context.Context, itemID string) (study.CardView, error)
	History(ctx context.Context, itemType *domain.ItemType) ([]domain.ConsolidatedRecord, error)
	SubmitAttempt(ctx context.Context, input study.SubmitAttemptInput) (*domain.Submission, error)
	SubmitPassage(ctx context.Context, input study.SubmitPassageInput) (*domain.Submission, error)
	ListFolders(ctx context.Context) ([]domain.Folder, error)
	CreateFolder(ctx context.Context, input study.CreateFolderInput) (*domain.Folder, error)
	AddCardsToFolder(ctx context.Context, input study.AddCardsInput) (int, error)
	DeleteFolder(ctx context.Context, folderID uuid.UUID) error
	DeleteCards(ctx context.Context, input study.DeleteCardsInput) (int, error)
}

type timeSource interface {
	Now() time.Time
}

// StudyHandler serves the review queue, submissions and folders.
type StudyHandler struct {
	svc   studyService
	clock timeSource
	log   *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, clk timeSource, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, clock: clk, log: logger.With("handler", "study")}
}

// Available handles GET /srs/available.
func (h *StudyHandler) Available(w http.ResponseWriter, r *http.Request) {
	avail, err := h.svc.GetAvailable(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, emptyAvailable())
		return
	}
	writeData(w, http.StatusOK, toAvailableResponse(avail, h.clock.Now()))
}

type batchReviewRequest struct {
	Language *string `json:"language"`
}

// BatchReview handles POST /srs/batch-review.
func (h *StudyHandler) BatchReview(w http.ResponseWriter, r *http.Request) {
	var req batchReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}

	var input study.BatchReviewInput
	if req.Language != nil && *req.Language != "" {
		lang := domain.Language(*req.Language)
		input.Language = &lang
	}

	ids, err := h.svc.BatchReview(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err, map[string]any{"itemIds": []string{}})
		return
	}
	writeData(w, http.StatusOK, map[string]any{"itemIds": ids})
}

// Mastered handles GET /srs/mastered-cards.
func (h *StudyHandler) Mastered(w http.ResponseWriter, r *http.Request) {
	cards, err := h.svc.GetMasteredCards(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, []*cardResponse{})
		return
	}
	writeData(w, http.StatusOK, toCardResponses(cards, h.clock.Now()))
}

// Streak handles GET /srs/streak.
func (h *StudyHandler) Streak(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.GetStreak(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, streakResponse{})
		return
	}
	writeData(w, http.StatusOK, streakResponse{Streak: s.Streak, DailyQuizCount: s.DailyQuizCount})
}

// Card handles GET /srs/cards/{itemId}.
func (h *StudyHandler) Card(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetCard(r.Context(), r.PathValue("itemId"))
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	writeData(w, http.StatusOK, toCardViewResponse(view, h.clock.Now()))
}

// History handles GET /srs/history?type=.
func (h *StudyHandler) History(w http.ResponseWriter, r *http.Request) {
	var filter *domain.ItemType
	if raw := r.URL.Query().Get("type"); raw != "" {
		t, err := parseItemType("type", raw)
		if err != nil {
			handleError(h.log, w, r, err, nil)
			return
		}
		filter = &t
	}

	records, err := h.svc.History(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err, []*statsResponse{})
		return
	}
	writeData(w, http.StatusOK, toHistoryResponse(records))
}
