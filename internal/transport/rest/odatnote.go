package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
	"github.com/heartmarshall/srs-review-backend/internal/service/odatnote"
)

type noteService interface {
	Categories(ctx context.Context) ([]domain.CategoryCount, error)
	List(ctx context.Context, itemType domain.ItemType) ([]domain.WrongAnswerEntry, error)
	Create(ctx context.Context, input odatnote.CreateInput) (*domain.Submission, error)
	DeleteMultiple(ctx context.Context, input odatnote.DeleteInput) (int, error)
	Export(ctx context.Context, itemType domain.ItemType, w io.Writer) error
}

// NoteHandler serves the wrong-answer notebook.
type NoteHandler struct {
	svc   noteService
	clock timeSource
	log   *slog.Logger
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(svc noteService, clk timeSource, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{svc: svc, clock: clk, log: logger.With("handler", "odatnote")}
}

// Categories handles GET /api/odat-note/categories.
func (h *NoteHandler) Categories(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.Categories(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, []categoryResponse{})
		return
	}
	out := make([]categoryResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, categoryResponse{Type: string(c.Type), Total: c.Total, Active: c.Active})
	}
	writeData(w, http.StatusOK, out)
}

// List handles GET /api/odat-note/list?type=.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	t, err := parseItemType("type", r.URL.Query().Get("type"))
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	entries, err := h.svc.List(r.Context(), t)
	if err != nil {
		handleError(h.log, w, r, err, []wrongAnswerResponse{})
		return
	}
	writeData(w, http.StatusOK, toWrongAnswerResponses(entries, h.clock.Now()))
}

// Export handles GET /api/odat-note/export?type=. The workbook is buffered so
// a failure still answers with the error envelope.
func (h *NoteHandler) Export(w http.ResponseWriter, r *http.Request) {
	t, err := parseItemType("type", r.URL.Query().Get("type"))
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}

	var buf bytes.Buffer
	if err := h.svc.Export(r.Context(), t, &buf); err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}

	name := fmt.Sprintf("odat-note-%s-%s.xlsx", t, h.clock.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w) //nolint:errcheck
}

type createNoteRequest struct {
	ItemID         string          `json:"itemId"`
	Type           string          `json:"type"`
	PassageID      string          `json:"passageId"`
	UserAnswer     string          `json:"userAnswer"`
	CorrectAnswer  string          `json:"correctAnswer"`
	AnsweredAt     *time.Time      `json:"answeredAt"`
	IdempotencyKey string          `json:"idempotencyKey"`
	WrongData      json.RawMessage `json:"wrongData"`
}

// Create handles POST /api/odat-note.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}

	res, err := h.svc.Create(r.Context(), odatnote.CreateInput{
		ItemID:         req.ItemID,
		Type:           domain.ItemType(req.Type),
		PassageID:      req.PassageID,
		UserAnswer:     req.UserAnswer,
		CorrectAnswer:  req.CorrectAnswer,
		AnsweredAt:     req.AnsweredAt,
		IdempotencyKey: idempotencyKey(r, req.IdempotencyKey),
		WrongData:      req.WrongData,
	})
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	writeSubmission(w, res, h.clock.Now())
}

type deleteNotesRequest struct {
	WrongAnswerIDs []string `json:"wrongAnswerIds"`
}

// DeleteMultiple handles POST /srs/wrong-answers/delete-multiple.
func (h *NoteHandler) DeleteMultiple(w http.ResponseWriter, r *http.Request) {
	var req deleteNotesRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	ids, err := parseUUIDs("wrong_answer_ids", req.WrongAnswerIDs)
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}

	n, err := h.svc.DeleteMultiple(r.Context(), odatnote.DeleteInput{IDs: ids})
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	writeData(w, http.StatusOK, countResponse{Count: n})
}
