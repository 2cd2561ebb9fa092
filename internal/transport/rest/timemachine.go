package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
	"github.com/heartmarshall/srs-review-backend/internal/service/timemachine"
)

type timeMachineService interface {
	Get(ctx context.Context) (timemachine.State, error)
	Set(ctx context.Context, days int) (timemachine.State, error)
	Reset(ctx context.Context) (timemachine.State, error)
	EmergencyFix(ctx context.Context) (int64, error)
}

// TimeMachineHandler serves the admin clock controls.
type TimeMachineHandler struct {
	svc timeMachineService
	log *slog.Logger
}

// NewTimeMachineHandler creates a TimeMachineHandler.
func NewTimeMachineHandler(svc timeMachineService, logger *slog.Logger) *TimeMachineHandler {
	return &TimeMachineHandler{svc: svc, log: logger.With("handler", "timemachine")}
}

// Get handles GET /time-machine.
func (h *TimeMachineHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Get(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	writeData(w, http.StatusOK, toTimeMachineResponse(st))
}

type setOffsetRequest struct {
	DayOffset *int `json:"dayOffset"`
}

// Set handles POST /time-machine/set.
func (h *TimeMachineHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req setOffsetRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	if req.DayOffset == nil {
		handleError(h.log, w, r, domain.NewValidationError("day_offset", "required"), nil)
		return
	}

	st, err := h.svc.Set(r.Context(), *req.DayOffset)
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	writeData(w, http.StatusOK, toTimeMachineResponse(st))
}

// Reset handles POST /time-machine/reset.
func (h *TimeMachineHandler) Reset(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Reset(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	writeData(w, http.StatusOK, toTimeMachineResponse(st))
}

// EmergencyFix handles POST /time-machine/emergency-fix.
func (h *TimeMachineHandler) EmergencyFix(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.EmergencyFix(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	writeData(w, http.StatusOK, map[string]int64{"released": n})
}
