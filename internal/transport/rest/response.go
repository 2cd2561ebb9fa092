package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
	"github.com/heartmarshall/srs-review-backend/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

type envelope struct {
	Data   any          `json:"data,omitempty"`
	Error  string       `json:"error,omitempty"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Error: message})
}

// handleError maps a service error to the response envelope. empty is the
// zero value of the endpoint's data, returned with 401 so clients can render
// an empty state.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error, empty any) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		resp := envelope{Error: "validation failed"}
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
			}
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, envelope{Data: empty, Error: "login required"})
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "concurrent update, retry")
	case errors.Is(err, domain.ErrTransient):
		log.WarnContext(r.Context(), "transient failure",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusServiceUnavailable, "temporarily unavailable")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads a JSON body into v. An empty body leaves v untouched.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}

func parseUUIDs(field string, raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return nil, domain.NewValidationError(field, fmt.Sprintf("invalid id %q", s))
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseItemType(field, raw string) (domain.ItemType, error) {
	t := domain.ItemType(strings.ToLower(strings.TrimSpace(raw)))
	if !t.IsValid() {
		return "", domain.NewValidationError(field, "must be vocab, grammar, reading or listening")
	}
	return t, nil
}

// idempotencyKey prefers the body value and falls back to the
// Idempotency-Key header.
func idempotencyKey(r *http.Request, body string) string {
	if k := strings.TrimSpace(body); k != "" {
		return k
	}
	return strings.TrimSpace(r.Header.Get("Idempotency-Key"))
}
