package rest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
	"github.com/heartmarshall/srs-review-backend/internal/notify"
	"github.com/heartmarshall/srs-review-backend/pkg/ctxutil"
)

const keepAliveInterval = 25 * time.Second

// EventsHandler streams change notifications as server-sent events.
type EventsHandler struct {
	bus       *notify.Bus
	keepAlive time.Duration
	log       *slog.Logger
}

// NewEventsHandler creates an EventsHandler.
func NewEventsHandler(bus *notify.Bus, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{bus: bus, keepAlive: keepAliveInterval, log: logger.With("handler", "events")}
}

// Stream handles GET /events?resources=card,folder. Without resources every
// change of the session user is sent.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		handleError(h.log, w, r, domain.ErrUnauthorized, nil)
		return
	}

	var resources []domain.ResourceType
	if raw := r.URL.Query().Get("resources"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			rt := domain.ResourceType(strings.TrimSpace(name))
			if !rt.IsValid() {
				handleError(h.log, w, r, domain.NewValidationError("resources", fmt.Sprintf("unknown resource %q", name)), nil)
				return
			}
			resources = append(resources, rt)
		}
	}

	rc := http.NewResponseController(w)
	// Streams outlive the server write timeout.
	_ = rc.SetWriteDeadline(time.Time{})

	sub := h.bus.Subscribe(userID.String(), resources...)
	defer sub.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, ": connected\n\n")
	if err := rc.Flush(); err != nil {
		h.log.WarnContext(r.Context(), "streaming not supported", slog.String("error", err.Error()))
		return
	}

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			fmt.Fprint(w, ": ping\n\n")
		case c, ok := <-sub.C():
			if !ok {
				return
			}
			data, err := json.Marshal(c)
			if err != nil {
				h.log.ErrorContext(r.Context(), "marshal change", slog.String("error", err.Error()))
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", c.Resource, data)
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}
