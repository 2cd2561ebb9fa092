package rest

import (
	"context"
	"net/http"
	"time"
)

// pingTimeout bounds a database probe.
const pingTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

type offsetClock interface {
	Now() time.Time
	Offset() int
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db      dbPinger
	clock   offsetClock
	version string
	started time.Time
	realNow func() time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, clk offsetClock, version string) *HealthHandler {
	return &HealthHandler{db: db, clock: clk, version: version, started: time.Now(), realNow: time.Now}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status    string     `json:"status"`
	Latency   string     `json:"latency,omitempty"`
	Error     string     `json:"error,omitempty"`
	DayOffset *int       `json:"dayOffset,omitempty"`
	Now       *time.Time `json:"now,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.realNow().UTC()})
}

// Ready answers 200 when the database responds and 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.checkDB(r.Context())
	writeJSON(w, statusCode(db.Status), HealthResponse{Status: db.Status, Timestamp: h.realNow().UTC()})
}

// Health reports every component with the build version. A shifted clock is
// reported but never makes the service unhealthy.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.checkDB(r.Context())

	offset, now := h.clock.Offset(), h.clock.Now().UTC()
	realNow := h.realNow().UTC()

	writeJSON(w, statusCode(db.Status), HealthResponse{
		Status:  db.Status,
		Version: h.version,
		Uptime:  realNow.Sub(h.started).Truncate(time.Second).String(),
		Components: map[string]CompStatus{
			"database": db,
			"clock":    {Status: "ok", DayOffset: &offset, Now: &now},
		},
		Timestamp: realNow,
	})
}

func (h *HealthHandler) checkDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down", Error: err.Error()}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func statusCode(status string) int {
	if status == "ok" {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
