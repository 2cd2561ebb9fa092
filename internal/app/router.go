package app

import (
	"net/http"

	"github.com/heartmarshall/srs-review-backend/internal/transport/middleware"
	"github.com/heartmarshall/srs-review-backend/internal/transport/rest"
)

type handlers struct {
	health *rest.HealthHandler
	study  *rest.StudyHandler
	notes  *rest.NoteHandler
	clock  *rest.TimeMachineHandler
	events *rest.EventsHandler
}

func newMux(h handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.health.Live)
	mux.HandleFunc("GET /ready", h.health.Ready)
	mux.HandleFunc("GET /health", h.health.Health)

	mux.HandleFunc("GET /srs/available", h.study.Available)
	mux.HandleFunc("GET /srs/mastered-cards", h.study.Mastered)
	mux.HandleFunc("GET /srs/streak", h.study.Streak)
	mux.HandleFunc("GET /srs/cards/{itemId}", h.study.Card)
	mux.HandleFunc("GET /srs/history", h.study.History)
	mux.HandleFunc("POST /srs/attempts", h.study.SubmitAttempt)
	mux.HandleFunc("POST /srs/batch-review", h.study.BatchReview)
	mux.HandleFunc("GET /srs/folders", h.study.ListFolders)
	mux.HandleFunc("POST /srs/folders", h.study.CreateFolder)
	mux.HandleFunc("POST /srs/folders/{id}/cards", h.study.AddCards)
	mux.HandleFunc("DELETE /srs/folders/{id}", h.study.DeleteFolder)
	mux.HandleFunc("POST /srs/cards/delete-multiple", h.study.DeleteCards)
	mux.HandleFunc("POST /srs/wrong-answers/delete-multiple", h.notes.DeleteMultiple)

	mux.HandleFunc("POST /api/japanese-listening/record", h.study.RecordListening)
	mux.HandleFunc("POST /api/japanese-reading/submit", h.study.SubmitReading)
	mux.HandleFunc("POST /api/japanese-reading/submit-passage", h.study.SubmitPassage)

	mux.HandleFunc("GET /api/odat-note/categories", h.notes.Categories)
	mux.HandleFunc("GET /api/odat-note/list", h.notes.List)
	mux.HandleFunc("GET /api/odat-note/export", h.notes.Export)
	mux.HandleFunc("POST /api/odat-note", h.notes.Create)

	mux.Handle("GET /time-machine", middleware.RequireAdmin(http.HandlerFunc(h.clock.Get)))
	mux.Handle("POST /time-machine/set", middleware.RequireAdmin(http.HandlerFunc(h.clock.Set)))
	mux.Handle("POST /time-machine/reset", middleware.RequireAdmin(http.HandlerFunc(h.clock.Reset)))
	mux.Handle("POST /time-machine/emergency-fix", middleware.RequireAdmin(http.HandlerFunc(h.clock.EmergencyFix)))

	mux.HandleFunc("GET /events", h.events.Stream)

	return mux
}
