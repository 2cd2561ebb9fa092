package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
	"github.com/heartmarshall/srs-review-backend/internal/service/study"
)

type attemptRequest struct {
	ItemID         string          `json:"itemId"`
	ItemType       string          `json:"itemType"`
	PassageID      string          `json:"passageId"`
	UserAnswer     string          `json:"userAnswer"`
	CorrectAnswer  string          `json:"correctAnswer"`
	IsCorrect      *bool           `json:"isCorrect"`
	AnsweredAt     *time.Time      `json:"answeredAt"`
	IdempotencyKey string          `json:"idempotencyKey"`
	WrongData      json.RawMessage `json:"wrongData"`
}

func (req attemptRequest) toInput(r *http.Request, itemType domain.ItemType) study.SubmitAttemptInput {
	return study.SubmitAttemptInput{
		ItemID:         req.ItemID,
		ItemType:       itemType,
		PassageID:      req.PassageID,
		UserAnswer:     req.UserAnswer,
		CorrectAnswer:  req.CorrectAnswer,
		IsCorrect:      req.IsCorrect,
		AnsweredAt:     req.AnsweredAt,
		IdempotencyKey: idempotencyKey(r, req.IdempotencyKey),
		WrongData:      req.WrongData,
	}
}

// SubmitAttempt handles POST /srs/attempts.
func (h *StudyHandler) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	var req attemptRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	h.submitAttempt(w, r, req.toInput(r, domain.ItemType(req.ItemType)))
}

// RecordListening handles POST /api/japanese-listening/record.
func (h *StudyHandler) RecordListening(w http.ResponseWriter, r *http.Request) {
	var req attemptRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	h.submitAttempt(w, r, req.toInput(r, domain.ItemTypeListening))
}

// SubmitReading handles POST /api/japanese-reading/submit.
func (h *StudyHandler) SubmitReading(w http.ResponseWriter, r *http.Request) {
	var req attemptRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	h.submitAttempt(w, r, req.toInput(r, domain.ItemTypeReading))
}

func (h *StudyHandler) submitAttempt(w http.ResponseWriter, r *http.Request, input study.SubmitAttemptInput) {
	res, err := h.svc.SubmitAttempt(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	writeSubmission(w, res, h.clock.Now())
}

type passageAnswerRequest struct {
	SubQuestionID string `json:"subQuestionId"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     *bool  `json:"isCorrect"`
}

type passageRequest struct {
	PassageID      string                 `json:"passageId"`
	Answers        []passageAnswerRequest `json:"answers"`
	AnsweredAt     *time.Time             `json:"answeredAt"`
	IdempotencyKey string                 `json:"idempotencyKey"`
	WrongData      json.RawMessage        `json:"wrongData"`
}

// SubmitPassage handles POST /api/japanese-reading/submit-passage.
func (h *StudyHandler) SubmitPassage(w http.ResponseWriter, r *http.Request) {
	var req passageRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}

	answers := make([]study.SubQuestionAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, study.SubQuestionAnswer{
			SubQuestionID: a.SubQuestionID,
			UserAnswer:    a.UserAnswer,
			CorrectAnswer: a.CorrectAnswer,
			IsCorrect:     a.IsCorrect,
		})
	}

	res, err := h.svc.SubmitPassage(r.Context(), study.SubmitPassageInput{
		PassageID:      req.PassageID,
		Answers:        answers,
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

// writeSubmission answers 201 for an applied submission and 200 for a replay.
func writeSubmission(w http.ResponseWriter, res *domain.Submission, now time.Time) {
	status := http.StatusCreated
	if res.Duplicate {
		status = http.StatusOK
	}
	writeData(w, status, toSubmissionResponse(res, now))
}
