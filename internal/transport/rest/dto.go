package rest

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
	"github.com/heartmarshall/srs-review-backend/internal/service/study"
	"github.com/heartmarshall/srs-review-backend/internal/service/study/ladder"
	"github.com/heartmarshall/srs-review-backend/internal/service/timemachine"
)

type folderRefResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	ParentID            *string `json:"parentId,omitempty"`
	ParentName          *string `json:"parentName,omitempty"`
	IsWrongAnswerFolder bool    `json:"isWrongAnswerFolder"`
}

type cardResponse struct {
	ID                string              `json:"id"`
	ItemID            string              `json:"itemId"`
	ItemType          string              `json:"itemType"`
	Stage             int                 `json:"stage"`
	Label             string              `json:"label"`
	NextReviewAt      *time.Time          `json:"nextReviewAt"`
	WaitingUntil      *time.Time          `json:"waitingUntil"`
	OverdueDeadline   *time.Time          `json:"overdueDeadline"`
	IsOverdue         bool                `json:"isOverdue"`
	FrozenUntil       *time.Time          `json:"frozenUntil"`
	IsFromWrongAnswer bool                `json:"isFromWrongAnswer"`
	IsMastered        bool                `json:"isMastered"`
	MasterCycles      int                 `json:"masterCycles"`
	MasteredAt        *time.Time          `json:"masteredAt"`
	CorrectTotal      int                 `json:"correctTotal"`
	WrongTotal        int                 `json:"wrongTotal"`
	LastAttemptAt     *time.Time          `json:"lastAttemptAt"`
	LastWrongAt       *time.Time          `json:"lastWrongAt"`
	DailyWrongCount   int                 `json:"dailyWrongCount"`
	Version           int                 `json:"version"`
	Folders           []folderRefResponse `json:"folders"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

func toCardResponse(c *domain.Card, now time.Time) *cardResponse {
	if c == nil {
		return nil
	}
	folders := make([]folderRefResponse, 0, len(c.Folders))
	for _, f := range c.Folders {
		folders = append(folders, folderRefResponse{
			ID:                  f.ID.String(),
			Name:                f.Name,
			ParentID:            uuidString(f.ParentID),
			ParentName:          f.ParentName,
			IsWrongAnswerFolder: f.IsWrongAnswerFolder,
		})
	}
	return &cardResponse{
		ID:                c.ID.String(),
		ItemID:            c.ItemID,
		ItemType:          string(c.ItemType),
		Stage:             c.Stage,
		Label:             string(ladder.Classify(c, now)),
		NextReviewAt:      c.NextReviewAt,
		WaitingUntil:      c.WaitingUntil,
		OverdueDeadline:   c.OverdueDeadline,
		IsOverdue:         c.IsOverdue,
		FrozenUntil:       c.FrozenUntil,
		IsFromWrongAnswer: c.IsFromWrongAnswer,
		IsMastered:        c.IsMastered,
		MasterCycles:      c.MasterCycles,
		MasteredAt:        c.MasteredAt,
		CorrectTotal:      c.CorrectTotal,
		WrongTotal:        c.WrongTotal,
		LastAttemptAt:     c.LastAttemptAt,
		LastWrongAt:       c.LastWrongAt,
		DailyWrongCount:   c.DailyWrongCount,
		Version:           c.Version,
		Folders:           folders,
		UpdatedAt:         c.UpdatedAt,
	}
}

func toCardResponses(cards []*domain.Card, now time.Time) []*cardResponse {
	out := make([]*cardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, toCardResponse(c, now))
	}
	return out
}

type availableResponse struct {
	Total                int             `json:"total"`
	Japanese             []*cardResponse `json:"japanese"`
	English              []*cardResponse `json:"english"`
	HasMultipleLanguages bool            `json:"hasMultipleLanguages"`
}

func emptyAvailable() availableResponse {
	return availableResponse{Japanese: []*cardResponse{}, English: []*cardResponse{}}
}

func toAvailableResponse(a domain.AvailableCards, now time.Time) availableResponse {
	return availableResponse{
		Total:                a.Total,
		Japanese:             toCardResponses(a.Japanese, now),
		English:              toCardResponses(a.English, now),
		HasMultipleLanguages: a.HasMultipleLanguages,
	}
}

type streakResponse struct {
	Streak         int `json:"streak"`
	DailyQuizCount int `json:"dailyQuizCount"`
}

type statsResponse struct {
	Key            string    `json:"key"`
	ItemType       string    `json:"itemType"`
	CorrectCount   int       `json:"correctCount"`
	IncorrectCount int       `json:"incorrectCount"`
	TotalAttempts  int       `json:"totalAttempts"`
	LastResult     string    `json:"lastResult"`
	SolvedAt       time.Time `json:"solvedAt"`
}

func toStatsResponse(r *domain.ConsolidatedRecord) *statsResponse {
	if r == nil {
		return nil
	}
	return &statsResponse{
		Key:            r.Key,
		ItemType:       string(r.ItemType),
		CorrectCount:   r.CorrectCount,
		IncorrectCount: r.IncorrectCount,
		TotalAttempts:  r.TotalAttempts,
		LastResult:     string(r.LastResult),
		SolvedAt:       r.SolvedAt,
	}
}

func toHistoryResponse(records []domain.ConsolidatedRecord) []*statsResponse {
	out := make([]*statsResponse, 0, len(records))
	for i := range records {
		out = append(out, toStatsResponse(&records[i]))
	}
	return out
}

type cardViewResponse struct {
	Card      *cardResponse  `json:"card"`
	Label     string         `json:"label"`
	Deadline  *time.Time     `json:"deadline"`
	Remaining string         `json:"remaining,omitempty"`
	Stats     *statsResponse `json:"stats"`
}

func toCardViewResponse(v study.CardView, now time.Time) cardViewResponse {
	return cardViewResponse{
		Card:      toCardResponse(v.Card, now),
		Label:     string(v.Label),
		Deadline:  v.Deadline,
		Remaining: v.Remaining,
		Stats:     toStatsResponse(v.Stats),
	}
}

type eventResponse struct {
	ID            string    `json:"id"`
	ItemID        string    `json:"itemId"`
	ItemType      string    `json:"itemType"`
	PassageID     string    `json:"passageId,omitempty"`
	SubQuestionID string    `json:"subQuestionId,omitempty"`
	UserAnswer    string    `json:"userAnswer"`
	CorrectAnswer string    `json:"correctAnswer"`
	IsCorrect     bool      `json:"isCorrect"`
	AnsweredAt    time.Time `json:"answeredAt"`
}

type submissionResponse struct {
	Card      *cardResponse   `json:"card"`
	Label     string          `json:"label"`
	Duplicate bool            `json:"duplicate"`
	Events    []eventResponse `json:"events"`
}

func toSubmissionResponse(s *domain.Submission, now time.Time) submissionResponse {
	events := make([]eventResponse, 0, len(s.Events))
	for _, e := range s.Events {
		events = append(events, eventResponse{
			ID:            e.ID.String(),
			ItemID:        e.ItemID,
			ItemType:      string(e.ItemType),
			PassageID:     e.PassageID,
			SubQuestionID: e.SubQuestionID,
			UserAnswer:    e.UserAnswer,
			CorrectAnswer: e.CorrectAnswer,
			IsCorrect:     e.IsCorrect,
			AnsweredAt:    e.AnsweredAt,
		})
	}
	return submissionResponse{
		Card:      toCardResponse(s.Card, now),
		Label:     string(s.Label),
		Duplicate: s.Duplicate,
		Events:    events,
	}
}

type folderResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	ParentID            *string   `json:"parentId,omitempty"`
	IsWrongAnswerFolder bool      `json:"isWrongAnswerFolder"`
	CardCount           int       `json:"cardCount"`
	CreatedAt           time.Time `json:"createdAt"`
}

func toFolderResponse(f *domain.Folder) folderResponse {
	return folderResponse{
		ID:                  f.ID.String(),
		Name:                f.Name,
		ParentID:            uuidString(f.ParentID),
		IsWrongAnswerFolder: f.IsWrongAnswerFolder,
		CardCount:           f.CardCount,
		CreatedAt:           f.CreatedAt,
	}
}

type categoryResponse struct {
	Type   string `json:"type"`
	Total  int    `json:"total"`
	Active int    `json:"active"`
}

type wrongAttemptResponse struct {
	WrongAt     time.Time `json:"wrongAt"`
	StageAtTime int       `json:"stageAtTime"`
}

type wrongAnswerResponse struct {
	ID                 string                 `json:"id"`
	ItemID             string                 `json:"itemId"`
	Type               string                 `json:"type"`
	CardID             *string                `json:"cardId"`
	WrongData          json.RawMessage        `json:"wrongData"`
	WrongAt            time.Time              `json:"wrongAt"`
	TotalWrongAttempts int                    `json:"totalWrongAttempts"`
	History            []wrongAttemptResponse `json:"history"`
	ReviewWindowStart  *time.Time             `json:"reviewWindowStart"`
	ReviewWindowEnd    *time.Time             `json:"reviewWindowEnd"`
	CanReview          bool                   `json:"canReview"`
	Card               *cardResponse          `json:"card"`
	Stats              *statsResponse         `json:"stats"`
}

func toWrongAnswerResponses(entries []domain.WrongAnswerEntry, now time.Time) []wrongAnswerResponse {
	out := make([]wrongAnswerResponse, 0, len(entries))
	for _, e := range entries {
		history := make([]wrongAttemptResponse, 0, len(e.History))
		for _, h := range e.History {
			history = append(history, wrongAttemptResponse{WrongAt: h.WrongAt, StageAtTime: h.StageAtTime})
		}
		data := e.WrongData
		if len(data) == 0 {
			data = json.RawMessage("{}")
		}
		out = append(out, wrongAnswerResponse{
			ID:                 e.ID.String(),
			ItemID:             e.ItemID,
			Type:               string(e.ItemType),
			CardID:             uuidString(e.CardID),
			WrongData:          data,
			WrongAt:            e.WrongAt,
			TotalWrongAttempts: e.TotalWrongAttempts,
			History:            history,
			ReviewWindowStart:  e.ReviewWindowStart,
			ReviewWindowEnd:    e.ReviewWindowEnd,
			CanReview:          e.CanReview,
			Card:               toCardResponse(e.Card, now),
			Stats:              toStatsResponse(e.Stats),
		})
	}
	return out
}

type timeMachineResponse struct {
	DayOffset int       `json:"dayOffset"`
	Now       time.Time `json:"now"`
	RealNow   time.Time `json:"realNow"`
}

func toTimeMachineResponse(s timemachine.State) timeMachineResponse {
	return timeMachineResponse{DayOffset: s.DayOffset, Now: s.Now, RealNow: s.RealNow}
}

type countResponse struct {
	Count int `json:"count"`
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
