package study

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
)

const (
	maxKeyLength   = 128
	maxIDLength    = 200
	maxBatchIDs    = 500
	maxSubQuestion = 50
	maxFolderName  = 100
)

// SubmitAttemptInput holds one answer to a single-question item.
type SubmitAttemptInput struct {
	ItemID         string
	ItemType       domain.ItemType
	PassageID      string
	UserAnswer     string
	CorrectAnswer  string
	IsCorrect      *bool
	AnsweredAt     *time.Time
	IdempotencyKey string
	WrongData      json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i *SubmitAttemptInput) Validate() error {
	var errs domain.Violations

	errs = append(errs, validateID("item_id", i.ItemID)...)
	if !i.ItemType.IsValid() {
		errs.Add("item_type", "must be vocab, grammar, reading or listening")
	}
	if len(i.PassageID) > maxIDLength {
		errs.Add("passage_id", "too long")
	}
	errs = append(errs, validateKey(i.IdempotencyKey)...)
	errs = append(errs, validateWrongData(i.WrongData)...)

	return errs.Err()
}

// SubQuestionAnswer is the answer to one question of a passage.
type SubQuestionAnswer struct {
	SubQuestionID string
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     *bool
}

// SubmitPassageInput holds the answers to every question of one passage,
// applied as one review attempt.
type SubmitPassageInput struct {
	PassageID      string
	Answers        []SubQuestionAnswer
	AnsweredAt     *time.Time
	IdempotencyKey string
	WrongData      json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i *SubmitPassageInput) Validate() error {
	var errs domain.Violations

	errs = append(errs, validateID("passage_id", i.PassageID)...)
	switch {
	case len(i.Answers) == 0:
		errs.Add("answers", "at least one answer is required")
	case len(i.Answers) > maxSubQuestion:
		errs.Add("answers", "too many answers")
	}
	seen := make(map[string]bool, len(i.Answers))
	for _, a := range i.Answers {
		id := strings.TrimSpace(a.SubQuestionID)
		if id == "" {
			errs.Add("answers.sub_question_id", "required")
			continue
		}
		if seen[id] {
			errs.Add("answers.sub_question_id", "duplicate " + id)
		}
		seen[id] = true
	}
	errs = append(errs, validateKey(i.IdempotencyKey)...)
	errs = append(errs, validateWrongData(i.WrongData)...)

	return errs.Err()
}

// BatchReviewInput selects the language partition of a bulk review.
type BatchReviewInput struct {
	Language *domain.Language
}

// Validate checks all fields and collects all errors.
func (i *BatchReviewInput) Validate() error {
	if i.Language != nil && !i.Language.IsValid() {
		return domain.NewValidationError("language", "must be japanese or english")
	}
	return nil
}

// CreateFolderInput holds the parameters for creating a folder.
type CreateFolderInput struct {
	Name     string
	ParentID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *CreateFolderInput) Validate() error {
	var errs domain.Violations

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs.Add("name", "required")
	}
	if len(name) > maxFolderName {
		errs.Add("name", "too long")
	}
	if strings.HasPrefix(name, "Wrong answers (") {
		errs.Add("name", "reserved")
	}
	if i.ParentID != nil && *i.ParentID == uuid.Nil {
		errs.Add("parent_id", "invalid")
	}

	return errs.Err()
}

// AddCardsInput holds the parameters for filing cards into a folder.
type AddCardsInput struct {
	FolderID uuid.UUID
	CardIDs  []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *AddCardsInput) Validate() error {
	var errs domain.Violations

	if i.FolderID == uuid.Nil {
		errs.Add("folder_id", "required")
	}
	errs = append(errs, validateIDList("card_ids", i.CardIDs)...)

	return errs.Err()
}

// DeleteCardsInput holds the cards of a bulk delete.
type DeleteCardsInput struct {
	CardIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *DeleteCardsInput) Validate() error {
	return domain.Violations(validateIDList("card_ids", i.CardIDs)).Err()
}

func validateID(field, v string) []domain.FieldError {
	switch {
	case strings.TrimSpace(v) == "":
		return []domain.FieldError{{Field: field, Message: "required"}}
	case len(v) > maxIDLength:
		return []domain.FieldError{{Field: field, Message: "too long"}}
	}
	return nil
}

func validateKey(key string) []domain.FieldError {
	switch {
	case strings.TrimSpace(key) == "":
		return []domain.FieldError{{Field: "idempotency_key", Message: "required"}}
	case len(key) > maxKeyLength:
		return []domain.FieldError{{Field: "idempotency_key", Message: "too long"}}
	}
	return nil
}

func validateWrongData(data json.RawMessage) []domain.FieldError {
	if len(data) == 0 {
		return nil
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return []domain.FieldError{{Field: "wrong_data", Message: "must be a JSON object"}}
	}
	return nil
}

func validateIDList(field string, ids []uuid.UUID) []domain.FieldError {
	switch {
	case len(ids) == 0:
		return []domain.FieldError{{Field: field, Message: "at least one id is required"}}
	case len(ids) > maxBatchIDs:
		return []domain.FieldError{{Field: field, Message: "too many ids"}}
	}
	for _, id := range ids {
		if id == uuid.Nil {
			return []domain.FieldError{{Field: field, Message: "contains an invalid id"}}
		}
	}
	return nil
}
