package odatnote

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
)

const (
	maxIDLength  = 200
	maxKeyLength = 128
	maxBatchIDs  = 500
)

// CreateInput is a mistake recorded directly into the notebook.
type CreateInput struct {
	ItemID         string
	Type           domain.ItemType
	PassageID      string
	UserAnswer     string
	CorrectAnswer  string
	AnsweredAt     *time.Time
	IdempotencyKey string
	WrongData      json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs domain.Violations

	switch {
	case strings.TrimSpace(i.ItemID) == "":
		errs.Add("item_id", "required")
	case len(i.ItemID) > maxIDLength:
		errs.Add("item_id", "too long")
	}
	if !i.Type.IsValid() {
		errs.Add("type", "must be vocab, grammar, reading or listening")
	}
	switch {
	case strings.TrimSpace(i.IdempotencyKey) == "":
		errs.Add("idempotency_key", "required")
	case len(i.IdempotencyKey) > maxKeyLength:
		errs.Add("idempotency_key", "too long")
	}
	if len(i.WrongData) == 0 {
		errs.Add("wrong_data", "required")
	}

	return errs.Err()
}

// DeleteInput holds the note ids of a bulk delete.
type DeleteInput struct {
	IDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *DeleteInput) Validate() error {
	switch {
	case len(i.IDs) == 0:
		return domain.NewValidationError("wrong_answer_ids", "at least one id is required")
	case len(i.IDs) > maxBatchIDs:
		return domain.NewValidationError("wrong_answer_ids", "too many ids")
	}
	for _, id := range i.IDs {
		if id == uuid.Nil {
			return domain.NewValidationError("wrong_answer_ids", "contains an invalid id")
		}
	}
	return nil
}
