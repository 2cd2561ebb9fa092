package rest

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
	"github.com/heartmarshall/srs-review-backend/internal/service/study"
)

// ListFolders handles GET /srs/folders.
func (h *StudyHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := h.svc.ListFolders(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, []folderResponse{})
		return
	}
	out := make([]folderResponse, 0, len(folders))
	for i := range folders {
		out = append(out, toFolderResponse(&folders[i]))
	}
	writeData(w, http.StatusOK, out)
}

type createFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parentId"`
}

// CreateFolder handles POST /srs/folders.
func (h *StudyHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req createFolderRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}

	input := study.CreateFolderInput{Name: req.Name}
	if req.ParentID != nil && *req.ParentID != "" {
		id, err := uuid.Parse(*req.ParentID)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("parent_id", "invalid"), nil)
			return
		}
		input.ParentID = &id
	}

	f, err := h.svc.CreateFolder(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	writeData(w, http.StatusCreated, toFolderResponse(f))
}

type cardIDsRequest struct {
	CardIDs []string `json:"cardIds"`
}

// AddCards handles POST /srs/folders/{id}/cards.
func (h *StudyHandler) AddCards(w http.ResponseWriter, r *http.Request) {
	folderID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("folder_id", "invalid"), nil)
		return
	}

	var req cardIDsRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	ids, err := parseUUIDs("card_ids", req.CardIDs)
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}

	n, err := h.svc.AddCardsToFolder(r.Context(), study.AddCardsInput{FolderID: folderID, CardIDs: ids})
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	writeData(w, http.StatusOK, countResponse{Count: n})
}

// DeleteFolder handles DELETE /srs/folders/{id}.
func (h *StudyHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	folderID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("folder_id", "invalid"), nil)
		return
	}
	if err := h.svc.DeleteFolder(r.Context(), folderID); err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteCards handles POST /srs/cards/delete-multiple.
func (h *StudyHandler) DeleteCards(w http.ResponseWriter, r *http.Request) {
	var req cardIDsRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	ids, err := parseUUIDs("card_ids", req.CardIDs)
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}

	n, err := h.svc.DeleteCards(r.Context(), study.DeleteCardsInput{CardIDs: ids})
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	writeData(w, http.StatusOK, countResponse{Count: n})
}
