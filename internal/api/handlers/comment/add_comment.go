package comment

import (
	"encoding/json"
	"net/http"

	"Datashare/internal/api/handlers"
	"Datashare/internal/core/comments"
)

// AddCommentHandler handles comment creation requests
type AddCommentHandler struct {
	service comments.Service
}

// NewAddCommentHandler creates a new handler for adding comments
func NewAddCommentHandler(service comments.Service) *AddCommentHandler {
	return &AddCommentHandler{service: service}
}

// HandleAddComment creates a comment on a dataset
// POST /api/add_comment
//
// Request body: { "id_dataset": "...", "user_name": "...", "comment": "...", "visible": true }
// The visible flag defaults to true when omitted.
func (h *AddCommentHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	var req comments.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	comment, err := h.service.AddComment(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, comment)
}
