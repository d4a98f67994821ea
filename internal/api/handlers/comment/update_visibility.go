package comment

import (
	"encoding/json"
	"net/http"

	"Datashare/internal/api/handlers"
	"Datashare/internal/core/comments"
)

// UpdateVisibilityHandler handles visibility toggles for comments and
// replies
type UpdateVisibilityHandler struct {
	service comments.Service
}

// NewUpdateVisibilityHandler creates a new visibility update handler
func NewUpdateVisibilityHandler(service comments.Service) *UpdateVisibilityHandler {
	return &UpdateVisibilityHandler{service: service}
}

// HandleUpdateComment sets a comment's visibility flag
// PUT /api/update_comment_visibility
//
// Request body: { "id_dataset": "...", "id_comment": "...", "visible": false }
// The store cannot tell an update apart from a missed key, so the response
// always reports updated regardless of whether the comment existed.
func (h *UpdateVisibilityHandler) HandleUpdateComment(w http.ResponseWriter, r *http.Request) {
	var req comments.SetVisibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	response, err := h.service.SetCommentVisibility(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, response)
}

// HandleUpdateReply sets a reply's visibility flag
// PUT /api/update_reply_visibility
func (h *UpdateVisibilityHandler) HandleUpdateReply(w http.ResponseWriter, r *http.Request) {
	var req comments.SetReplyVisibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	response, err := h.service.SetReplyVisibility(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, response)
}
