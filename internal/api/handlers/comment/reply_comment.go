package comment

import (
	"encoding/json"
	"net/http"

	"Datashare/internal/api/handlers"
	"Datashare/internal/core/comments"
)

// ReplyHandler handles reply creation and listing
type ReplyHandler struct {
	service comments.Service
}

// NewReplyHandler creates a new reply handler
func NewReplyHandler(service comments.Service) *ReplyHandler {
	return &ReplyHandler{service: service}
}

// HandleReplyComment creates a reply under a comment
// POST /api/reply_comment
//
// Request body: { "id_comment": "...", "username": "...", "reply": "..." }
func (h *ReplyHandler) HandleReplyComment(w http.ResponseWriter, r *http.Request) {
	var req comments.AddReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	reply, err := h.service.AddReply(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, reply)
}

// HandleGetReplies lists a comment's replies, oldest first
// GET /api/get_comment_replies?id_comment=...&visible=true|false
func (h *ReplyHandler) HandleGetReplies(w http.ResponseWriter, r *http.Request) {
	commentID := r.URL.Query().Get("id_comment")
	if commentID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "id_comment is required")
		return
	}

	visible, ok := parseVisibleParam(r)
	if !ok {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "visible must be true or false")
		return
	}

	results, err := h.service.ListReplies(r.Context(), commentID, visible)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, results)
}
