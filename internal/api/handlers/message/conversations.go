package message

import (
	"encoding/json"
	"net/http"

	"Datashare/internal/api/handlers"
	"Datashare/internal/core/messaging"
)

// ConversationHandler handles conversation creation and listing
type ConversationHandler struct {
	service messaging.Service
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(service messaging.Service) *ConversationHandler {
	return &ConversationHandler{service: service}
}

// HandleStartConversation opens a conversation between two users
// POST /api/start_conversation
//
// Request body: { "id_user_one": "...", "id_user_two": "...",
//                 "user_one_name": "...", "user_two_name": "..." }
// If the pair already has a conversation, responds 200 with the existing id
// and existing=true instead of creating a second one.
func (h *ConversationHandler) HandleStartConversation(w http.ResponseWriter, r *http.Request) {
	var req messaging.StartConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	response, err := h.service.StartConversation(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	status := http.StatusCreated
	if response.Existing {
		status = http.StatusOK
	}
	handlers.WriteJSON(w, status, response)
}

// HandleGetConversations lists a user's conversations, newest first
// GET /api/get_user_conversations?id_user=...
func (h *ConversationHandler) HandleGetConversations(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("id_user")
	if userID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "id_user is required")
		return
	}

	results, err := h.service.ListConversations(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, results)
}
