package message

import (
	"encoding/json"
	"net/http"

	"Datashare/internal/api/handlers"
	"Datashare/internal/core/messaging"
)

// MessageHandler handles sending and reading messages
type MessageHandler struct {
	service messaging.Service
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(service messaging.Service) *MessageHandler {
	return &MessageHandler{service: service}
}

// HandleSendMessage appends a message to a conversation
// POST /api/send_message
//
// Request body: { "id_conversation": "...", "id_user": "...", "message": "..." }
func (h *MessageHandler) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req messaging.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	msg, err := h.service.SendMessage(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, msg)
}

// HandleGetMessages lists a conversation's messages in chronological order
// GET /api/get_conversation_messages?id_conversation=...
func (h *MessageHandler) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	conversationID := r.URL.Query().Get("id_conversation")
	if conversationID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "id_conversation is required")
		return
	}

	results, err := h.service.ListMessages(r.Context(), conversationID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, results)
}

// HandleGetLatestMessage returns the single most recent message
// GET /api/get_latest_message?id_conversation=...
//
// Responds 404 when the conversation has no messages yet.
func (h *MessageHandler) HandleGetLatestMessage(w http.ResponseWriter, r *http.Request) {
	conversationID := r.URL.Query().Get("id_conversation")
	if conversationID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "id_conversation is required")
		return
	}

	msg, err := h.service.LatestMessage(r.Context(), conversationID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, msg)
}
