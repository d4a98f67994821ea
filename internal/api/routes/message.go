package routes

import (
	"Datashare/internal/api/handlers/message"
	"Datashare/internal/core/messaging"

	"github.com/go-chi/chi/v5"
)

// RegisterMessageRoutes registers conversation and message endpoints on the
// router
func RegisterMessageRoutes(r chi.Router, service messaging.Service) {
	conversationHandler := message.NewConversationHandler(service)
	messageHandler := message.NewMessageHandler(service)

	r.Post("/api/start_conversation", conversationHandler.HandleStartConversation)
	r.Get("/api/get_user_conversations", conversationHandler.HandleGetConversations)

	r.Post("/api/send_message", messageHandler.HandleSendMessage)
	r.Get("/api/get_conversation_messages", messageHandler.HandleGetMessages)
	r.Get("/api/get_latest_message", messageHandler.HandleGetLatestMessage)
}
