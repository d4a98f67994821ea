package message

import (
	"errors"
	"log/slog"
	"net/http"

	"Datashare/internal/api/handlers"
	"Datashare/internal/core/messaging"
)

// handleServiceError maps service-layer errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case messaging.IsValidationError(err),
		errors.Is(err, messaging.ErrMalformedConversationID):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	case errors.Is(err, messaging.ErrNoMessages):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", err.Error())

	default:
		slog.Error("unexpected error in message handler", "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An unexpected error occurred")
	}
}
