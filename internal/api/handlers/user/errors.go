package user

import (
	"errors"
	"log/slog"
	"net/http"

	"Datashare/internal/api/handlers"
	"Datashare/internal/core/users"
)

// handleServiceError maps service-layer errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case users.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", err.Error())

	case errors.Is(err, users.ErrUserExists):
		handlers.WriteError(w, http.StatusConflict, "AlreadyExists", err.Error())

	case users.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	default:
		slog.Error("unexpected error in user handler", "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An unexpected error occurred")
	}
}
