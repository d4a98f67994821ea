package vote

import (
	"errors"
	"log/slog"
	"net/http"

	"Datashare/internal/api/handlers"
	"Datashare/internal/core/votes"
)

// handleServiceError maps service-layer errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, votes.ErrDatasetIDRequired),
		errors.Is(err, votes.ErrUserIDRequired),
		errors.Is(err, votes.ErrDatasetNameRequired),
		errors.Is(err, votes.ErrUserNameRequired),
		errors.Is(err, votes.ErrRatingOutOfRange):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	default:
		slog.Error("unexpected error in vote handler", "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An unexpected error occurred")
	}
}
