package comment

import (
	"log/slog"
	"net/http"

	"Datashare/internal/api/handlers"
	"Datashare/internal/core/comments"
)

// handleServiceError maps service-layer errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case comments.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	case comments.IsMalformedID(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	default:
		// Don't leak internal error details to clients
		slog.Error("unexpected error in comment handler", "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An unexpected error occurred")
	}
}

// parseVisibleParam reads the tri-state visibility filter from a query
// string. A missing parameter means no filter; "true"/"false" narrow to
// that flag. Returns ok=false on any other value.
func parseVisibleParam(r *http.Request) (visible *bool, ok bool) {
	raw := r.URL.Query().Get("visible")
	switch raw {
	case "":
		return nil, true
	case "true":
		v := true
		return &v, true
	case "false":
		v := false
		return &v, true
	default:
		return nil, false
	}
}
