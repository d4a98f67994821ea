package download

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"Datashare/internal/api/handlers"
	"Datashare/internal/core/downloads"
)

// RecordDownloadHandler handles download recording requests
type RecordDownloadHandler struct {
	service downloads.Service
}

// NewRecordDownloadHandler creates a new handler for recording downloads
func NewRecordDownloadHandler(service downloads.Service) *RecordDownloadHandler {
	return &RecordDownloadHandler{service: service}
}

// HandleRecordDownload records that a user downloaded a dataset
// POST /api/record_new_download
//
// Request body: { "dataset_id": "...", "user_id": "...", "dataset_name": "...",
//                 "dataset_description": "...", "user_name": "..." }
// Repeated downloads by the same user leave exactly one record; the response
// reports inserted=false for repeats.
func (h *RecordDownloadHandler) HandleRecordDownload(w http.ResponseWriter, r *http.Request) {
	var req downloads.RecordDownloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	response, err := h.service.RecordDownload(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, response)
}

func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case downloads.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	default:
		slog.Error("unexpected error in download handler", "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An unexpected error occurred")
	}
}
