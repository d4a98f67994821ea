package download

import (
	"net/http"

	"Datashare/internal/api/handlers"
	"Datashare/internal/core/downloads"
)

// GetDownloadsHandler handles download listing requests
type GetDownloadsHandler struct {
	service downloads.Service
}

// NewGetDownloadsHandler creates a new handler for listing downloads
func NewGetDownloadsHandler(service downloads.Service) *GetDownloadsHandler {
	return &GetDownloadsHandler{service: service}
}

// HandleGetByDataset lists all download records for a dataset
// GET /api/get_downloads_by_dataset?dataset_id=...
func (h *GetDownloadsHandler) HandleGetByDataset(w http.ResponseWriter, r *http.Request) {
	datasetID := r.URL.Query().Get("dataset_id")
	if datasetID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "dataset_id is required")
		return
	}

	results, err := h.service.ListByDataset(r.Context(), datasetID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, results)
}
