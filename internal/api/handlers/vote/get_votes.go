package vote

import (
	"net/http"

	"Datashare/internal/api/handlers"
	"Datashare/internal/core/votes"
)

// GetVotesHandler handles vote listing requests
type GetVotesHandler struct {
	service votes.Service
}

// NewGetVotesHandler creates a new handler for listing votes
func NewGetVotesHandler(service votes.Service) *GetVotesHandler {
	return &GetVotesHandler{service: service}
}

// HandleGetByDataset lists all votes on a dataset
// GET /api/get_votes_by_dataset?dataset_id=...
func (h *GetVotesHandler) HandleGetByDataset(w http.ResponseWriter, r *http.Request) {
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

// HandleGetByUser lists all votes cast by a user
// GET /api/get_votes_by_user?user_id=...
func (h *GetVotesHandler) HandleGetByUser(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "user_id is required")
		return
	}

	results, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, results)
}
