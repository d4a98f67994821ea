package vote

import (
	"encoding/json"
	"net/http"

	"Datashare/internal/api/handlers"
	"Datashare/internal/core/votes"
)

// AddVoteHandler handles vote creation requests
type AddVoteHandler struct {
	service votes.Service
}

// NewAddVoteHandler creates a new handler for recording votes
func NewAddVoteHandler(service votes.Service) *AddVoteHandler {
	return &AddVoteHandler{service: service}
}

// HandleAddVote records a rating of a dataset by a user
// POST /api/add_dataset_vote
//
// Request body: { "dataset_id": "...", "user_id": "...", "dataset_name": "...",
//                 "dataset_description": "...", "user_name": "...", "calification": 4 }
// A repeat vote by the same user overwrites the previous one.
func (h *AddVoteHandler) HandleAddVote(w http.ResponseWriter, r *http.Request) {
	var req votes.RecordVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	response, err := h.service.RecordVote(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, response)
}
