package user

import (
	"encoding/json"
	"net/http"

	"Datashare/internal/api/handlers"
	"Datashare/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// FollowHandler handles follow relations and per-user dataset indexes
type FollowHandler struct {
	service users.Service
}

// NewFollowHandler creates a new follow handler
func NewFollowHandler(service users.Service) *FollowHandler {
	return &FollowHandler{service: service}
}

type followRequest struct {
	Follower string `json:"follower"`
}

// HandleFollow records that one user follows another
// POST /api/users/{username}/follow
//
// Request body: { "follower": "..." }
func (h *FollowHandler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	var req followRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	followee := chi.URLParam(r, "username")

	if err := h.service.FollowUser(r.Context(), req.Follower, followee); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleFollowers lists who follows a user
// GET /api/users/{username}/followers
func (h *FollowHandler) HandleFollowers(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	results, err := h.service.Followers(r.Context(), username)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, results)
}

// HandleFollowing lists who a user follows
// GET /api/users/{username}/following
func (h *FollowHandler) HandleFollowing(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	results, err := h.service.Following(r.Context(), username)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, results)
}

type addRepositoryRequest struct {
	DatasetID string `json:"dataset_id"`
}

// HandleAddRepository appends a dataset id to a user's personal index
// POST /api/users/{username}/repositories
func (h *FollowHandler) HandleAddRepository(w http.ResponseWriter, r *http.Request) {
	var req addRepositoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	username := chi.URLParam(r, "username")

	if err := h.service.AddRepository(r.Context(), username, req.DatasetID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleRepositories lists the dataset ids in a user's personal index
// GET /api/users/{username}/repositories
func (h *FollowHandler) HandleRepositories(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	results, err := h.service.Repositories(r.Context(), username)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, results)
}
