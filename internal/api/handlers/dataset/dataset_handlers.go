package dataset

import (
	"encoding/json"
	"net/http"
	"strconv"

	"Datashare/internal/api/handlers"
	"Datashare/internal/core/datasets"

	"github.com/go-chi/chi/v5"
)

// DatasetHandler handles dataset metadata requests
type DatasetHandler struct {
	service datasets.Service
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(service datasets.Service) *DatasetHandler {
	return &DatasetHandler{service: service}
}

// HandleAdd publishes a new dataset in the pending state
// POST /api/datasets
func (h *DatasetHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req datasets.AddDatasetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	dataset, err := h.service.AddDataset(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, dataset)
}

// HandleGet retrieves a dataset by id
// GET /api/datasets/{id}
func (h *DatasetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	dataset, err := h.service.GetDataset(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, dataset)
}

// HandleListApproved lists approved datasets, newest first
// GET /api/datasets?limit=20&skip=0
func (h *DatasetHandler) HandleListApproved(w http.ResponseWriter, r *http.Request) {
	limit, skip, ok := parsePaging(r)
	if !ok {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "limit and skip must be non-negative integers")
		return
	}

	results, err := h.service.ListApproved(r.Context(), limit, skip)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, results)
}

// HandleSearch searches approved datasets by name
// GET /api/search_datasets?name=...&exact=true&case_insensitive=true&limit=20&skip=0
func (h *DatasetHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "name is required")
		return
	}

	limit, skip, ok := parsePaging(r)
	if !ok {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "limit and skip must be non-negative integers")
		return
	}

	opts := datasets.SearchOptions{
		Exact:           r.URL.Query().Get("exact") == "true",
		CaseInsensitive: r.URL.Query().Get("case_insensitive") == "true",
		Limit:           limit,
		Skip:            skip,
	}

	results, err := h.service.SearchByName(r.Context(), name, opts)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, results)
}

// HandleApprove moves a dataset out of the pending state
// PUT /api/datasets/{id}/approve
func (h *DatasetHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	dataset, err := h.service.ApproveDataset(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, dataset)
}

// HandleDelete soft-deletes a dataset
// DELETE /api/datasets/{id}
func (h *DatasetHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	dataset, err := h.service.DeleteDataset(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, dataset)
}

type cloneRequest struct {
	Name string `json:"name"`
}

// HandleClone copies a dataset's metadata under a new name
// POST /api/datasets/{id}/clone
func (h *DatasetHandler) HandleClone(w http.ResponseWriter, r *http.Request) {
	var req cloneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	id := chi.URLParam(r, "id")

	clone, err := h.service.CloneDataset(r.Context(), id, req.Name)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, clone)
}

func parsePaging(r *http.Request) (limit, skip int64, ok bool) {
	q := r.URL.Query()

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			return 0, 0, false
		}
		limit = n
	}
	if raw := q.Get("skip"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			return 0, 0, false
		}
		skip = n
	}

	return limit, skip, true
}
