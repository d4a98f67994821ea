package comment

import (
	"net/http"

	"Datashare/internal/api/handlers"
	"Datashare/internal/core/comments"
)

// GetCommentsHandler handles comment listing requests
type GetCommentsHandler struct {
	service comments.Service
}

// NewGetCommentsHandler creates a new handler for listing comments
func NewGetCommentsHandler(service comments.Service) *GetCommentsHandler {
	return &GetCommentsHandler{service: service}
}

// HandleGetByDataset lists a dataset's comments, newest first
// GET /api/get_all_comments_by_dataset?id_dataset=...&visible=true|false
//
// The visible parameter is a tri-state filter: omitted returns everything,
// "true" or "false" narrow to rows with that exact flag.
func (h *GetCommentsHandler) HandleGetByDataset(w http.ResponseWriter, r *http.Request) {
	datasetID := r.URL.Query().Get("id_dataset")
	if datasetID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "id_dataset is required")
		return
	}

	visible, ok := parseVisibleParam(r)
	if !ok {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "visible must be true or false")
		return
	}

	results, err := h.service.ListByDataset(r.Context(), datasetID, visible)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, results)
}

// HandleGetAll lists every comment in the system
// GET /api/get_all_comments
func (h *GetCommentsHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.ListAll(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, results)
}
