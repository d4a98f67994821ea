package routes

import (
	"Datashare/internal/api/handlers/dataset"
	"Datashare/internal/core/datasets"

	"github.com/go-chi/chi/v5"
)

// RegisterDatasetRoutes registers dataset metadata endpoints on the router
func RegisterDatasetRoutes(r chi.Router, service datasets.Service) {
	datasetHandler := dataset.NewDatasetHandler(service)

	r.Post("/api/datasets", datasetHandler.HandleAdd)
	r.Get("/api/datasets", datasetHandler.HandleListApproved)
	r.Get("/api/search_datasets", datasetHandler.HandleSearch)
	r.Get("/api/datasets/{id}", datasetHandler.HandleGet)
	r.Delete("/api/datasets/{id}", datasetHandler.HandleDelete)
	r.Put("/api/datasets/{id}/approve", datasetHandler.HandleApprove)
	r.Post("/api/datasets/{id}/clone", datasetHandler.HandleClone)
}
