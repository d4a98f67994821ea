package routes

import (
	"Datashare/internal/api/handlers/download"
	"Datashare/internal/core/downloads"

	"github.com/go-chi/chi/v5"
)

// RegisterDownloadRoutes registers download endpoints on the router
func RegisterDownloadRoutes(r chi.Router, service downloads.Service) {
	recordHandler := download.NewRecordDownloadHandler(service)
	getHandler := download.NewGetDownloadsHandler(service)

	r.Post("/api/record_new_download", recordHandler.HandleRecordDownload)
	r.Get("/api/get_downloads_by_dataset", getHandler.HandleGetByDataset)
}
