package downloads

import "context"

// Repository defines the data access interface for download records
type Repository interface {
	// Record inserts a download row only if the (dataset, user) key is not
	// already present. Returns true if the row was inserted, false if it
	// already existed.
	Record(ctx context.Context, download *Download) (bool, error)

	// ListByDataset retrieves all download records for a dataset
	ListByDataset(ctx context.Context, datasetID string) ([]Download, error)
}

// Service defines the business logic interface for download operations
type Service interface {
	RecordDownload(ctx context.Context, req RecordDownloadRequest) (*RecordDownloadResponse, error)
	ListByDataset(ctx context.Context, datasetID string) ([]Download, error)
}

// RecordDownloadRequest contains parameters for recording a download
type RecordDownloadRequest struct {
	DatasetID          string `json:"dataset_id"`
	UserID             string `json:"user_id"`
	DatasetName        string `json:"dataset_name"`
	DatasetDescription string `json:"dataset_description"`
	UserName           string `json:"user_name"`
}

// RecordDownloadResponse echoes the download; Inserted is false when the
// same user already downloaded the same dataset
type RecordDownloadResponse struct {
	Download
	Inserted bool `json:"inserted"`
}
