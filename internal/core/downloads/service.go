package downloads

import (
	"context"
	"fmt"
	"log/slog"
)

// downloadService implements the Service interface for download operations
type downloadService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new download service instance
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &downloadService{
		repo:   repo,
		logger: logger,
	}
}

// RecordDownload records a download, guarding against duplicates with a
// conditional insert. A repeat download is not an error; the response's
// Inserted flag reports whether a new row was written.
func (s *downloadService) RecordDownload(ctx context.Context, req RecordDownloadRequest) (*RecordDownloadResponse, error) {
	if req.DatasetID == "" {
		return nil, ErrDatasetIDRequired
	}
	if req.UserID == "" {
		return nil, ErrUserIDRequired
	}
	if req.DatasetName == "" || req.DatasetDescription == "" || req.UserName == "" {
		return nil, ErrFieldsRequired
	}

	download := &Download{
		DatasetID:          req.DatasetID,
		UserID:             req.UserID,
		DatasetName:        req.DatasetName,
		DatasetDescription: req.DatasetDescription,
		UserName:           req.UserName,
	}

	inserted, err := s.repo.Record(ctx, download)
	if err != nil {
		s.logger.Error("failed to record download",
			"error", err,
			"dataset", req.DatasetID,
			"user", req.UserID)
		return nil, fmt.Errorf("failed to record download: %w", err)
	}

	s.logger.Info("download recorded",
		"dataset", download.DatasetID,
		"user", download.UserID,
		"inserted", inserted)

	return &RecordDownloadResponse{Download: *download, Inserted: inserted}, nil
}

// ListByDataset returns all download records for a dataset
func (s *downloadService) ListByDataset(ctx context.Context, datasetID string) ([]Download, error) {
	if datasetID == "" {
		return nil, ErrDatasetIDRequired
	}

	result, err := s.repo.ListByDataset(ctx, datasetID)
	if err != nil {
		s.logger.Error("failed to list downloads",
			"error", err,
			"dataset", datasetID)
		return nil, fmt.Errorf("failed to list downloads: %w", err)
	}

	return result, nil
}
