package datasets

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

type datasetService struct {
	repo   Repository
	logger *slog.Logger
}

// NewDatasetService creates a new dataset service
func NewDatasetService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &datasetService{
		repo:   repo,
		logger: logger,
	}
}

// AddDataset publishes a new dataset in the pending state. It stays hidden
// from listings until an administrator approves it.
func (s *datasetService) AddDataset(ctx context.Context, req AddDatasetRequest) (*Dataset, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(req.Author) == "" {
		return nil, ErrAuthorRequired
	}

	dataset := &Dataset{
		Name:        req.Name,
		Description: req.Description,
		Date:        time.Now().UTC(),
		Author:      req.Author,
		Status:      StatusPending,
		Size:        req.Size,
	}

	if err := s.repo.Insert(ctx, dataset); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "dataset published",
		"dataset_id", dataset.ID,
		"author", dataset.Author)

	return dataset, nil
}

func (s *datasetService) GetDataset(ctx context.Context, id string) (*Dataset, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *datasetService) ListApproved(ctx context.Context, limit, skip int64) ([]Dataset, error) {
	return s.repo.ListApproved(ctx, limit, skip)
}

func (s *datasetService) SearchByName(ctx context.Context, name string, opts SearchOptions) ([]Dataset, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	return s.repo.SearchByName(ctx, name, opts)
}

func (s *datasetService) ApproveDataset(ctx context.Context, id string) (*Dataset, error) {
	dataset, err := s.repo.SetStatus(ctx, id, StatusApproved)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "dataset approved", "dataset_id", id)
	return dataset, nil
}

// DeleteDataset marks a dataset as deleted. The document is kept so votes
// and downloads that reference it keep resolving.
func (s *datasetService) DeleteDataset(ctx context.Context, id string) (*Dataset, error) {
	dataset, err := s.repo.SetStatus(ctx, id, StatusDeleted)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "dataset deleted", "dataset_id", id)
	return dataset, nil
}

// CloneDataset copies an existing dataset's metadata under a new name. The
// clone starts over in the pending state with a fresh publication date.
func (s *datasetService) CloneDataset(ctx context.Context, id, newName string) (*Dataset, error) {
	if strings.TrimSpace(newName) == "" {
		return nil, ErrNameRequired
	}

	original, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	clone := &Dataset{
		Name:        newName,
		Description: original.Description,
		Date:        time.Now().UTC(),
		Author:      original.Author,
		Status:      StatusPending,
		Size:        original.Size,
	}

	if err := s.repo.Insert(ctx, clone); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "dataset cloned",
		"source_id", id,
		"clone_id", clone.ID)

	return clone, nil
}
