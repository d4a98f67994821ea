package votes

import (
	"context"
	"fmt"
	"log/slog"
)

// voteService implements the Service interface for vote operations
type voteService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new vote service instance
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &voteService{
		repo:   repo,
		logger: logger,
	}
}

// RecordVote validates and records one logical vote as two denormalized rows.
// There is intentionally no pre-check for an existing vote by the same user
// on the same dataset: the writer has no idempotency key, and concurrent or
// repeated votes land as repeated writes.
func (s *voteService) RecordVote(ctx context.Context, req RecordVoteRequest) (*RecordVoteResponse, error) {
	if req.DatasetID == "" {
		return nil, ErrDatasetIDRequired
	}
	if req.UserID == "" {
		return nil, ErrUserIDRequired
	}
	if req.DatasetName == "" {
		return nil, ErrDatasetNameRequired
	}
	if req.UserName == "" {
		return nil, ErrUserNameRequired
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrRatingOutOfRange
	}

	vote := &Vote{
		DatasetID:          req.DatasetID,
		UserID:             req.UserID,
		DatasetName:        req.DatasetName,
		DatasetDescription: req.DatasetDescription,
		UserName:           req.UserName,
		Rating:             req.Rating,
	}

	if err := s.repo.Create(ctx, vote); err != nil {
		s.logger.Error("failed to record vote",
			"error", err,
			"dataset", req.DatasetID,
			"user", req.UserID)
		return nil, fmt.Errorf("failed to record vote: %w", err)
	}

	s.logger.Info("vote recorded",
		"dataset", vote.DatasetID,
		"user", vote.UserID,
		"rating", vote.Rating)

	return &RecordVoteResponse{Vote: *vote, Created: true}, nil
}

// ListByDataset returns all votes on a dataset
func (s *voteService) ListByDataset(ctx context.Context, datasetID string) ([]Vote, error) {
	if datasetID == "" {
		return nil, ErrDatasetIDRequired
	}

	result, err := s.repo.ListByDataset(ctx, datasetID)
	if err != nil {
		s.logger.Error("failed to list votes by dataset",
			"error", err,
			"dataset", datasetID)
		return nil, fmt.Errorf("failed to list votes by dataset: %w", err)
	}

	return result, nil
}

// ListByUser returns all votes cast by a user
func (s *voteService) ListByUser(ctx context.Context, userID string) ([]UserVote, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}

	result, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list votes by user",
			"error", err,
			"user", userID)
		return nil, fmt.Errorf("failed to list votes by user: %w", err)
	}

	return result, nil
}
