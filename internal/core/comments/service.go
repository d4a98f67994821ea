package comments

import (
	"context"
	"fmt"
	"log/slog"

	"Datashare/internal/timeid"
)

// commentService implements the Service interface for comment operations
type commentService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new comment service instance
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		repo:   repo,
		logger: logger,
	}
}

// AddComment creates a new comment on a dataset. The comment's identifier is
// generated here and doubles as its creation timestamp; visibility defaults
// to true when the request leaves it unset.
func (s *commentService) AddComment(ctx context.Context, req AddCommentRequest) (*Comment, error) {
	if req.DatasetID == "" {
		return nil, ErrDatasetIDRequired
	}
	if req.UserName == "" {
		return nil, ErrAuthorRequired
	}
	if req.Comment == "" {
		return nil, ErrContentEmpty
	}

	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}

	comment := &Comment{
		DatasetID: req.DatasetID,
		CommentID: timeid.New(),
		Comment:   req.Comment,
		UserName:  req.UserName,
		Visible:   visible,
	}

	if err := s.repo.CreateComment(ctx, comment); err != nil {
		s.logger.Error("failed to create comment",
			"error", err,
			"dataset", req.DatasetID)
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Info("comment created",
		"dataset", comment.DatasetID,
		"comment", comment.CommentID,
		"author", comment.UserName)

	return comment, nil
}

// ListByDataset returns every comment on a dataset, newest first.
// The visible filter is tri-state: nil means no filter.
func (s *commentService) ListByDataset(ctx context.Context, datasetID string, visible *bool) ([]Comment, error) {
	if datasetID == "" {
		return nil, ErrDatasetIDRequired
	}

	result, err := s.repo.ListByDataset(ctx, datasetID, visible)
	if err != nil {
		s.logger.Error("failed to list comments",
			"error", err,
			"dataset", datasetID)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return result, nil
}

// ListAll returns every comment in the system without filters
func (s *commentService) ListAll(ctx context.Context) ([]Comment, error) {
	result, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list all comments", "error", err)
		return nil, fmt.Errorf("failed to list all comments: %w", err)
	}

	return result, nil
}

// SetCommentVisibility toggles the visibility flag of an existing comment.
// The underlying update is a no-op for a key that doesn't exist; the response
// reports updated regardless, matching the store's semantics.
func (s *commentService) SetCommentVisibility(ctx context.Context, req SetVisibilityRequest) (*SetVisibilityResponse, error) {
	if req.DatasetID == "" {
		return nil, ErrDatasetIDRequired
	}

	commentID, err := timeid.Parse(req.CommentID)
	if err != nil {
		return nil, ErrMalformedCommentID
	}

	if err := s.repo.SetCommentVisibility(ctx, req.DatasetID, commentID, req.Visible); err != nil {
		s.logger.Error("failed to update comment visibility",
			"error", err,
			"dataset", req.DatasetID,
			"comment", commentID)
		return nil, fmt.Errorf("failed to update comment visibility: %w", err)
	}

	s.logger.Info("comment visibility updated",
		"dataset", req.DatasetID,
		"comment", commentID,
		"visible", req.Visible)

	return &SetVisibilityResponse{
		DatasetID: req.DatasetID,
		CommentID: commentID,
		Visible:   req.Visible,
		Updated:   true,
	}, nil
}

// AddReply creates a reply under an existing comment. The parent id arrives
// as an external string and must parse as a time-ordered identifier.
func (s *commentService) AddReply(ctx context.Context, req AddReplyRequest) (*Reply, error) {
	if req.UserName == "" {
		return nil, ErrAuthorRequired
	}
	if req.Reply == "" {
		return nil, ErrContentEmpty
	}

	commentID, err := timeid.Parse(req.CommentID)
	if err != nil {
		return nil, ErrMalformedCommentID
	}

	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}

	reply := &Reply{
		CommentID: commentID,
		ReplyID:   timeid.New(),
		Reply:     req.Reply,
		UserName:  req.UserName,
		Visible:   visible,
	}

	if err := s.repo.CreateReply(ctx, reply); err != nil {
		s.logger.Error("failed to create reply",
			"error", err,
			"comment", commentID)
		return nil, fmt.Errorf("failed to create reply: %w", err)
	}

	s.logger.Info("reply created",
		"comment", reply.CommentID,
		"reply", reply.ReplyID,
		"author", reply.UserName)

	return reply, nil
}

// ListReplies returns every reply under a comment, oldest first.
// A comment with no replies yields an empty slice, not an error.
func (s *commentService) ListReplies(ctx context.Context, commentID string, visible *bool) ([]Reply, error) {
	id, err := timeid.Parse(commentID)
	if err != nil {
		return nil, ErrMalformedCommentID
	}

	result, err := s.repo.ListReplies(ctx, id, visible)
	if err != nil {
		s.logger.Error("failed to list replies",
			"error", err,
			"comment", id)
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}

	return result, nil
}

// SetReplyVisibility toggles the visibility flag of an existing reply
func (s *commentService) SetReplyVisibility(ctx context.Context, req SetReplyVisibilityRequest) (*SetReplyVisibilityResponse, error) {
	commentID, err := timeid.Parse(req.CommentID)
	if err != nil {
		return nil, ErrMalformedCommentID
	}

	replyID, err := timeid.Parse(req.ReplyID)
	if err != nil {
		return nil, ErrMalformedReplyID
	}

	if err := s.repo.SetReplyVisibility(ctx, commentID, replyID, req.Visible); err != nil {
		s.logger.Error("failed to update reply visibility",
			"error", err,
			"comment", commentID,
			"reply", replyID)
		return nil, fmt.Errorf("failed to update reply visibility: %w", err)
	}

	s.logger.Info("reply visibility updated",
		"comment", commentID,
		"reply", replyID,
		"visible", req.Visible)

	return &SetReplyVisibilityResponse{
		CommentID: commentID,
		ReplyID:   replyID,
		Visible:   req.Visible,
		Updated:   true,
	}, nil
}
