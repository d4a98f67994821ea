package comments

import (
	"context"

	"github.com/gocql/gocql"
)

// Repository defines the data access interface for comments and replies.
//
// List operations take a tri-state visibility filter: nil returns every row
// in the partition on the indexed path, a non-nil value narrows to rows with
// that exact flag and accepts an unindexed scan. "Unspecified" and "false"
// are distinct query shapes and must never be conflated.
type Repository interface {
	// CreateComment inserts a new comment row keyed by dataset
	CreateComment(ctx context.Context, comment *Comment) error

	// ListByDataset retrieves every comment in a dataset partition,
	// newest first, draining all pages before returning
	ListByDataset(ctx context.Context, datasetID string, visible *bool) ([]Comment, error)

	// ListAll retrieves every comment in the system without filters
	// Used by moderation tooling
	ListAll(ctx context.Context) ([]Comment, error)

	// SetCommentVisibility updates only the visibility column of a comment.
	// The store does not distinguish an update from a missed key; callers
	// must not expect a not-found error.
	SetCommentVisibility(ctx context.Context, datasetID string, commentID gocql.UUID, visible bool) error

	// CreateReply inserts a new reply row keyed by its parent comment
	CreateReply(ctx context.Context, reply *Reply) error

	// ListReplies retrieves every reply under a comment, oldest first
	ListReplies(ctx context.Context, commentID gocql.UUID, visible *bool) ([]Reply, error)

	// SetReplyVisibility updates only the visibility column of a reply
	SetReplyVisibility(ctx context.Context, commentID, replyID gocql.UUID, visible bool) error
}

// Service defines the business logic interface for comments and replies
type Service interface {
	AddComment(ctx context.Context, req AddCommentRequest) (*Comment, error)
	ListByDataset(ctx context.Context, datasetID string, visible *bool) ([]Comment, error)
	ListAll(ctx context.Context) ([]Comment, error)
	SetCommentVisibility(ctx context.Context, req SetVisibilityRequest) (*SetVisibilityResponse, error)
	AddReply(ctx context.Context, req AddReplyRequest) (*Reply, error)
	ListReplies(ctx context.Context, commentID string, visible *bool) ([]Reply, error)
	SetReplyVisibility(ctx context.Context, req SetReplyVisibilityRequest) (*SetReplyVisibilityResponse, error)
}
