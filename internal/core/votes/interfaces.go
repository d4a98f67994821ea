package votes

import "context"

// Repository defines the data access interface for votes.
//
// Create performs one unordered batch of two inserts, one per projection,
// in a single round trip. The batch carries no cross-partition atomicity:
// a partial failure can leave the two views inconsistent, and the caller
// only receives a single pass/fail signal for the whole batch.
type Repository interface {
	// Create writes both physical projections of one logical vote.
	// No duplicate check is performed; re-votes are not rejected.
	Create(ctx context.Context, vote *Vote) error

	// ListByDataset retrieves all votes on a dataset from the by-dataset
	// projection
	ListByDataset(ctx context.Context, datasetID string) ([]Vote, error)

	// ListByUser retrieves all votes cast by a user from the by-user
	// projection
	ListByUser(ctx context.Context, userID string) ([]UserVote, error)
}

// Service defines the business logic interface for vote operations
type Service interface {
	RecordVote(ctx context.Context, req RecordVoteRequest) (*RecordVoteResponse, error)
	ListByDataset(ctx context.Context, datasetID string) ([]Vote, error)
	ListByUser(ctx context.Context, userID string) ([]UserVote, error)
}

// RecordVoteRequest contains parameters for recording a vote
type RecordVoteRequest struct {
	DatasetID          string `json:"dataset_id"`
	UserID             string `json:"user_id"`
	DatasetName        string `json:"dataset_name"`
	DatasetDescription string `json:"dataset_description"`
	UserName           string `json:"user_name"`
	Rating             int    `json:"calification"`
}

// RecordVoteResponse echoes the recorded vote
type RecordVoteResponse struct {
	Vote
	Created bool `json:"created"`
}
