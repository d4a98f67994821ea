package cassandra

import (
	"context"
	"fmt"

	"Datashare/internal/core/votes"

	"github.com/gocql/gocql"
)

type cassandraVoteRepo struct {
	session *gocql.Session
}

// NewVoteRepository creates a new Cassandra vote repository
func NewVoteRepository(session *gocql.Session) votes.Repository {
	return &cassandraVoteRepo{session: session}
}

// Create writes both projections of a vote in one unlogged batch. The two
// rows live in different partitions, so the batch trades atomicity for a
// single round trip: a node failure mid-batch can leave one projection
// missing the vote.
func (r *cassandraVoteRepo) Create(ctx context.Context, vote *votes.Vote) error {
	batch := r.session.NewBatch(gocql.UnloggedBatch).WithContext(ctx)

	batch.Query(`
		INSERT INTO dataset_vote (dataset_id, user_id, dataset_name, dataset_description, user_name, calification)
		VALUES (?, ?, ?, ?, ?, ?)`,
		vote.DatasetID, vote.UserID, vote.DatasetName,
		vote.DatasetDescription, vote.UserName, vote.Rating,
	)
	batch.Query(`
		INSERT INTO vote_by_user_ds (user_id, dataset_id, dataset_name, dataset_description, calification)
		VALUES (?, ?, ?, ?, ?)`,
		vote.UserID, vote.DatasetID, vote.DatasetName,
		vote.DatasetDescription, vote.Rating,
	)

	if err := r.session.ExecuteBatch(batch); err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}

	return nil
}

// ListByDataset retrieves all votes on a dataset from the by-dataset
// projection
func (r *cassandraVoteRepo) ListByDataset(ctx context.Context, datasetID string) ([]votes.Vote, error) {
	stmt := `
		SELECT dataset_id, user_id, dataset_name, dataset_description, user_name, calification
		FROM dataset_vote WHERE dataset_id = ?`

	results := []votes.Vote{}

	err := drainPages(func(pageState []byte) ([]byte, error) {
		iter := r.session.Query(stmt, datasetID).
			WithContext(ctx).
			PageSize(pageSize).
			PageState(pageState).
			Iter()
		next := iter.PageState()

		scanner := iter.Scanner()
		for scanner.Next() {
			var v votes.Vote
			if err := scanner.Scan(&v.DatasetID, &v.UserID, &v.DatasetName,
				&v.DatasetDescription, &v.UserName, &v.Rating); err != nil {
				return nil, err
			}
			results = append(results, v)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return next, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list votes for dataset %s: %w", datasetID, err)
	}

	return results, nil
}

// ListByUser retrieves all votes cast by a user from the by-user projection
func (r *cassandraVoteRepo) ListByUser(ctx context.Context, userID string) ([]votes.UserVote, error) {
	stmt := `
		SELECT user_id, dataset_id, dataset_name, dataset_description, calification
		FROM vote_by_user_ds WHERE user_id = ?`

	results := []votes.UserVote{}

	err := drainPages(func(pageState []byte) ([]byte, error) {
		iter := r.session.Query(stmt, userID).
			WithContext(ctx).
			PageSize(pageSize).
			PageState(pageState).
			Iter()
		next := iter.PageState()

		scanner := iter.Scanner()
		for scanner.Next() {
			var v votes.UserVote
			if err := scanner.Scan(&v.UserID, &v.DatasetID, &v.DatasetName,
				&v.DatasetDescription, &v.Rating); err != nil {
				return nil, err
			}
			results = append(results, v)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return next, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list votes for user %s: %w", userID, err)
	}

	return results, nil
}
