package cassandra

import (
	"context"
	"fmt"

	"Datashare/internal/core/comments"

	"github.com/gocql/gocql"
)

type cassandraCommentRepo struct {
	session *gocql.Session
}

// NewCommentRepository creates a new Cassandra comment repository
func NewCommentRepository(session *gocql.Session) comments.Repository {
	return &cassandraCommentRepo{session: session}
}

// CreateComment inserts a new comment row into its dataset partition
func (r *cassandraCommentRepo) CreateComment(ctx context.Context, comment *comments.Comment) error {
	query := `
		INSERT INTO comment_ds (id_dataset, id_comment, comment, username, visible)
		VALUES (?, ?, ?, ?, ?)`

	err := r.session.Query(query,
		comment.DatasetID, comment.CommentID, comment.Comment,
		comment.UserName, comment.Visible,
	).WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

// ListByDataset retrieves every comment in a dataset partition, newest
// first. Pages are drained manually so the whole partition is materialized
// regardless of size.
func (r *cassandraCommentRepo) ListByDataset(ctx context.Context, datasetID string, visible *bool) ([]comments.Comment, error) {
	stmt := `
		SELECT id_dataset, id_comment, comment, username, visible
		FROM comment_ds WHERE id_dataset = ?`
	stmt, args := withVisibility(stmt, visible, []interface{}{datasetID})

	results, err := r.scanComments(ctx, stmt, args)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for dataset %s: %w", datasetID, err)
	}
	return results, nil
}

// ListAll retrieves every comment across all datasets
func (r *cassandraCommentRepo) ListAll(ctx context.Context) ([]comments.Comment, error) {
	stmt := `
		SELECT id_dataset, id_comment, comment, username, visible
		FROM comment_ds`

	results, err := r.scanComments(ctx, stmt, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list all comments: %w", err)
	}
	return results, nil
}

func (r *cassandraCommentRepo) scanComments(ctx context.Context, stmt string, args []interface{}) ([]comments.Comment, error) {
	results := []comments.Comment{}

	err := drainPages(func(pageState []byte) ([]byte, error) {
		iter := r.session.Query(stmt, args...).
			WithContext(ctx).
			PageSize(pageSize).
			PageState(pageState).
			Iter()
		next := iter.PageState()

		scanner := iter.Scanner()
		for scanner.Next() {
			var c comments.Comment
			if err := scanner.Scan(&c.DatasetID, &c.CommentID, &c.Comment, &c.UserName, &c.Visible); err != nil {
				return nil, err
			}
			results = append(results, c)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// SetCommentVisibility overwrites the visibility column. Cassandra upserts
// on UPDATE, so a miss is indistinguishable from a hit.
func (r *cassandraCommentRepo) SetCommentVisibility(ctx context.Context, datasetID string, commentID gocql.UUID, visible bool) error {
	query := `UPDATE comment_ds SET visible = ? WHERE id_dataset = ? AND id_comment = ?`

	err := r.session.Query(query, visible, datasetID, commentID).WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("failed to update comment visibility: %w", err)
	}

	return nil
}

// CreateReply inserts a new reply row into its parent comment's partition
func (r *cassandraCommentRepo) CreateReply(ctx context.Context, reply *comments.Reply) error {
	query := `
		INSERT INTO comment_reply (id_comment, id_reply, reply, username, visible)
		VALUES (?, ?, ?, ?, ?)`

	err := r.session.Query(query,
		reply.CommentID, reply.ReplyID, reply.Reply,
		reply.UserName, reply.Visible,
	).WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("failed to insert reply: %w", err)
	}

	return nil
}

// ListReplies retrieves every reply under a comment, oldest first
func (r *cassandraCommentRepo) ListReplies(ctx context.Context, commentID gocql.UUID, visible *bool) ([]comments.Reply, error) {
	stmt := `
		SELECT id_comment, id_reply, reply, username, visible
		FROM comment_reply WHERE id_comment = ?`
	stmt, args := withVisibility(stmt, visible, []interface{}{commentID})

	results := []comments.Reply{}

	err := drainPages(func(pageState []byte) ([]byte, error) {
		iter := r.session.Query(stmt, args...).
			WithContext(ctx).
			PageSize(pageSize).
			PageState(pageState).
			Iter()
		next := iter.PageState()

		scanner := iter.Scanner()
		for scanner.Next() {
			var rep comments.Reply
			if err := scanner.Scan(&rep.CommentID, &rep.ReplyID, &rep.Reply, &rep.UserName, &rep.Visible); err != nil {
				return nil, err
			}
			results = append(results, rep)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return next, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list replies for comment %s: %w", commentID, err)
	}

	return results, nil
}

// SetReplyVisibility overwrites the visibility column of a reply
func (r *cassandraCommentRepo) SetReplyVisibility(ctx context.Context, commentID, replyID gocql.UUID, visible bool) error {
	query := `UPDATE comment_reply SET visible = ? WHERE id_comment = ? AND id_reply = ?`

	err := r.session.Query(query, visible, commentID, replyID).WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("failed to update reply visibility: %w", err)
	}

	return nil
}
