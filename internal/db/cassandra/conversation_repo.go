package cassandra

import (
	"context"
	"fmt"

	"Datashare/internal/core/messaging"
	"Datashare/internal/timeid"

	"github.com/gocql/gocql"
)

type cassandraConversationRepo struct {
	session *gocql.Session
}

// NewConversationRepository creates a new Cassandra conversation repository
func NewConversationRepository(session *gocql.Session) messaging.Repository {
	return &cassandraConversationRepo{session: session}
}

// CreateConversation writes the canonical row plus one lookup row per
// participant in a single unlogged batch. The three rows span three
// partitions, so the batch carries no atomicity guarantee.
func (r *cassandraConversationRepo) CreateConversation(ctx context.Context, conv *messaging.Conversation) error {
	batch := r.session.NewBatch(gocql.UnloggedBatch).WithContext(ctx)

	batch.Query(`
		INSERT INTO conversation (id_user_one, id_user_two, id_conversation, user_one_name, user_two_name)
		VALUES (?, ?, ?, ?, ?)`,
		conv.UserOneID, conv.UserTwoID, conv.ConversationID,
		conv.UserOneName, conv.UserTwoName,
	)
	batch.Query(`
		INSERT INTO conversation_by_user (id_user, id_conversation, id_other_user, other_user_name)
		VALUES (?, ?, ?, ?)`,
		conv.UserOneID, conv.ConversationID, conv.UserTwoID, conv.UserTwoName,
	)
	batch.Query(`
		INSERT INTO conversation_by_user (id_user, id_conversation, id_other_user, other_user_name)
		VALUES (?, ?, ?, ?)`,
		conv.UserTwoID, conv.ConversationID, conv.UserOneID, conv.UserOneName,
	)

	if err := r.session.ExecuteBatch(batch); err != nil {
		return fmt.Errorf("failed to insert conversation: %w", err)
	}

	return nil
}

// FindConversation looks up the canonical row for a pair of users. The row
// preserves direction, so both orderings are tried before reporting that no
// conversation exists.
func (r *cassandraConversationRepo) FindConversation(ctx context.Context, userOneID, userTwoID string) (gocql.UUID, bool, error) {
	query := `SELECT id_conversation FROM conversation WHERE id_user_one = ? AND id_user_two = ?`

	var id gocql.UUID
	err := r.session.Query(query, userOneID, userTwoID).WithContext(ctx).Scan(&id)
	if err == nil {
		return id, true, nil
	}
	if err != gocql.ErrNotFound {
		return gocql.UUID{}, false, fmt.Errorf("failed to find conversation: %w", err)
	}

	err = r.session.Query(query, userTwoID, userOneID).WithContext(ctx).Scan(&id)
	if err == nil {
		return id, true, nil
	}
	if err != gocql.ErrNotFound {
		return gocql.UUID{}, false, fmt.Errorf("failed to find conversation: %w", err)
	}

	return gocql.UUID{}, false, nil
}

// ListConversations retrieves a user's lookup rows, newest conversation
// first. CreatedAt is recovered from the identifier's embedded timestamp.
func (r *cassandraConversationRepo) ListConversations(ctx context.Context, userID string) ([]messaging.ConversationListing, error) {
	stmt := `
		SELECT id_conversation, id_other_user, other_user_name
		FROM conversation_by_user WHERE id_user = ?`

	results := []messaging.ConversationListing{}

	err := drainPages(func(pageState []byte) ([]byte, error) {
		iter := r.session.Query(stmt, userID).
			WithContext(ctx).
			PageSize(pageSize).
			PageState(pageState).
			Iter()
		next := iter.PageState()

		scanner := iter.Scanner()
		for scanner.Next() {
			var l messaging.ConversationListing
			if err := scanner.Scan(&l.ConversationID, &l.OtherUserID, &l.OtherUserName); err != nil {
				return nil, err
			}
			l.CreatedAt = timeid.Timestamp(l.ConversationID)
			results = append(results, l)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return next, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations for user %s: %w", userID, err)
	}

	return results, nil
}

// CreateMessage inserts a message into its conversation's partition
func (r *cassandraConversationRepo) CreateMessage(ctx context.Context, msg *messaging.Message) error {
	query := `
		INSERT INTO message_by_conversation (id_conversation, id_message, id_user, message)
		VALUES (?, ?, ?, ?)`

	err := r.session.Query(query,
		msg.ConversationID, msg.MessageID, msg.SenderID, msg.Message,
	).WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}

	return nil
}

// ListMessages retrieves every message in a conversation in chronological
// order
func (r *cassandraConversationRepo) ListMessages(ctx context.Context, conversationID gocql.UUID) ([]messaging.Message, error) {
	stmt := `
		SELECT id_conversation, id_message, id_user, message
		FROM message_by_conversation WHERE id_conversation = ?`

	results := []messaging.Message{}

	err := drainPages(func(pageState []byte) ([]byte, error) {
		iter := r.session.Query(stmt, conversationID).
			WithContext(ctx).
			PageSize(pageSize).
			PageState(pageState).
			Iter()
		next := iter.PageState()

		scanner := iter.Scanner()
		for scanner.Next() {
			var m messaging.Message
			if err := scanner.Scan(&m.ConversationID, &m.MessageID, &m.SenderID, &m.Message); err != nil {
				return nil, err
			}
			m.SentAt = timeid.Timestamp(m.MessageID)
			results = append(results, m)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return next, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list messages for conversation %s: %w", conversationID, err)
	}

	return results, nil
}

// LatestMessage reads the clustering order backwards for the single most
// recent message
func (r *cassandraConversationRepo) LatestMessage(ctx context.Context, conversationID gocql.UUID) (*messaging.Message, error) {
	query := `
		SELECT id_conversation, id_message, id_user, message
		FROM message_by_conversation WHERE id_conversation = ?
		ORDER BY id_message DESC LIMIT 1`

	var m messaging.Message
	err := r.session.Query(query, conversationID).WithContext(ctx).
		Scan(&m.ConversationID, &m.MessageID, &m.SenderID, &m.Message)
	if err == gocql.ErrNotFound {
		return nil, messaging.ErrNoMessages
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest message: %w", err)
	}

	m.SentAt = timeid.Timestamp(m.MessageID)
	return &m, nil
}
