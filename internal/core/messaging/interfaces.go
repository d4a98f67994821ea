package messaging

import (
	"context"
	"time"

	"github.com/gocql/gocql"
)

// Repository defines the data access interface for conversations and
// messages.
//
// CreateConversation writes three rows in one unordered batch: the canonical
// row and both participants' lookup rows. The batch carries no
// cross-partition atomicity; a partial failure can leave a participant
// unable to find a conversation the other can see.
type Repository interface {
	// CreateConversation writes the canonical row and both lookup rows
	CreateConversation(ctx context.Context, conv *Conversation) error

	// FindConversation looks up the canonical row for a participant pair,
	// trying both orderings. Returns found=false when no conversation
	// exists; that is not an error.
	FindConversation(ctx context.Context, userOneID, userTwoID string) (id gocql.UUID, found bool, err error)

	// ListConversations retrieves a user's lookup rows, newest conversation
	// first
	ListConversations(ctx context.Context, userID string) ([]ConversationListing, error)

	// CreateMessage inserts a message under its conversation partition
	CreateMessage(ctx context.Context, msg *Message) error

	// ListMessages retrieves every message in a conversation in
	// chronological order
	ListMessages(ctx context.Context, conversationID gocql.UUID) ([]Message, error)

	// LatestMessage retrieves the single most recent message, or
	// ErrNoMessages when the conversation is empty
	LatestMessage(ctx context.Context, conversationID gocql.UUID) (*Message, error)
}

// Service defines the business logic interface for messaging operations
type Service interface {
	StartConversation(ctx context.Context, req StartConversationRequest) (*StartConversationResponse, error)
	ListConversations(ctx context.Context, userID string) ([]ConversationListing, error)
	SendMessage(ctx context.Context, req SendMessageRequest) (*Message, error)
	ListMessages(ctx context.Context, conversationID string) ([]Message, error)
	LatestMessage(ctx context.Context, conversationID string) (*Message, error)
}

// StartConversationRequest contains parameters for starting a conversation
type StartConversationRequest struct {
	UserOneID   string `json:"id_user_one"`
	UserTwoID   string `json:"id_user_two"`
	UserOneName string `json:"user_one_name"`
	UserTwoName string `json:"user_two_name"`
}

// StartConversationResponse reports the conversation id. Existing is true
// when the pair already had a conversation and no rows were written.
type StartConversationResponse struct {
	ConversationID gocql.UUID `json:"id_conversation"`
	CreatedAt      time.Time  `json:"created_at"`
	Existing       bool       `json:"existing"`
}

// SendMessageRequest contains parameters for sending a message.
// ConversationID arrives as the external string form of the identifier.
type SendMessageRequest struct {
	ConversationID string `json:"id_conversation"`
	SenderID       string `json:"id_user"`
	Message        string `json:"message"`
}
