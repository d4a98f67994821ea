// Package messaging implements direct conversations between two users.
// A conversation is written as one canonical row plus two per-participant
// lookup rows; messages cluster under the conversation by their time-ordered
// identifier, which also carries the send timestamp.
package messaging

import (
	"time"

	"github.com/gocql/gocql"
)

// Conversation is the canonical record of a conversation between two users.
// The row preserves direction: user one is whoever started it.
type Conversation struct {
	ConversationID gocql.UUID `json:"id_conversation"`
	UserOneID      string     `json:"id_user_one"`
	UserTwoID      string     `json:"id_user_two"`
	UserOneName    string     `json:"user_one_name"`
	UserTwoName    string     `json:"user_two_name"`
}

// ConversationListing is one entry in a user's conversation list, shaped from
// the per-participant lookup row. CreatedAt is derived from the conversation
// identifier's embedded timestamp, not a stored column.
type ConversationListing struct {
	ConversationID gocql.UUID `json:"id_conversation"`
	OtherUserID    string     `json:"id_other_user"`
	OtherUserName  string     `json:"other_user_name"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Message is a single message within a conversation. SentAt is derived from
// the message identifier's embedded timestamp.
type Message struct {
	ConversationID gocql.UUID `json:"id_conversation"`
	MessageID      gocql.UUID `json:"id_message"`
	SenderID       string     `json:"id_user"`
	Message        string     `json:"message"`
	SentAt         time.Time  `json:"sent_at"`
}
