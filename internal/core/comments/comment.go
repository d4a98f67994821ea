package comments

import (
	"github.com/gocql/gocql"
)

// Comment represents a single comment on a dataset.
// Comments are keyed by dataset and ordered newest-first by their
// time-ordered identifier; text, author, and identity are immutable after
// creation, only the visibility flag can change.
type Comment struct {
	DatasetID string     `json:"id_dataset"`
	CommentID gocql.UUID `json:"id_comment"`
	Comment   string     `json:"comment"`
	UserName  string     `json:"user_name"`
	Visible   bool       `json:"visible"`
}

// Reply represents a reply to a comment. Replies are one level deep only:
// a reply cannot itself be replied to. Within a comment they are ordered
// oldest-first.
type Reply struct {
	CommentID gocql.UUID `json:"id_comment"`
	ReplyID   gocql.UUID `json:"reply_id"`
	Reply     string     `json:"reply"`
	UserName  string     `json:"username"`
	Visible   bool       `json:"visible"`
}
