package comments

import "github.com/gocql/gocql"

// AddCommentRequest contains parameters for creating a comment.
// Visible defaults to true when omitted.
type AddCommentRequest struct {
	DatasetID string `json:"id_dataset"`
	UserName  string `json:"user_name"`
	Comment   string `json:"comment"`
	Visible   *bool  `json:"visible,omitempty"`
}

// AddReplyRequest contains parameters for replying to a comment.
// CommentID arrives as the external string form of the parent's identifier.
type AddReplyRequest struct {
	CommentID string `json:"id_comment"`
	UserName  string `json:"username"`
	Reply     string `json:"reply"`
	Visible   *bool  `json:"visible,omitempty"`
}

// SetVisibilityRequest contains parameters for toggling a comment's
// visibility flag
type SetVisibilityRequest struct {
	DatasetID string `json:"id_dataset"`
	CommentID string `json:"id_comment"`
	Visible   bool   `json:"visible"`
}

// SetVisibilityResponse echoes the comment identity and its new flag
type SetVisibilityResponse struct {
	DatasetID string     `json:"id_dataset"`
	CommentID gocql.UUID `json:"id_comment"`
	Visible   bool       `json:"visible"`
	Updated   bool       `json:"updated"`
}

// SetReplyVisibilityRequest contains parameters for toggling a reply's
// visibility flag
type SetReplyVisibilityRequest struct {
	CommentID string `json:"id_comment"`
	ReplyID   string `json:"reply_id"`
	Visible   bool   `json:"visible"`
}

// SetReplyVisibilityResponse echoes the reply identity and its new flag
type SetReplyVisibilityResponse struct {
	CommentID gocql.UUID `json:"id_comment"`
	ReplyID   gocql.UUID `json:"reply_id"`
	Visible   bool       `json:"visible"`
	Updated   bool       `json:"updated"`
}
