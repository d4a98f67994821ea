package comments

import "errors"

var (
	// ErrDatasetIDRequired indicates the dataset id field was missing
	ErrDatasetIDRequired = errors.New("dataset id is required")

	// ErrAuthorRequired indicates the author name field was missing
	ErrAuthorRequired = errors.New("author name is required")

	// ErrContentEmpty indicates the comment or reply text was missing
	ErrContentEmpty = errors.New("comment text is required")

	// ErrMalformedCommentID indicates a comment id string could not be parsed
	// into a time-ordered identifier
	ErrMalformedCommentID = errors.New("malformed comment id")

	// ErrMalformedReplyID indicates a reply id string could not be parsed
	// into a time-ordered identifier
	ErrMalformedReplyID = errors.New("malformed reply id")
)

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrDatasetIDRequired) ||
		errors.Is(err, ErrAuthorRequired) ||
		errors.Is(err, ErrContentEmpty)
}

// IsMalformedID checks if an error is a malformed identifier error
func IsMalformedID(err error) bool {
	return errors.Is(err, ErrMalformedCommentID) ||
		errors.Is(err, ErrMalformedReplyID)
}
