package messaging

import "errors"

var (
	// ErrParticipantsRequired indicates a participant id or display name was
	// missing from a start-conversation request
	ErrParticipantsRequired = errors.New("both participant ids and names are required")

	// ErrSenderRequired indicates the sender id was missing
	ErrSenderRequired = errors.New("sender id is required")

	// ErrMessageEmpty indicates the message text was missing
	ErrMessageEmpty = errors.New("message text is required")

	// ErrMalformedConversationID indicates a conversation id string could not
	// be parsed into a time-ordered identifier
	ErrMalformedConversationID = errors.New("malformed conversation id")

	// ErrNoMessages signals that a conversation has no messages yet.
	// This is a well-defined empty result, not a storage failure.
	ErrNoMessages = errors.New("conversation has no messages")
)

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrParticipantsRequired) ||
		errors.Is(err, ErrSenderRequired) ||
		errors.Is(err, ErrMessageEmpty)
}
