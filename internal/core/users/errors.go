package users

import "errors"

var (
	// ErrUserNotFound indicates the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists indicates a user with this username already exists
	ErrUserExists = errors.New("user already exists")

	// ErrUsernameRequired indicates the username field was missing
	ErrUsernameRequired = errors.New("username is required")

	// ErrFieldsRequired indicates a required profile field was missing
	ErrFieldsRequired = errors.New("first name, last name, and birth date are required")

	// ErrSelfFollow indicates a user attempted to follow themselves
	ErrSelfFollow = errors.New("users cannot follow themselves")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrUsernameRequired) ||
		errors.Is(err, ErrFieldsRequired) ||
		errors.Is(err, ErrSelfFollow)
}
