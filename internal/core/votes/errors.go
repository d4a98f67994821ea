package votes

import "errors"

var (
	// ErrDatasetIDRequired indicates the dataset id field was missing
	ErrDatasetIDRequired = errors.New("dataset id is required")

	// ErrUserIDRequired indicates the user id field was missing
	ErrUserIDRequired = errors.New("user id is required")

	// ErrDatasetNameRequired indicates the dataset name field was missing
	ErrDatasetNameRequired = errors.New("dataset name is required")

	// ErrUserNameRequired indicates the rater's display name was missing
	ErrUserNameRequired = errors.New("user name is required")

	// ErrRatingOutOfRange indicates the rating is not an integer from 1 to 5
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
)

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrDatasetIDRequired) ||
		errors.Is(err, ErrUserIDRequired) ||
		errors.Is(err, ErrDatasetNameRequired) ||
		errors.Is(err, ErrUserNameRequired) ||
		errors.Is(err, ErrRatingOutOfRange)
}
