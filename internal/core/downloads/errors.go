package downloads

import "errors"

var (
	// ErrDatasetIDRequired indicates the dataset id field was missing
	ErrDatasetIDRequired = errors.New("dataset id is required")

	// ErrUserIDRequired indicates the user id field was missing
	ErrUserIDRequired = errors.New("user id is required")

	// ErrFieldsRequired indicates one of the denormalized name/description
	// fields was missing
	ErrFieldsRequired = errors.New("dataset name, description, and user name are required")
)

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrDatasetIDRequired) ||
		errors.Is(err, ErrUserIDRequired) ||
		errors.Is(err, ErrFieldsRequired)
}
