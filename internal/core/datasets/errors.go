package datasets

import "errors"

var (
	// ErrDatasetNotFound indicates the requested dataset doesn't exist
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrMalformedDatasetID indicates a dataset id string is not a valid
	// document store object id
	ErrMalformedDatasetID = errors.New("malformed dataset id")

	// ErrNameRequired indicates the dataset name field was missing
	ErrNameRequired = errors.New("dataset name is required")

	// ErrAuthorRequired indicates the author field was missing
	ErrAuthorRequired = errors.New("author is required")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDatasetNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrAuthorRequired) ||
		errors.Is(err, ErrMalformedDatasetID)
}
