package datasets

import "context"

// Repository defines the interface for dataset metadata persistence in the
// document store
type Repository interface {
	// Insert stores a new metadata document and fills in the generated id
	Insert(ctx context.Context, dataset *Dataset) error

	// GetByID retrieves a dataset, or ErrDatasetNotFound /
	// ErrMalformedDatasetID
	GetByID(ctx context.Context, id string) (*Dataset, error)

	// ListApproved retrieves datasets whose status is approved.
	// limit of 0 means no limit.
	ListApproved(ctx context.Context, limit, skip int64) ([]Dataset, error)

	// SearchByName retrieves datasets matching a name, exactly or by
	// substring, optionally case-insensitively
	SearchByName(ctx context.Context, name string, opts SearchOptions) ([]Dataset, error)

	// SetStatus updates a dataset's status field, or ErrDatasetNotFound
	SetStatus(ctx context.Context, id, status string) (*Dataset, error)
}

// SearchOptions controls name search behavior
type SearchOptions struct {
	Exact           bool
	CaseInsensitive bool
	Limit           int64
	Skip            int64
}

// Service defines the interface for dataset business logic
type Service interface {
	AddDataset(ctx context.Context, req AddDatasetRequest) (*Dataset, error)
	GetDataset(ctx context.Context, id string) (*Dataset, error)
	ListApproved(ctx context.Context, limit, skip int64) ([]Dataset, error)
	SearchByName(ctx context.Context, name string, opts SearchOptions) ([]Dataset, error)
	ApproveDataset(ctx context.Context, id string) (*Dataset, error)
	DeleteDataset(ctx context.Context, id string) (*Dataset, error)
	CloneDataset(ctx context.Context, id, newName string) (*Dataset, error)
}

// AddDatasetRequest contains parameters for publishing a dataset
type AddDatasetRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Author      string `json:"author"`
	Size        int64  `json:"size"`
}
