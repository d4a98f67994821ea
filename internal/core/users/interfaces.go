package users

import "context"

// Repository defines the interface for user data persistence in the
// key-value store. Accounts are single values keyed by username; follower
// relations and per-user dataset indexes are sets keyed by username.
type Repository interface {
	// Set stores a user record, overwriting any existing value
	Set(ctx context.Context, user *User) error

	// Get retrieves a user record, or ErrUserNotFound
	Get(ctx context.Context, username string) (*User, error)

	// Delete removes a user record; deleting a missing user is not an error
	Delete(ctx context.Context, username string) error

	// Exists reports whether a username is taken
	Exists(ctx context.Context, username string) (bool, error)

	// List retrieves every user record
	List(ctx context.Context) ([]User, error)

	// AddFollower records that follower now follows followee, updating both
	// users' relation sets
	AddFollower(ctx context.Context, follower, followee string) error

	// Followers retrieves the usernames following the given user
	Followers(ctx context.Context, username string) ([]string, error)

	// Following retrieves the usernames the given user follows
	Following(ctx context.Context, username string) ([]string, error)

	// AddRepository appends a dataset id to the user's personal index
	AddRepository(ctx context.Context, username, datasetID string) error

	// Repositories retrieves the dataset ids in the user's personal index
	Repositories(ctx context.Context, username string) ([]string, error)
}

// Service defines the interface for user business logic
type Service interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
	GetUser(ctx context.Context, username string) (*User, error)
	UpdateUser(ctx context.Context, req UpdateUserRequest) (*User, error)
	DeleteUser(ctx context.Context, username string) error
	ListUsers(ctx context.Context) ([]User, error)
	FollowUser(ctx context.Context, follower, followee string) error
	Followers(ctx context.Context, username string) ([]string, error)
	Following(ctx context.Context, username string) ([]string, error)
	AddRepository(ctx context.Context, username, datasetID string) error
	Repositories(ctx context.Context, username string) ([]string, error)
}

// CreateUserRequest contains parameters for creating a user account
type CreateUserRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	BirthDate string `json:"birthDate"`
}

// UpdateUserRequest contains parameters for updating a user's profile.
// Empty fields keep their current value.
type UpdateUserRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	BirthDate string `json:"birthDate,omitempty"`
}
