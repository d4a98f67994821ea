package users

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

type userService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new user service
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

// CreateUser creates a new user account, rejecting taken usernames
func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if req.FirstName == "" || req.LastName == "" || req.BirthDate == "" {
		return nil, ErrFieldsRequired
	}

	taken, err := s.repo.Exists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, ErrUserExists
	}

	user := &User{
		Username:  username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: req.BirthDate,
	}

	if err := s.repo.Set(ctx, user); err != nil {
		s.logger.Error("failed to create user", "error", err, "username", username)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user created", "username", username)
	return user, nil
}

// GetUser retrieves a user by username
func (s *userService) GetUser(ctx context.Context, username string) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrUsernameRequired
	}
	return s.repo.Get(ctx, username)
}

// UpdateUser updates a user's profile fields; empty request fields keep
// their stored value
func (s *userService) UpdateUser(ctx context.Context, req UpdateUserRequest) (*User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	existing, err := s.repo.Get(ctx, username)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		existing.FirstName = req.FirstName
	}
	if req.LastName != "" {
		existing.LastName = req.LastName
	}
	if req.BirthDate != "" {
		existing.BirthDate = req.BirthDate
	}

	if err := s.repo.Set(ctx, existing); err != nil {
		s.logger.Error("failed to update user", "error", err, "username", username)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return existing, nil
}

// DeleteUser removes a user account
func (s *userService) DeleteUser(ctx context.Context, username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrUsernameRequired
	}

	if _, err := s.repo.Get(ctx, username); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, username); err != nil {
		s.logger.Error("failed to delete user", "error", err, "username", username)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("user deleted", "username", username)
	return nil
}

// ListUsers retrieves every user account
func (s *userService) ListUsers(ctx context.Context) ([]User, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return result, nil
}

// FollowUser records a follow relation between two existing users
func (s *userService) FollowUser(ctx context.Context, follower, followee string) error {
	if follower == "" || followee == "" {
		return ErrUsernameRequired
	}
	if follower == followee {
		return ErrSelfFollow
	}

	for _, username := range []string{follower, followee} {
		exists, err := s.repo.Exists(ctx, username)
		if err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if !exists {
			return ErrUserNotFound
		}
	}

	if err := s.repo.AddFollower(ctx, follower, followee); err != nil {
		s.logger.Error("failed to record follow",
			"error", err,
			"follower", follower,
			"followee", followee)
		return fmt.Errorf("failed to record follow: %w", err)
	}

	s.logger.Info("follow recorded", "follower", follower, "followee", followee)
	return nil
}

// Followers retrieves the usernames following a user
func (s *userService) Followers(ctx context.Context, username string) ([]string, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	return s.repo.Followers(ctx, username)
}

// Following retrieves the usernames a user follows
func (s *userService) Following(ctx context.Context, username string) ([]string, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	return s.repo.Following(ctx, username)
}

// AddRepository appends a dataset to the user's personal index
func (s *userService) AddRepository(ctx context.Context, username, datasetID string) error {
	if username == "" {
		return ErrUsernameRequired
	}
	if datasetID == "" {
		return ErrFieldsRequired
	}

	if err := s.repo.AddRepository(ctx, username, datasetID); err != nil {
		s.logger.Error("failed to index repository",
			"error", err,
			"username", username,
			"dataset", datasetID)
		return fmt.Errorf("failed to index repository: %w", err)
	}

	return nil
}

// Repositories retrieves the dataset ids a user has published
func (s *userService) Repositories(ctx context.Context, username string) ([]string, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	return s.repo.Repositories(ctx, username)
}
