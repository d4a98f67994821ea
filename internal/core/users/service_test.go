package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock repository for testing
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Set(ctx context.Context, user *User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Get(ctx context.Context, username string) (*User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockUserRepository) Delete(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func (m *mockUserRepository) Exists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context) ([]User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]User), args.Error(1)
}

func (m *mockUserRepository) AddFollower(ctx context.Context, follower, followee string) error {
	args := m.Called(ctx, follower, followee)
	return args.Error(0)
}

func (m *mockUserRepository) Followers(ctx context.Context, username string) ([]string, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockUserRepository) Following(ctx context.Context, username string) ([]string, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockUserRepository) AddRepository(ctx context.Context, username, datasetID string) error {
	args := m.Called(ctx, username, datasetID)
	return args.Error(0)
}

func (m *mockUserRepository) Repositories(ctx context.Context, username string) ([]string, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	validReq := CreateUserRequest{
		Username:  "ana",
		FirstName: "Ana",
		LastName:  "García",
		BirthDate: "1999-04-12",
	}

	t.Run("creates new user", func(t *testing.T) {
		repo := new(mockUserRepository)
		service := NewService(repo, nil)

		repo.On("Exists", ctx, "ana").Return(false, nil)
		repo.On("Set", ctx, mock.AnythingOfType("*users.User")).Return(nil)

		user, err := service.CreateUser(ctx, validReq)
		require.NoError(t, err)
		assert.Equal(t, "ana", user.Username)
		repo.AssertExpectations(t)
	})

	t.Run("rejects taken username", func(t *testing.T) {
		repo := new(mockUserRepository)
		service := NewService(repo, nil)

		repo.On("Exists", ctx, "ana").Return(true, nil)

		_, err := service.CreateUser(ctx, validReq)
		assert.ErrorIs(t, err, ErrUserExists)
		repo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		repo := new(mockUserRepository)
		service := NewService(repo, nil)

		_, err := service.CreateUser(ctx, CreateUserRequest{FirstName: "Ana", LastName: "García", BirthDate: "1999-04-12"})
		assert.ErrorIs(t, err, ErrUsernameRequired)

		_, err = service.CreateUser(ctx, CreateUserRequest{Username: "ana", LastName: "García", BirthDate: "1999-04-12"})
		assert.ErrorIs(t, err, ErrFieldsRequired)
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	repo := new(mockUserRepository)
	service := NewService(repo, nil)

	stored := &User{Username: "ana", FirstName: "Ana", LastName: "García", BirthDate: "1999-04-12"}
	repo.On("Get", ctx, "ana").Return(stored, nil)
	repo.On("Set", ctx, mock.AnythingOfType("*users.User")).Return(nil)

	updated, err := service.UpdateUser(ctx, UpdateUserRequest{Username: "ana", LastName: "Pérez"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", updated.FirstName, "empty fields keep their stored value")
	assert.Equal(t, "Pérez", updated.LastName)
}

func TestFollowUser(t *testing.T) {
	ctx := context.Background()

	t.Run("records follow between existing users", func(t *testing.T) {
		repo := new(mockUserRepository)
		service := NewService(repo, nil)

		repo.On("Exists", ctx, "ana").Return(true, nil)
		repo.On("Exists", ctx, "bruno").Return(true, nil)
		repo.On("AddFollower", ctx, "ana", "bruno").Return(nil)

		err := service.FollowUser(ctx, "ana", "bruno")
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects self follow", func(t *testing.T) {
		repo := new(mockUserRepository)
		service := NewService(repo, nil)

		err := service.FollowUser(ctx, "ana", "ana")
		assert.ErrorIs(t, err, ErrSelfFollow)
	})

	t.Run("rejects unknown followee", func(t *testing.T) {
		repo := new(mockUserRepository)
		service := NewService(repo, nil)

		repo.On("Exists", ctx, "ana").Return(true, nil)
		repo.On("Exists", ctx, "ghost").Return(false, nil)

		err := service.FollowUser(ctx, "ana", "ghost")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestRepositories(t *testing.T) {
	ctx := context.Background()

	repo := new(mockUserRepository)
	service := NewService(repo, nil)

	repo.On("AddRepository", ctx, "ana", "ds-1").Return(nil)
	repo.On("Repositories", ctx, "ana").Return([]string{"ds-1"}, nil)

	require.NoError(t, service.AddRepository(ctx, "ana", "ds-1"))

	ids, err := service.Repositories(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, []string{"ds-1"}, ids)
}
