package comments

import (
	"context"
	"errors"
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Datashare/internal/timeid"
)

// Mock repository for testing
type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) CreateComment(ctx context.Context, comment *Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepository) ListByDataset(ctx context.Context, datasetID string, visible *bool) ([]Comment, error) {
	args := m.Called(ctx, datasetID, visible)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Comment), args.Error(1)
}

func (m *mockCommentRepository) ListAll(ctx context.Context) ([]Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Comment), args.Error(1)
}

func (m *mockCommentRepository) SetCommentVisibility(ctx context.Context, datasetID string, commentID gocql.UUID, visible bool) error {
	args := m.Called(ctx, datasetID, commentID, visible)
	return args.Error(0)
}

func (m *mockCommentRepository) CreateReply(ctx context.Context, reply *Reply) error {
	args := m.Called(ctx, reply)
	return args.Error(0)
}

func (m *mockCommentRepository) ListReplies(ctx context.Context, commentID gocql.UUID, visible *bool) ([]Reply, error) {
	args := m.Called(ctx, commentID, visible)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Reply), args.Error(1)
}

func (m *mockCommentRepository) SetReplyVisibility(ctx context.Context, commentID, replyID gocql.UUID, visible bool) error {
	args := m.Called(ctx, commentID, replyID, visible)
	return args.Error(0)
}

func boolPtr(b bool) *bool { return &b }

func TestAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("creates comment with generated identifier", func(t *testing.T) {
		repo := new(mockCommentRepository)
		service := NewService(repo, nil)

		var created *Comment
		repo.On("CreateComment", ctx, mock.AnythingOfType("*comments.Comment")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*Comment)
			}).
			Return(nil)

		before := timeid.New()
		result, err := service.AddComment(ctx, AddCommentRequest{
			DatasetID: "ds-1",
			UserName:  "ana",
			Comment:   "great dataset",
		})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "ds-1", result.DatasetID)
		assert.Equal(t, "ana", result.UserName)
		assert.True(t, result.Visible, "visibility should default to true")
		assert.Equal(t, created, result)
		assert.Negative(t, timeid.Compare(before, result.CommentID),
			"generated identifier should sort after earlier identifiers")
		repo.AssertExpectations(t)
	})

	t.Run("honors explicit visibility false", func(t *testing.T) {
		repo := new(mockCommentRepository)
		service := NewService(repo, nil)

		repo.On("CreateComment", ctx, mock.AnythingOfType("*comments.Comment")).Return(nil)

		result, err := service.AddComment(ctx, AddCommentRequest{
			DatasetID: "ds-1",
			UserName:  "ana",
			Comment:   "hidden note",
			Visible:   boolPtr(false),
		})

		require.NoError(t, err)
		assert.False(t, result.Visible)
	})

	t.Run("rejects missing fields before any storage call", func(t *testing.T) {
		repo := new(mockCommentRepository)
		service := NewService(repo, nil)

		tests := []struct {
			name    string
			req     AddCommentRequest
			wantErr error
		}{
			{"missing dataset id", AddCommentRequest{UserName: "ana", Comment: "hi"}, ErrDatasetIDRequired},
			{"missing author", AddCommentRequest{DatasetID: "ds-1", Comment: "hi"}, ErrAuthorRequired},
			{"missing text", AddCommentRequest{DatasetID: "ds-1", UserName: "ana"}, ErrContentEmpty},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.AddComment(ctx, tt.req)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsValidationError(err))
			})
		}

		repo.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything)
	})

	t.Run("propagates storage errors", func(t *testing.T) {
		repo := new(mockCommentRepository)
		service := NewService(repo, nil)

		storageErr := errors.New("no hosts available")
		repo.On("CreateComment", ctx, mock.Anything).Return(storageErr)

		_, err := service.AddComment(ctx, AddCommentRequest{
			DatasetID: "ds-1",
			UserName:  "ana",
			Comment:   "hi",
		})

		assert.ErrorIs(t, err, storageErr)
	})
}

func TestListByDataset(t *testing.T) {
	ctx := context.Background()

	t.Run("passes tri-state filter through unchanged", func(t *testing.T) {
		// nil, true, and false are three distinct query shapes; the service
		// must not collapse nil into false.
		filters := []*bool{nil, boolPtr(true), boolPtr(false)}

		for _, filter := range filters {
			repo := new(mockCommentRepository)
			service := NewService(repo, nil)

			repo.On("ListByDataset", ctx, "ds-1", filter).Return([]Comment{}, nil)

			_, err := service.ListByDataset(ctx, "ds-1", filter)
			require.NoError(t, err)
			repo.AssertCalled(t, "ListByDataset", ctx, "ds-1", filter)
		}
	})

	t.Run("unknown dataset yields empty result, not an error", func(t *testing.T) {
		repo := new(mockCommentRepository)
		service := NewService(repo, nil)

		repo.On("ListByDataset", ctx, "nope", (*bool)(nil)).Return([]Comment{}, nil)

		result, err := service.ListByDataset(ctx, "nope", nil)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("rejects missing dataset id", func(t *testing.T) {
		repo := new(mockCommentRepository)
		service := NewService(repo, nil)

		_, err := service.ListByDataset(ctx, "", nil)
		assert.ErrorIs(t, err, ErrDatasetIDRequired)
	})
}

func TestSetCommentVisibility(t *testing.T) {
	ctx := context.Background()

	t.Run("updates flag and echoes identity", func(t *testing.T) {
		repo := new(mockCommentRepository)
		service := NewService(repo, nil)

		commentID := timeid.New()
		repo.On("SetCommentVisibility", ctx, "ds-1", commentID, false).Return(nil)

		resp, err := service.SetCommentVisibility(ctx, SetVisibilityRequest{
			DatasetID: "ds-1",
			CommentID: commentID.String(),
			Visible:   false,
		})

		require.NoError(t, err)
		assert.Equal(t, "ds-1", resp.DatasetID)
		assert.Equal(t, commentID, resp.CommentID)
		assert.False(t, resp.Visible)
		assert.True(t, resp.Updated)
		repo.AssertExpectations(t)
	})

	t.Run("rejects malformed comment id", func(t *testing.T) {
		repo := new(mockCommentRepository)
		service := NewService(repo, nil)

		_, err := service.SetCommentVisibility(ctx, SetVisibilityRequest{
			DatasetID: "ds-1",
			CommentID: "not-a-timeuuid",
			Visible:   true,
		})

		assert.ErrorIs(t, err, ErrMalformedCommentID)
		repo.AssertNotCalled(t, "SetCommentVisibility", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAddReply(t *testing.T) {
	ctx := context.Background()

	t.Run("creates reply under parsed parent id", func(t *testing.T) {
		repo := new(mockCommentRepository)
		service := NewService(repo, nil)

		parent := timeid.New()
		repo.On("CreateReply", ctx, mock.AnythingOfType("*comments.Reply")).Return(nil)

		result, err := service.AddReply(ctx, AddReplyRequest{
			CommentID: parent.String(),
			UserName:  "bruno",
			Reply:     "agreed",
		})

		require.NoError(t, err)
		assert.Equal(t, parent, result.CommentID)
		assert.Equal(t, "bruno", result.UserName)
		assert.True(t, result.Visible)
		assert.Negative(t, timeid.Compare(parent, result.ReplyID),
			"reply identifier should sort after its parent's")
	})

	t.Run("rejects malformed parent id", func(t *testing.T) {
		repo := new(mockCommentRepository)
		service := NewService(repo, nil)

		_, err := service.AddReply(ctx, AddReplyRequest{
			CommentID: "garbage",
			UserName:  "bruno",
			Reply:     "agreed",
		})

		assert.ErrorIs(t, err, ErrMalformedCommentID)
	})
}

func TestSetReplyVisibility(t *testing.T) {
	ctx := context.Background()

	repo := new(mockCommentRepository)
	service := NewService(repo, nil)

	commentID := timeid.New()
	replyID := timeid.New()
	repo.On("SetReplyVisibility", ctx, commentID, replyID, true).Return(nil)

	resp, err := service.SetReplyVisibility(ctx, SetReplyVisibilityRequest{
		CommentID: commentID.String(),
		ReplyID:   replyID.String(),
		Visible:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, commentID, resp.CommentID)
	assert.Equal(t, replyID, resp.ReplyID)
	assert.True(t, resp.Visible)
	assert.True(t, resp.Updated)

	t.Run("rejects malformed reply id", func(t *testing.T) {
		_, err := service.SetReplyVisibility(ctx, SetReplyVisibilityRequest{
			CommentID: commentID.String(),
			ReplyID:   "bad",
			Visible:   true,
		})
		assert.ErrorIs(t, err, ErrMalformedReplyID)
	})
}

func TestListReplies(t *testing.T) {
	ctx := context.Background()

	t.Run("returns replies for parsed parent id", func(t *testing.T) {
		repo := new(mockCommentRepository)
		service := NewService(repo, nil)

		parent := timeid.New()
		replies := []Reply{
			{CommentID: parent, ReplyID: timeid.New(), Reply: "first", UserName: "a", Visible: true},
			{CommentID: parent, ReplyID: timeid.New(), Reply: "second", UserName: "b", Visible: true},
		}
		repo.On("ListReplies", ctx, parent, (*bool)(nil)).Return(replies, nil)

		result, err := service.ListReplies(ctx, parent.String(), nil)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Negative(t, timeid.Compare(result[0].ReplyID, result[1].ReplyID),
			"replies should be in ascending creation order")
	})

	t.Run("rejects malformed parent id", func(t *testing.T) {
		repo := new(mockCommentRepository)
		service := NewService(repo, nil)

		_, err := service.ListReplies(ctx, "zzz", nil)
		assert.ErrorIs(t, err, ErrMalformedCommentID)
	})
}
