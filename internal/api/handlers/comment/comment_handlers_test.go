package comment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Datashare/internal/core/comments"
	"Datashare/internal/timeid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCommentService implements comments.Service for testing
type mockCommentService struct {
	addFunc           func(ctx context.Context, req comments.AddCommentRequest) (*comments.Comment, error)
	listByDatasetFunc func(ctx context.Context, datasetID string, visible *bool) ([]comments.Comment, error)
	listRepliesFunc   func(ctx context.Context, commentID string, visible *bool) ([]comments.Reply, error)
}

func (m *mockCommentService) AddComment(ctx context.Context, req comments.AddCommentRequest) (*comments.Comment, error) {
	if m.addFunc != nil {
		return m.addFunc(ctx, req)
	}
	return &comments.Comment{
		DatasetID: req.DatasetID,
		CommentID: timeid.New(),
		Comment:   req.Comment,
		UserName:  req.UserName,
		Visible:   true,
	}, nil
}

func (m *mockCommentService) ListByDataset(ctx context.Context, datasetID string, visible *bool) ([]comments.Comment, error) {
	if m.listByDatasetFunc != nil {
		return m.listByDatasetFunc(ctx, datasetID, visible)
	}
	return []comments.Comment{}, nil
}

func (m *mockCommentService) ListAll(ctx context.Context) ([]comments.Comment, error) {
	return []comments.Comment{}, nil
}

func (m *mockCommentService) SetCommentVisibility(ctx context.Context, req comments.SetVisibilityRequest) (*comments.SetVisibilityResponse, error) {
	id, err := timeid.Parse(req.CommentID)
	if err != nil {
		return nil, comments.ErrMalformedCommentID
	}
	return &comments.SetVisibilityResponse{
		DatasetID: req.DatasetID,
		CommentID: id,
		Visible:   req.Visible,
		Updated:   true,
	}, nil
}

func (m *mockCommentService) AddReply(ctx context.Context, req comments.AddReplyRequest) (*comments.Reply, error) {
	return nil, nil
}

func (m *mockCommentService) ListReplies(ctx context.Context, commentID string, visible *bool) ([]comments.Reply, error) {
	if m.listRepliesFunc != nil {
		return m.listRepliesFunc(ctx, commentID, visible)
	}
	return []comments.Reply{}, nil
}

func (m *mockCommentService) SetReplyVisibility(ctx context.Context, req comments.SetReplyVisibilityRequest) (*comments.SetReplyVisibilityResponse, error) {
	return nil, nil
}

func TestHandleAddComment_Success(t *testing.T) {
	handler := NewAddCommentHandler(&mockCommentService{})

	body, _ := json.Marshal(map[string]interface{}{
		"id_dataset": "ds-1",
		"user_name":  "alice",
		"comment":    "great data",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/add_comment", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleAddComment(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var created comments.Comment
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "ds-1", created.DatasetID)
	assert.True(t, created.Visible)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", created.CommentID.String())
}

func TestHandleAddComment_InvalidBody(t *testing.T) {
	handler := NewAddCommentHandler(&mockCommentService{})

	req := httptest.NewRequest(http.MethodPost, "/api/add_comment", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	handler.HandleAddComment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAddComment_ValidationError(t *testing.T) {
	handler := NewAddCommentHandler(&mockCommentService{
		addFunc: func(ctx context.Context, req comments.AddCommentRequest) (*comments.Comment, error) {
			return nil, comments.ErrDatasetIDRequired
		},
	})

	body, _ := json.Marshal(map[string]interface{}{"comment": "orphan"})
	req := httptest.NewRequest(http.MethodPost, "/api/add_comment", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleAddComment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errBody map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errBody))
	assert.Equal(t, "InvalidRequest", errBody["error"])
	assert.NotEmpty(t, errBody["message"])
}

func TestHandleGetByDataset_VisibleFilterTriState(t *testing.T) {
	var captured *bool
	wasCalled := false
	handler := NewGetCommentsHandler(&mockCommentService{
		listByDatasetFunc: func(ctx context.Context, datasetID string, visible *bool) ([]comments.Comment, error) {
			captured = visible
			wasCalled = true
			return []comments.Comment{}, nil
		},
	})

	// omitted: no filter
	req := httptest.NewRequest(http.MethodGet, "/api/get_all_comments_by_dataset?id_dataset=ds-1", nil)
	rec := httptest.NewRecorder()
	handler.HandleGetByDataset(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, wasCalled)
	assert.Nil(t, captured)

	// explicit false is a filter, not an omission
	req = httptest.NewRequest(http.MethodGet, "/api/get_all_comments_by_dataset?id_dataset=ds-1&visible=false", nil)
	rec = httptest.NewRecorder()
	handler.HandleGetByDataset(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.False(t, *captured)

	// garbage value is rejected
	req = httptest.NewRequest(http.MethodGet, "/api/get_all_comments_by_dataset?id_dataset=ds-1&visible=maybe", nil)
	rec = httptest.NewRecorder()
	handler.HandleGetByDataset(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetByDataset_RequiresDatasetID(t *testing.T) {
	handler := NewGetCommentsHandler(&mockCommentService{})

	req := httptest.NewRequest(http.MethodGet, "/api/get_all_comments_by_dataset", nil)
	rec := httptest.NewRecorder()

	handler.HandleGetByDataset(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetByDataset_EmptyResultIsOKWithEmptyArray(t *testing.T) {
	handler := NewGetCommentsHandler(&mockCommentService{})

	req := httptest.NewRequest(http.MethodGet, "/api/get_all_comments_by_dataset?id_dataset=empty", nil)
	rec := httptest.NewRecorder()

	handler.HandleGetByDataset(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHandleUpdateComment_MalformedID(t *testing.T) {
	handler := NewUpdateVisibilityHandler(&mockCommentService{})

	body, _ := json.Marshal(map[string]interface{}{
		"id_dataset": "ds-1",
		"id_comment": "not-a-uuid",
		"visible":    false,
	})
	req := httptest.NewRequest(http.MethodPut, "/api/update_comment_visibility", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleUpdateComment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUpdateComment_AlwaysReportsUpdated(t *testing.T) {
	handler := NewUpdateVisibilityHandler(&mockCommentService{})

	body, _ := json.Marshal(map[string]interface{}{
		"id_dataset": "ds-1",
		"id_comment": timeid.New().String(),
		"visible":    false,
	})
	req := httptest.NewRequest(http.MethodPut, "/api/update_comment_visibility", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleUpdateComment(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp comments.SetVisibilityResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Updated)
	assert.False(t, resp.Visible)
}
