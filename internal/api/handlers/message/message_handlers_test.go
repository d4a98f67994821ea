package message

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Datashare/internal/core/messaging"
	"Datashare/internal/timeid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockMessagingService implements messaging.Service for testing
type mockMessagingService struct {
	startFunc  func(ctx context.Context, req messaging.StartConversationRequest) (*messaging.StartConversationResponse, error)
	latestFunc func(ctx context.Context, conversationID string) (*messaging.Message, error)
}

func (m *mockMessagingService) StartConversation(ctx context.Context, req messaging.StartConversationRequest) (*messaging.StartConversationResponse, error) {
	if m.startFunc != nil {
		return m.startFunc(ctx, req)
	}
	id := timeid.New()
	return &messaging.StartConversationResponse{
		ConversationID: id,
		CreatedAt:      timeid.Timestamp(id),
	}, nil
}

func (m *mockMessagingService) ListConversations(ctx context.Context, userID string) ([]messaging.ConversationListing, error) {
	return []messaging.ConversationListing{}, nil
}

func (m *mockMessagingService) SendMessage(ctx context.Context, req messaging.SendMessageRequest) (*messaging.Message, error) {
	id, err := timeid.Parse(req.ConversationID)
	if err != nil {
		return nil, messaging.ErrMalformedConversationID
	}
	msgID := timeid.New()
	return &messaging.Message{
		ConversationID: id,
		MessageID:      msgID,
		SenderID:       req.SenderID,
		Message:        req.Message,
		SentAt:         timeid.Timestamp(msgID),
	}, nil
}

func (m *mockMessagingService) ListMessages(ctx context.Context, conversationID string) ([]messaging.Message, error) {
	return []messaging.Message{}, nil
}

func (m *mockMessagingService) LatestMessage(ctx context.Context, conversationID string) (*messaging.Message, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx, conversationID)
	}
	return nil, messaging.ErrNoMessages
}

func TestHandleStartConversation_New(t *testing.T) {
	handler := NewConversationHandler(&mockMessagingService{})

	body, _ := json.Marshal(map[string]interface{}{
		"id_user_one":   "alice",
		"id_user_two":   "bob",
		"user_one_name": "Alice",
		"user_two_name": "Bob",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/start_conversation", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleStartConversation(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp messaging.StartConversationResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Existing)
}

func TestHandleStartConversation_ExistingReturns200(t *testing.T) {
	existing := timeid.New()
	handler := NewConversationHandler(&mockMessagingService{
		startFunc: func(ctx context.Context, req messaging.StartConversationRequest) (*messaging.StartConversationResponse, error) {
			return &messaging.StartConversationResponse{
				ConversationID: existing,
				CreatedAt:      timeid.Timestamp(existing),
				Existing:       true,
			}, nil
		},
	})

	body, _ := json.Marshal(map[string]interface{}{
		"id_user_one":   "alice",
		"id_user_two":   "bob",
		"user_one_name": "Alice",
		"user_two_name": "Bob",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/start_conversation", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleStartConversation(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp messaging.StartConversationResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Existing)
	assert.Equal(t, existing.String(), resp.ConversationID.String())
}

func TestHandleStartConversation_MissingParticipant(t *testing.T) {
	handler := NewConversationHandler(&mockMessagingService{
		startFunc: func(ctx context.Context, req messaging.StartConversationRequest) (*messaging.StartConversationResponse, error) {
			return nil, messaging.ErrParticipantsRequired
		},
	})

	body, _ := json.Marshal(map[string]interface{}{"id_user_one": "alice"})
	req := httptest.NewRequest(http.MethodPost, "/api/start_conversation", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleStartConversation(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSendMessage_MalformedConversationID(t *testing.T) {
	handler := NewMessageHandler(&mockMessagingService{})

	body, _ := json.Marshal(map[string]interface{}{
		"id_conversation": "garbage",
		"id_user":         "alice",
		"message":         "hi",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/send_message", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleSendMessage(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSendMessage_Success(t *testing.T) {
	handler := NewMessageHandler(&mockMessagingService{})

	body, _ := json.Marshal(map[string]interface{}{
		"id_conversation": timeid.New().String(),
		"id_user":         "alice",
		"message":         "hi",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/send_message", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleSendMessage(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var msg messaging.Message
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&msg))
	assert.Equal(t, "alice", msg.SenderID)
	assert.False(t, msg.SentAt.IsZero())
}

func TestHandleGetLatestMessage_EmptyConversationIs404(t *testing.T) {
	handler := NewMessageHandler(&mockMessagingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/get_latest_message?id_conversation="+timeid.New().String(), nil)
	rec := httptest.NewRecorder()

	handler.HandleGetLatestMessage(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var errBody map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errBody))
	assert.Equal(t, "NotFound", errBody["error"])
}

func TestHandleGetConversations_RequiresUserID(t *testing.T) {
	handler := NewConversationHandler(&mockMessagingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/get_user_conversations", nil)
	rec := httptest.NewRecorder()

	handler.HandleGetConversations(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
