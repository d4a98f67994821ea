package messaging

import (
	"context"
	"fmt"
	"log/slog"

	"Datashare/internal/timeid"
)

// messagingService implements the Service interface for messaging operations
type messagingService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new messaging service instance
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &messagingService{
		repo:   repo,
		logger: logger,
	}
}

// StartConversation creates a conversation between two users, or reports the
// existing one. The existence check and the create are separate storage
// operations with no transactional link: two concurrent starts for the same
// pair can still both pass the check and create duplicates.
func (s *messagingService) StartConversation(ctx context.Context, req StartConversationRequest) (*StartConversationResponse, error) {
	if req.UserOneID == "" || req.UserTwoID == "" || req.UserOneName == "" || req.UserTwoName == "" {
		return nil, ErrParticipantsRequired
	}

	existingID, found, err := s.repo.FindConversation(ctx, req.UserOneID, req.UserTwoID)
	if err != nil {
		s.logger.Error("failed to check existing conversation",
			"error", err,
			"user_one", req.UserOneID,
			"user_two", req.UserTwoID)
		return nil, fmt.Errorf("failed to check existing conversation: %w", err)
	}
	if found {
		return &StartConversationResponse{
			ConversationID: existingID,
			CreatedAt:      timeid.Timestamp(existingID),
			Existing:       true,
		}, nil
	}

	conv := &Conversation{
		ConversationID: timeid.New(),
		UserOneID:      req.UserOneID,
		UserTwoID:      req.UserTwoID,
		UserOneName:    req.UserOneName,
		UserTwoName:    req.UserTwoName,
	}

	if err := s.repo.CreateConversation(ctx, conv); err != nil {
		s.logger.Error("failed to create conversation",
			"error", err,
			"user_one", req.UserOneID,
			"user_two", req.UserTwoID)
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	s.logger.Info("conversation created",
		"conversation", conv.ConversationID,
		"user_one", conv.UserOneID,
		"user_two", conv.UserTwoID)

	return &StartConversationResponse{
		ConversationID: conv.ConversationID,
		CreatedAt:      timeid.Timestamp(conv.ConversationID),
	}, nil
}

// ListConversations returns a user's conversations, newest first
func (s *messagingService) ListConversations(ctx context.Context, userID string) ([]ConversationListing, error) {
	if userID == "" {
		return nil, ErrSenderRequired
	}

	result, err := s.repo.ListConversations(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list conversations",
			"error", err,
			"user", userID)
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	return result, nil
}

// SendMessage appends a message to a conversation. The message identifier
// doubles as the send timestamp.
func (s *messagingService) SendMessage(ctx context.Context, req SendMessageRequest) (*Message, error) {
	if req.SenderID == "" {
		return nil, ErrSenderRequired
	}
	if req.Message == "" {
		return nil, ErrMessageEmpty
	}

	conversationID, err := timeid.Parse(req.ConversationID)
	if err != nil {
		return nil, ErrMalformedConversationID
	}

	msg := &Message{
		ConversationID: conversationID,
		MessageID:      timeid.New(),
		SenderID:       req.SenderID,
		Message:        req.Message,
	}
	msg.SentAt = timeid.Timestamp(msg.MessageID)

	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		s.logger.Error("failed to send message",
			"error", err,
			"conversation", conversationID,
			"sender", req.SenderID)
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	s.logger.Info("message sent",
		"conversation", msg.ConversationID,
		"message", msg.MessageID,
		"sender", msg.SenderID)

	return msg, nil
}

// ListMessages returns a conversation's full message history in
// chronological order
func (s *messagingService) ListMessages(ctx context.Context, conversationID string) ([]Message, error) {
	id, err := timeid.Parse(conversationID)
	if err != nil {
		return nil, ErrMalformedConversationID
	}

	result, err := s.repo.ListMessages(ctx, id)
	if err != nil {
		s.logger.Error("failed to list messages",
			"error", err,
			"conversation", id)
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return result, nil
}

// LatestMessage returns the most recent message in a conversation, or
// ErrNoMessages for a conversation that has none. Callers must treat
// ErrNoMessages as an empty result, not a failure.
func (s *messagingService) LatestMessage(ctx context.Context, conversationID string) (*Message, error) {
	id, err := timeid.Parse(conversationID)
	if err != nil {
		return nil, ErrMalformedConversationID
	}

	msg, err := s.repo.LatestMessage(ctx, id)
	if err != nil {
		if err == ErrNoMessages {
			return nil, err
		}
		s.logger.Error("failed to get latest message",
			"error", err,
			"conversation", id)
		return nil, fmt.Errorf("failed to get latest message: %w", err)
	}

	return msg, nil
}
