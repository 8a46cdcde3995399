//go:generate go run go.uber.org/mock/mockgen -source=conversation_service.go -destination=../mocks/mock_conversation_service.go -package=mocks

package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/pr-poehali-dev/meega-creation/internal/apperrors"
	"github.com/pr-poehali-dev/meega-creation/internal/models"
	"github.com/pr-poehali-dev/meega-creation/internal/repository"
)

const defaultChatType = "group"

var validate = validator.New()

type SendMessageCommand struct {
	ChatID   int64 `validate:"required,gt=0"`
	SenderID int64 `validate:"required,gt=0"`
	Content  string
}

type ReactCommand struct {
	MessageID int64  `validate:"required,gt=0"`
	UserID    int64  `validate:"required,gt=0"`
	Emoji     string `validate:"required"`
}

type CreateChatCommand struct {
	Name      string `validate:"required"`
	Type      string
	CreatorID int64 `validate:"required,gt=0"`
}

type ConversationService interface {
	ListChats(ctx context.Context, callerID int64) ([]*models.ChatSummary, error)
	ListMessages(ctx context.Context, chatID int64) ([]*models.MessageView, error)
	ListVoiceRooms(ctx context.Context) ([]*models.VoiceRoom, error)
	SendMessage(ctx context.Context, cmd SendMessageCommand) (*models.MessageView, error)
	React(ctx context.Context, cmd ReactCommand) error
	CreateChat(ctx context.Context, cmd CreateChatCommand) (int64, error)
}

type conversationService struct {
	repository repository.ConversationRepository
	logger     *logrus.Logger
}

func NewConversationService(repo repository.ConversationRepository, logger *logrus.Logger) ConversationService {
	return &conversationService{
		repository: repo,
		logger:     logger,
	}
}

func (s *conversationService) ListChats(ctx context.Context, callerID int64) ([]*models.ChatSummary, error) {
	if callerID <= 0 {
		return nil, apperrors.NewValidation("caller id is required")
	}

	summaries, err := s.repository.ListChatSummaries(ctx, callerID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list chats")
		return nil, err
	}

	return summaries, nil
}

func (s *conversationService) ListMessages(ctx context.Context, chatID int64) ([]*models.MessageView, error) {
	if chatID <= 0 {
		return nil, apperrors.NewValidation("chat id is required")
	}

	messages, err := s.repository.ListMessages(ctx, chatID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list messages")
		return nil, err
	}

	return messages, nil
}

func (s *conversationService) ListVoiceRooms(ctx context.Context) ([]*models.VoiceRoom, error) {
	rooms, err := s.repository.ListVoiceRooms(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list voice rooms")
		return nil, err
	}

	return rooms, nil
}

func (s *conversationService) SendMessage(ctx context.Context, cmd SendMessageCommand) (*models.MessageView, error) {
	if err := validate.Struct(cmd); err != nil {
		return nil, apperrors.NewValidation("chat_id is required")
	}

	content := strings.TrimSpace(cmd.Content)
	if content == "" {
		return nil, apperrors.NewValidation("content is required")
	}

	msg, err := s.repository.CreateMessage(ctx, cmd.ChatID, cmd.SenderID, content)
	if err != nil {
		s.logger.WithError(err).Error("Failed to send message")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"message_id": msg.ID,
		"chat_id":    cmd.ChatID,
		"sender_id":  cmd.SenderID,
	}).Info("Message sent")

	return msg, nil
}

func (s *conversationService) React(ctx context.Context, cmd ReactCommand) error {
	if err := validate.Struct(cmd); err != nil {
		return apperrors.NewValidation("message_id and emoji are required")
	}

	if err := s.repository.AddReaction(ctx, cmd.MessageID, cmd.UserID, cmd.Emoji); err != nil {
		s.logger.WithError(err).Error("Failed to add reaction")
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"message_id": cmd.MessageID,
		"user_id":    cmd.UserID,
		"emoji":      cmd.Emoji,
	}).Info("Reaction recorded")

	return nil
}

func (s *conversationService) CreateChat(ctx context.Context, cmd CreateChatCommand) (int64, error) {
	if err := validate.Struct(cmd); err != nil {
		return 0, apperrors.NewValidation("name is required")
	}

	chatType := cmd.Type
	if chatType == "" {
		chatType = defaultChatType
	}

	chatID, err := s.repository.CreateChat(ctx, cmd.Name, chatType, cmd.CreatorID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to create chat")
		return 0, err
	}

	s.logger.WithFields(logrus.Fields{
		"chat_id":    chatID,
		"chat_type":  chatType,
		"created_by": cmd.CreatorID,
	}).Info("Chat created")

	return chatID, nil
}
