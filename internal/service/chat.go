package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	chatHistoryLimit = 10

	chatFallbackReply = "I apologize, but I'm having trouble responding right now. " +
		"If you're in immediate danger, please call 911. Otherwise, please try again in a moment."
)

type ChatRepository interface {
	Insert(ctx context.Context, msg *models.ChatMessage) error
	// Recent возвращает последние сообщения пользователя, новые первыми
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.ChatMessage, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// ChatAssistant генерирует ответ по истории переписки (старые сообщения первыми)
type ChatAssistant interface {
	Reply(ctx context.Context, history []*models.ChatMessage, message string) (string, error)
}

type ChatService interface {
	Send(ctx context.Context, actor *models.Actor, message string) (*models.ChatMessage, error)
	History(ctx context.Context, actor *models.Actor) ([]*models.ChatMessage, error)
	Clear(ctx context.Context, actor *models.Actor) error
}

type chatService struct {
	repo      ChatRepository
	assistant ChatAssistant
	logger    *logrus.Logger
	now       func() time.Time
}

func NewChatService(repo ChatRepository, assistant ChatAssistant, logger *logrus.Logger) ChatService {
	return &chatService{
		repo:      repo,
		assistant: assistant,
		logger:    logger,
		now:       time.Now,
	}
}

// Send сохраняет сообщение пользователя и ответ ассистента.
// Сбой модели не возвращается как ошибка: пользователь получает стандартный ответ.
func (s *chatService) Send(ctx context.Context, actor *models.Actor, message string) (*models.ChatMessage, error) {
	if actor == nil {
		return nil, ErrAuthenticationRequired
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("service: empty chat message: %w", ErrInvalidInput)
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "chat",
		"method":  "Send",
		"user_id": actor.ID,
	})

	recent, err := s.repo.Recent(ctx, actor.ID, chatHistoryLimit)
	if err != nil {
		log.WithError(err).Warn("Failed to load chat history, continuing without it")
		recent = nil
	}
	history := make([]*models.ChatMessage, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		history = append(history, recent[i])
	}

	userMsg := &models.ChatMessage{
		UserID:    actor.ID,
		Role:      models.ChatRoleUser,
		Content:   message,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, userMsg); err != nil {
		log.WithError(err).Error("Failed to store user chat message")
		return nil, fmt.Errorf("service: could not store chat message: %w", err)
	}

	reply, err := s.assistant.Reply(ctx, history, message)
	if err != nil {
		log.WithError(err).Warn("Chat assistant failed, using fallback reply")
		reply = chatFallbackReply
	}

	assistantMsg := &models.ChatMessage{
		UserID:    actor.ID,
		Role:      models.ChatRoleAssistant,
		Content:   reply,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, assistantMsg); err != nil {
		log.WithError(err).Warn("Failed to store assistant reply")
	}
	return assistantMsg, nil
}

// History возвращает переписку в хронологическом порядке
func (s *chatService) History(ctx context.Context, actor *models.Actor) ([]*models.ChatMessage, error) {
	if actor == nil {
		return nil, ErrAuthenticationRequired
	}
	recent, err := s.repo.Recent(ctx, actor.ID, 50)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", actor.ID).Error("Failed to load chat history")
		return nil, fmt.Errorf("service: could not load chat history: %w", err)
	}
	history := make([]*models.ChatMessage, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		history = append(history, recent[i])
	}
	return history, nil
}

// Clear удаляет переписку пользователя (новая сессия чата)
func (s *chatService) Clear(ctx context.Context, actor *models.Actor) error {
	if actor == nil {
		return ErrAuthenticationRequired
	}
	deleted, err := s.repo.DeleteByUser(ctx, actor.ID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", actor.ID).Error("Failed to clear chat history")
		return fmt.Errorf("service: could not clear chat history: %w", err)
	}
	s.logger.WithFields(logrus.Fields{"user_id": actor.ID, "deleted": deleted}).Info("Chat history cleared")
	return nil
}
