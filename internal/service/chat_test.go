package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_reporting_system/internal/models"
	"github.com/shenikar/safety_reporting_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestChatService(t *testing.T) (*chatService, *mocks.MockChatRepository, *mocks.MockChatAssistant) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockChatRepository(ctrl)
	assistantMock := mocks.NewMockChatAssistant(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := NewChatService(repoMock, assistantMock, logger).(*chatService)
	svc.now = func() time.Time { return testNow }
	return svc, repoMock, assistantMock
}

func TestChatSend_PassesHistoryInChronologicalOrder(t *testing.T) {
	// Подготовка
	service, repoMock, assistantMock := newTestChatService(t)
	actor := &models.Actor{ID: uuid.New()}
	older := &models.ChatMessage{Role: models.ChatRoleUser, Content: "first"}
	newer := &models.ChatMessage{Role: models.ChatRoleAssistant, Content: "second"}

	// Ожидания
	repoMock.EXPECT().Recent(gomock.Any(), actor.ID, chatHistoryLimit).Return([]*models.ChatMessage{newer, older}, nil).Times(1)
	repoMock.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	assistantMock.EXPECT().
		Reply(gomock.Any(), []*models.ChatMessage{older, newer}, "is it safe?").
		Return("Stay in well-lit areas.", nil).
		Times(1)

	// Действие
	reply, err := service.Send(context.Background(), actor, "  is it safe?  ")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.ChatRoleAssistant, reply.Role)
	assert.Equal(t, "Stay in well-lit areas.", reply.Content)
	assert.Equal(t, actor.ID, reply.UserID)
}

func TestChatSend_AssistantFailureUsesFallback(t *testing.T) {
	service, repoMock, assistantMock := newTestChatService(t)
	actor := &models.Actor{ID: uuid.New()}

	repoMock.EXPECT().Recent(gomock.Any(), actor.ID, chatHistoryLimit).Return(nil, nil).Times(1)
	repoMock.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	assistantMock.EXPECT().Reply(gomock.Any(), gomock.Any(), "help").Return("", errors.New("quota exceeded")).Times(1)

	reply, err := service.Send(context.Background(), actor, "help")

	require.NoError(t, err)
	assert.Equal(t, chatFallbackReply, reply.Content)
	assert.Contains(t, reply.Content, "911")
}

func TestChatSend_EmptyMessage(t *testing.T) {
	service, _, _ := newTestChatService(t)

	_, err := service.Send(context.Background(), &models.Actor{ID: uuid.New()}, "   ")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestChatHistory_Chronological(t *testing.T) {
	service, repoMock, _ := newTestChatService(t)
	actor := &models.Actor{ID: uuid.New()}
	a := &models.ChatMessage{Content: "a"}
	b := &models.ChatMessage{Content: "b"}

	repoMock.EXPECT().Recent(gomock.Any(), actor.ID, 50).Return([]*models.ChatMessage{b, a}, nil).Times(1)

	history, err := service.History(context.Background(), actor)

	require.NoError(t, err)
	assert.Equal(t, []*models.ChatMessage{a, b}, history)
}

func TestChatClear(t *testing.T) {
	service, repoMock, _ := newTestChatService(t)
	actor := &models.Actor{ID: uuid.New()}

	repoMock.EXPECT().DeleteByUser(gomock.Any(), actor.ID).Return(int64(6), nil).Times(1)

	require.NoError(t, service.Clear(context.Background(), actor))
	assert.ErrorIs(t, service.Clear(context.Background(), nil), ErrAuthenticationRequired)
}
