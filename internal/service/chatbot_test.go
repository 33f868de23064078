package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/intellichat/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChatbotService_Get(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	chatbot := testChatbot(ownerID)

	t.Run("owner sees the chatbot", func(t *testing.T) {
		mockRepo := new(MockChatbotRepository)
		svc := NewChatbotService(mockRepo, nil)

		mockRepo.On("Get", ctx, chatbot.ID).Return(chatbot, nil)

		got, err := svc.Get(ctx, ownerID, chatbot.ID)
		require.NoError(t, err)
		assert.Equal(t, chatbot.ID, got.ID)
	})

	t.Run("another user's chatbot looks missing", func(t *testing.T) {
		mockRepo := new(MockChatbotRepository)
		svc := NewChatbotService(mockRepo, nil)

		mockRepo.On("Get", ctx, chatbot.ID).Return(chatbot, nil)

		_, err := svc.Get(ctx, uuid.New(), chatbot.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		mockRepo := new(MockChatbotRepository)
		svc := NewChatbotService(mockRepo, nil)

		missingID := uuid.New()
		mockRepo.On("Get", ctx, missingID).Return(nil, nil)

		_, err := svc.Get(ctx, ownerID, missingID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestChatbotService_Delete(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	chatbot := testChatbot(ownerID)

	t.Run("delete detaches active sessions", func(t *testing.T) {
		mockRepo := new(MockChatbotRepository)
		sessions := NewSessionState(time.Hour)
		svc := NewChatbotService(mockRepo, sessions)

		sessions.SetActiveChatbot(ownerID, chatbot.ID)
		mockRepo.On("Get", ctx, chatbot.ID).Return(chatbot, nil)
		mockRepo.On("Delete", ctx, chatbot.ID).Return(nil)

		require.NoError(t, svc.Delete(ctx, ownerID, chatbot.ID))

		_, ok := sessions.ActiveChatbot(ownerID)
		assert.False(t, ok, "deleted chatbot must not stay active in any session")
		mockRepo.AssertExpectations(t)
	})

	t.Run("delete leaves unrelated sessions alone", func(t *testing.T) {
		mockRepo := new(MockChatbotRepository)
		sessions := NewSessionState(time.Hour)
		svc := NewChatbotService(mockRepo, sessions)

		otherUser := uuid.New()
		otherChatbot := uuid.New()
		sessions.SetActiveChatbot(otherUser, otherChatbot)
		mockRepo.On("Get", ctx, chatbot.ID).Return(chatbot, nil)
		mockRepo.On("Delete", ctx, chatbot.ID).Return(nil)

		require.NoError(t, svc.Delete(ctx, ownerID, chatbot.ID))

		active, ok := sessions.ActiveChatbot(otherUser)
		assert.True(t, ok)
		assert.Equal(t, otherChatbot, active)
	})

	t.Run("cannot delete someone else's chatbot", func(t *testing.T) {
		mockRepo := new(MockChatbotRepository)
		svc := NewChatbotService(mockRepo, NewSessionState(time.Hour))

		mockRepo.On("Get", ctx, chatbot.ID).Return(chatbot, nil)

		err := svc.Delete(ctx, uuid.New(), chatbot.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestChatbotExport(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	chatbot := &domain.Chatbot{
		Name:        "SupportBot",
		Description: "Answers product questions",
		Industry:    "Technology",
		Personality: "patient",
		CreatedAt:   created,
	}

	export := chatbot.Export()
	assert.Equal(t, "SupportBot", export.Name)
	assert.Equal(t, "2026-03-01 09:30:00", export.CreatedAt)
}
