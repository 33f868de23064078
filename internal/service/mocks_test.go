package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/intellichat/backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockChatbotRepository mocks the ChatbotRepository interface
type MockChatbotRepository struct {
	mock.Mock
}

func (m *MockChatbotRepository) Create(ctx context.Context, chatbot *domain.Chatbot) error {
	args := m.Called(ctx, chatbot)
	return args.Error(0)
}

func (m *MockChatbotRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Chatbot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chatbot), args.Error(1)
}

func (m *MockChatbotRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Chatbot, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Chatbot), args.Error(1)
}

func (m *MockChatbotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockConversationRepository mocks the ConversationRepository interface
type MockConversationRepository struct {
	mock.Mock
}

func (m *MockConversationRepository) Create(ctx context.Context, conversation *domain.Conversation) error {
	args := m.Called(ctx, conversation)
	return args.Error(0)
}

func (m *MockConversationRepository) ListByChatbot(ctx context.Context, chatbotID uuid.UUID) ([]domain.Conversation, error) {
	args := m.Called(ctx, chatbotID)
	return args.Get(0).([]domain.Conversation), args.Error(1)
}

func (m *MockConversationRepository) Stats(ctx context.Context, chatbotID uuid.UUID) (*domain.ChatbotStats, error) {
	args := m.Called(ctx, chatbotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatbotStats), args.Error(1)
}

func (m *MockConversationRepository) SentimentCounts(ctx context.Context, chatbotID uuid.UUID) (map[string]int, error) {
	args := m.Called(ctx, chatbotID)
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockConversationRepository) DailyCounts(ctx context.Context, chatbotID uuid.UUID) (map[string]int, error) {
	args := m.Called(ctx, chatbotID)
	return args.Get(0).(map[string]int), args.Error(1)
}

// MockLLMClient mocks llm.Client
type MockLLMClient struct {
	mock.Mock
}

func (m *MockLLMClient) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockLLMClient) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockLLMClient) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
