package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/intellichat/backend/internal/domain"
)

// ChatbotService handles chatbot lifecycle
type ChatbotService struct {
	chatbotRepo domain.ChatbotRepository
	sessions    *SessionState
}

// NewChatbotService creates a new chatbot service
func NewChatbotService(chatbotRepo domain.ChatbotRepository, sessions *SessionState) *ChatbotService {
	return &ChatbotService{
		chatbotRepo: chatbotRepo,
		sessions:    sessions,
	}
}

// Create creates a chatbot owned by the given user
func (s *ChatbotService) Create(ctx context.Context, ownerID uuid.UUID, input domain.ChatbotCreate) (*domain.Chatbot, error) {
	chatbot := &domain.Chatbot{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
		Industry:    input.Industry,
		Personality: input.Personality,
		CreatedAt:   time.Now(),
	}

	if err := s.chatbotRepo.Create(ctx, chatbot); err != nil {
		return nil, fmt.Errorf("failed to create chatbot: %w", err)
	}
	return chatbot, nil
}

// List returns the user's chatbots
func (s *ChatbotService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Chatbot, error) {
	return s.chatbotRepo.ListByOwner(ctx, ownerID)
}

// Get returns the chatbot if it exists and belongs to the user; a chatbot
// owned by someone else is indistinguishable from a missing one.
func (s *ChatbotService) Get(ctx context.Context, ownerID, chatbotID uuid.UUID) (*domain.Chatbot, error) {
	chatbot, err := s.chatbotRepo.Get(ctx, chatbotID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chatbot: %w", err)
	}
	if chatbot == nil || chatbot.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return chatbot, nil
}

// Delete removes the chatbot together with all of its conversations and
// clears any session still pointing at it.
func (s *ChatbotService) Delete(ctx context.Context, ownerID, chatbotID uuid.UUID) error {
	if _, err := s.Get(ctx, ownerID, chatbotID); err != nil {
		return err
	}

	if err := s.chatbotRepo.Delete(ctx, chatbotID); err != nil {
		return err
	}

	if s.sessions != nil {
		s.sessions.DetachChatbot(chatbotID)
	}
	return nil
}
