package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/intellichat/backend/internal/domain"
	"github.com/intellichat/backend/internal/llm"
	"github.com/rs/zerolog/log"
)

// ChatService runs conversation turns against the generation API and
// persists them.
type ChatService struct {
	chatbots         *ChatbotService
	conversationRepo domain.ConversationRepository
	client           llm.Client
}

// NewChatService creates a new chat service
func NewChatService(chatbots *ChatbotService, conversationRepo domain.ConversationRepository, client llm.Client) *ChatService {
	return &ChatService{
		chatbots:         chatbots,
		conversationRepo: conversationRepo,
		client:           client,
	}
}

// SendMessage handles one turn: generate the persona-conditioned reply,
// label the user message's sentiment, and persist the pair. The turn is
// written only after both generation calls return, so a failed call leaves
// no partial state.
func (s *ChatService) SendMessage(ctx context.Context, ownerID, chatbotID uuid.UUID, message string) (*domain.Conversation, error) {
	chatbot, err := s.chatbots.Get(ctx, ownerID, chatbotID)
	if err != nil {
		return nil, err
	}

	reply, err := s.client.Generate(ctx, llm.BuildChatPrompt(chatbot, message))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	rawSentiment, err := s.client.Generate(ctx, llm.BuildSentimentPrompt(message))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	sentiment := domain.NormalizeSentiment(rawSentiment)
	if sentiment == domain.SentimentUnrecognized {
		log.Warn().Str("raw", rawSentiment).Msg("Unrecognized sentiment label from model")
	}

	conversation := &domain.Conversation{
		ID:          uuid.New(),
		ChatbotID:   chatbot.ID,
		UserMessage: message,
		BotResponse: reply,
		Sentiment:   sentiment,
		CreatedAt:   time.Now(),
	}

	if err := s.conversationRepo.Create(ctx, conversation); err != nil {
		return nil, fmt.Errorf("failed to save conversation: %w", err)
	}

	return conversation, nil
}

// History returns the chatbot's turns, oldest first
func (s *ChatService) History(ctx context.Context, ownerID, chatbotID uuid.UUID) ([]domain.Conversation, error) {
	if _, err := s.chatbots.Get(ctx, ownerID, chatbotID); err != nil {
		return nil, err
	}
	return s.conversationRepo.ListByChatbot(ctx, chatbotID)
}

// Summarize produces a 3-5 sentence summary of the chatbot's transcript
func (s *ChatService) Summarize(ctx context.Context, ownerID, chatbotID uuid.UUID) (string, error) {
	turns, err := s.History(ctx, ownerID, chatbotID)
	if err != nil {
		return "", err
	}
	if len(turns) == 0 {
		return "", domain.ErrNoConversations
	}

	summary, err := s.client.Generate(ctx, llm.BuildSummaryPrompt(turns))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	return summary, nil
}
