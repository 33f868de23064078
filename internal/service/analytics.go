package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/intellichat/backend/internal/domain"
)

// AnalyticsService computes descriptive statistics over a chatbot's turns
type AnalyticsService struct {
	chatbots         *ChatbotService
	conversationRepo domain.ConversationRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(chatbots *ChatbotService, conversationRepo domain.ConversationRepository) *AnalyticsService {
	return &AnalyticsService{
		chatbots:         chatbots,
		conversationRepo: conversationRepo,
	}
}

// Report builds the full analytics document for a chatbot. A chatbot with
// zero conversations yields zero counts and empty maps rather than an error.
func (s *AnalyticsService) Report(ctx context.Context, ownerID, chatbotID uuid.UUID) (*domain.AnalyticsReport, error) {
	chatbot, err := s.chatbots.Get(ctx, ownerID, chatbotID)
	if err != nil {
		return nil, err
	}

	stats, err := s.conversationRepo.Stats(ctx, chatbotID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	sentiments, err := s.conversationRepo.SentimentCounts(ctx, chatbotID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute sentiment distribution: %w", err)
	}

	daily, err := s.conversationRepo.DailyCounts(ctx, chatbotID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute message frequency: %w", err)
	}

	return &domain.AnalyticsReport{
		ChatbotName:           chatbot.Name,
		TotalMessages:         stats.TotalMessages,
		AvgUserMessageLength:  stats.AvgUserMessageLength,
		AvgBotResponseLength:  stats.AvgBotResponseLength,
		SentimentDistribution: sentiments,
		MessageFrequency:      daily,
	}, nil
}

// Stats returns just the headline numbers for the analytics page
func (s *AnalyticsService) Stats(ctx context.Context, ownerID, chatbotID uuid.UUID) (*domain.ChatbotStats, error) {
	if _, err := s.chatbots.Get(ctx, ownerID, chatbotID); err != nil {
		return nil, err
	}
	return s.conversationRepo.Stats(ctx, chatbotID)
}
