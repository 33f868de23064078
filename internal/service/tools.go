package service

import (
	"context"
	"fmt"

	"github.com/intellichat/backend/internal/domain"
	"github.com/intellichat/backend/internal/llm"
)

// ToolsService exposes the ad-hoc AI utilities: single-shot calls with no
// stored state.
type ToolsService struct {
	client llm.Client
}

// NewToolsService creates a new tools service
func NewToolsService(client llm.Client) *ToolsService {
	return &ToolsService{client: client}
}

// AnalyzeSentiment labels free text with a sentiment from the closed set
func (s *ToolsService) AnalyzeSentiment(ctx context.Context, text string) (domain.Sentiment, error) {
	raw, err := s.client.Generate(ctx, llm.BuildSentimentPrompt(text))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	return domain.NormalizeSentiment(raw), nil
}

// GenerateImagePrompt produces a text-to-image prompt for a description
func (s *ToolsService) GenerateImagePrompt(ctx context.Context, description string) (string, error) {
	out, err := s.client.Generate(ctx, llm.BuildImagePrompt(description))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	return out, nil
}

// SummarizeText summarizes free text by treating it as a one-turn transcript
func (s *ToolsService) SummarizeText(ctx context.Context, text string) (string, error) {
	turns := []domain.Conversation{{UserMessage: text}}
	out, err := s.client.Generate(ctx, llm.BuildSummaryPrompt(turns))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	return out, nil
}

// GeneratePersona suggests a chatbot identity for the create flow. The
// output is freeform text and is not parsed back into chatbot fields.
func (s *ToolsService) GeneratePersona(ctx context.Context, industry, traits string) (string, error) {
	out, err := s.client.Generate(ctx, llm.BuildPersonaPrompt(industry, traits))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	return out, nil
}
