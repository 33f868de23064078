package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sentiment is the label attached to a conversation turn.
type Sentiment string

const (
	SentimentPositive     Sentiment = "Positive"
	SentimentNegative     Sentiment = "Negative"
	SentimentNeutral      Sentiment = "Neutral"
	SentimentUnrecognized Sentiment = "Unrecognized"
)

// NormalizeSentiment maps raw model output onto the closed sentiment set.
// Models occasionally decorate the label ("Sentiment: Positive.", quotes,
// trailing prose), so matching is case-insensitive on the first recognized
// label word. Anything else becomes Unrecognized.
func NormalizeSentiment(raw string) Sentiment {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.Trim(s, `"'.*`)
	for _, label := range []Sentiment{SentimentPositive, SentimentNegative, SentimentNeutral} {
		if strings.Contains(s, strings.ToLower(string(label))) {
			return label
		}
	}
	return SentimentUnrecognized
}

// Conversation represents a single message turn: one user message and the
// bot response it produced. Turns are immutable once written.
type Conversation struct {
	ID          uuid.UUID `json:"id"`
	ChatbotID   uuid.UUID `json:"chatbot_id"`
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	Sentiment   Sentiment `json:"sentiment"`
	CreatedAt   time.Time `json:"created_at"`
}

// ChatbotStats holds descriptive statistics over a chatbot's turns.
// Averages are 0 when TotalMessages is 0.
type ChatbotStats struct {
	TotalMessages        int     `json:"total_messages"`
	AvgUserMessageLength float64 `json:"avg_user_message_length"`
	AvgBotResponseLength float64 `json:"avg_bot_response_length"`
}

// ConversationRepository defines the interface for conversation storage
type ConversationRepository interface {
	Create(ctx context.Context, conversation *Conversation) error
	// ListByChatbot returns turns ordered by timestamp ascending.
	ListByChatbot(ctx context.Context, chatbotID uuid.UUID) ([]Conversation, error)
	Stats(ctx context.Context, chatbotID uuid.UUID) (*ChatbotStats, error)
	// SentimentCounts returns label frequencies, skipping rows without a
	// usable label.
	SentimentCounts(ctx context.Context, chatbotID uuid.UUID) (map[string]int, error)
	// DailyCounts returns turns-per-day keyed by "YYYY-MM-DD".
	DailyCounts(ctx context.Context, chatbotID uuid.UUID) (map[string]int, error)
}
