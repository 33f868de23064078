package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/intellichat/backend/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ConversationRepository implements domain.ConversationRepository
type ConversationRepository struct {
	pool *pgxpool.Pool
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(db *DB) *ConversationRepository {
	return &ConversationRepository{pool: db.Pool}
}

func (r *ConversationRepository) Create(ctx context.Context, conversation *domain.Conversation) error {
	query := `
		INSERT INTO conversations (id, chatbot_id, user_message, bot_response, sentiment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		conversation.ID,
		conversation.ChatbotID,
		conversation.UserMessage,
		conversation.BotResponse,
		string(conversation.Sentiment),
		conversation.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}
	return nil
}

func (r *ConversationRepository) ListByChatbot(ctx context.Context, chatbotID uuid.UUID) ([]domain.Conversation, error) {
	query := `
		SELECT id, chatbot_id, user_message, bot_response, sentiment, created_at
		FROM conversations
		WHERE chatbot_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, chatbotID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	defer rows.Close()

	var conversations []domain.Conversation
	for rows.Next() {
		var c domain.Conversation
		var sentiment string
		if err := rows.Scan(
			&c.ID,
			&c.ChatbotID,
			&c.UserMessage,
			&c.BotResponse,
			&sentiment,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		c.Sentiment = domain.Sentiment(sentiment)
		conversations = append(conversations, c)
	}
	return conversations, nil
}

func (r *ConversationRepository) Stats(ctx context.Context, chatbotID uuid.UUID) (*domain.ChatbotStats, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(AVG(LENGTH(user_message)), 0),
		       COALESCE(AVG(LENGTH(bot_response)), 0)
		FROM conversations
		WHERE chatbot_id = $1
	`
	var stats domain.ChatbotStats
	err := r.pool.QueryRow(ctx, query, chatbotID).Scan(
		&stats.TotalMessages,
		&stats.AvgUserMessageLength,
		&stats.AvgBotResponseLength,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	return &stats, nil
}

func (r *ConversationRepository) SentimentCounts(ctx context.Context, chatbotID uuid.UUID) (map[string]int, error) {
	query := `
		SELECT sentiment, COUNT(*)
		FROM conversations
		WHERE chatbot_id = $1 AND sentiment != '' AND sentiment != 'Unknown'
		GROUP BY sentiment
	`
	rows, err := r.pool.Query(ctx, query, chatbotID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sentiment counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var label string
		var count int
		if err := rows.Scan(&label, &count); err != nil {
			return nil, fmt.Errorf("failed to scan sentiment count: %w", err)
		}
		counts[label] = count
	}
	return counts, nil
}

func (r *ConversationRepository) DailyCounts(ctx context.Context, chatbotID uuid.UUID) (map[string]int, error) {
	query := `
		SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD'), COUNT(*)
		FROM conversations
		WHERE chatbot_id = $1
		GROUP BY 1
	`
	rows, err := r.pool.Query(ctx, query, chatbotID)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var day string
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("failed to scan daily count: %w", err)
		}
		counts[day] = count
	}
	return counts, nil
}
