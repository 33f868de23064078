package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/intellichat/backend/internal/domain"
)

// ConversationRepository implements domain.ConversationRepository
type ConversationRepository struct {
	db *DB
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(db *DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

func (r *ConversationRepository) Create(ctx context.Context, conversation *domain.Conversation) error {
	query := `
		INSERT INTO conversations (id, chatbot_id, user_message, bot_response, sentiment, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.conn.ExecContext(ctx, query,
		conversation.ID.String(),
		conversation.ChatbotID.String(),
		conversation.UserMessage,
		conversation.BotResponse,
		string(conversation.Sentiment),
		conversation.CreatedAt.UTC().Format(timeLayout),
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
		WHERE chatbot_id = ?
		ORDER BY created_at ASC
	`
	rows, err := r.db.conn.QueryContext(ctx, query, chatbotID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	defer rows.Close()

	var conversations []domain.Conversation
	for rows.Next() {
		var (
			c         domain.Conversation
			id        string
			botID     string
			sentiment string
			createdAt string
		)
		if err := rows.Scan(&id, &botID, &c.UserMessage, &c.BotResponse, &sentiment, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		if c.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("invalid conversation id: %w", err)
		}
		if c.ChatbotID, err = uuid.Parse(botID); err != nil {
			return nil, fmt.Errorf("invalid chatbot id: %w", err)
		}
		if c.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		c.Sentiment = domain.Sentiment(sentiment)
		conversations = append(conversations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return conversations, nil
}

func (r *ConversationRepository) Stats(ctx context.Context, chatbotID uuid.UUID) (*domain.ChatbotStats, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(AVG(LENGTH(user_message)), 0),
		       COALESCE(AVG(LENGTH(bot_response)), 0)
		FROM conversations
		WHERE chatbot_id = ?
	`
	var stats domain.ChatbotStats
	err := r.db.conn.QueryRowContext(ctx, query, chatbotID.String()).Scan(
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
		WHERE chatbot_id = ? AND sentiment != '' AND sentiment != 'Unknown'
		GROUP BY sentiment
	`
	rows, err := r.db.conn.QueryContext(ctx, query, chatbotID.String())
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
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return counts, nil
}

func (r *ConversationRepository) DailyCounts(ctx context.Context, chatbotID uuid.UUID) (map[string]int, error) {
	// created_at is stored with a fixed "YYYY-MM-DD ..." prefix, so the
	// date is a plain substring.
	query := `
		SELECT SUBSTR(created_at, 1, 10), COUNT(*)
		FROM conversations
		WHERE chatbot_id = ?
		GROUP BY SUBSTR(created_at, 1, 10)
	`
	rows, err := r.db.conn.QueryContext(ctx, query, chatbotID.String())
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
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return counts, nil
}
