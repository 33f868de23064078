package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/intellichat/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ChatbotRepository implements domain.ChatbotRepository
type ChatbotRepository struct {
	pool *pgxpool.Pool
}

// NewChatbotRepository creates a new chatbot repository
func NewChatbotRepository(db *DB) *ChatbotRepository {
	return &ChatbotRepository{pool: db.Pool}
}

func (r *ChatbotRepository) Create(ctx context.Context, chatbot *domain.Chatbot) error {
	query := `
		INSERT INTO chatbots (id, owner_id, name, description, industry, personality, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		chatbot.ID,
		chatbot.OwnerID,
		chatbot.Name,
		chatbot.Description,
		chatbot.Industry,
		chatbot.Personality,
		chatbot.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create chatbot: %w", err)
	}
	return nil
}

func (r *ChatbotRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Chatbot, error) {
	query := `
		SELECT id, owner_id, name, description, industry, personality, created_at
		FROM chatbots
		WHERE id = $1
	`
	var c domain.Chatbot
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.OwnerID,
		&c.Name,
		&c.Description,
		&c.Industry,
		&c.Personality,
		&c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chatbot: %w", err)
	}
	return &c, nil
}

func (r *ChatbotRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Chatbot, error) {
	query := `
		SELECT id, owner_id, name, description, industry, personality, created_at
		FROM chatbots
		WHERE owner_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chatbots: %w", err)
	}
	defer rows.Close()

	var chatbots []domain.Chatbot
	for rows.Next() {
		var c domain.Chatbot
		if err := rows.Scan(
			&c.ID,
			&c.OwnerID,
			&c.Name,
			&c.Description,
			&c.Industry,
			&c.Personality,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan chatbot: %w", err)
		}
		chatbots = append(chatbots, c)
	}
	return chatbots, nil
}

// Delete removes the chatbot and its conversations in one transaction.
func (r *ChatbotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM conversations WHERE chatbot_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete conversations: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM chatbots WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete chatbot: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}
