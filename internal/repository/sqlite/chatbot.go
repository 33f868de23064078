package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/intellichat/backend/internal/domain"
)

// ChatbotRepository implements domain.ChatbotRepository
type ChatbotRepository struct {
	db *DB
}

// NewChatbotRepository creates a new chatbot repository
func NewChatbotRepository(db *DB) *ChatbotRepository {
	return &ChatbotRepository{db: db}
}

func (r *ChatbotRepository) Create(ctx context.Context, chatbot *domain.Chatbot) error {
	query := `
		INSERT INTO chatbots (id, owner_id, name, description, industry, personality, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.conn.ExecContext(ctx, query,
		chatbot.ID.String(),
		chatbot.OwnerID.String(),
		chatbot.Name,
		chatbot.Description,
		chatbot.Industry,
		chatbot.Personality,
		chatbot.CreatedAt.UTC().Format(timeLayout),
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
		WHERE id = ?
	`
	row := r.db.conn.QueryRowContext(ctx, query, id.String())

	c, err := scanChatbot(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *ChatbotRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Chatbot, error) {
	query := `
		SELECT id, owner_id, name, description, industry, personality, created_at
		FROM chatbots
		WHERE owner_id = ?
		ORDER BY created_at ASC
	`
	rows, err := r.db.conn.QueryContext(ctx, query, ownerID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list chatbots: %w", err)
	}
	defer rows.Close()

	var chatbots []domain.Chatbot
	for rows.Next() {
		c, err := scanChatbot(rows.Scan)
		if err != nil {
			return nil, err
		}
		chatbots = append(chatbots, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return chatbots, nil
}

// Delete removes the chatbot and its conversations in one transaction.
func (r *ChatbotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM conversations WHERE chatbot_id = ?`, id.String()); err != nil {
		return fmt.Errorf("failed to delete conversations: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM chatbots WHERE id = ?`, id.String()); err != nil {
		return fmt.Errorf("failed to delete chatbot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}

func scanChatbot(scan func(dest ...any) error) (*domain.Chatbot, error) {
	var (
		c         domain.Chatbot
		id        string
		ownerID   string
		createdAt string
	)
	err := scan(&id, &ownerID, &c.Name, &c.Description, &c.Industry, &c.Personality, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan chatbot: %w", err)
	}

	if c.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid chatbot id: %w", err)
	}
	if c.OwnerID, err = uuid.Parse(ownerID); err != nil {
		return nil, fmt.Errorf("invalid owner id: %w", err)
	}
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &c, nil
}
