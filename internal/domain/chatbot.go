package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Industries is the suggestion list served to the create-chatbot form.
var Industries = []string{
	"Technology",
	"Healthcare",
	"Finance",
	"Education",
	"Entertainment",
	"Other",
}

// Chatbot represents a named persona configuration used to condition
// generated replies. Attributes are immutable after creation.
type Chatbot struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Industry    string    `json:"industry"`
	Personality string    `json:"personality"`
	CreatedAt   time.Time `json:"created_at"`
}

// ChatbotCreate represents the create-chatbot form
type ChatbotCreate struct {
	Name        string `json:"name" validate:"required,max=128"`
	Description string `json:"description" validate:"required"`
	Industry    string `json:"industry" validate:"required,max=64"`
	Personality string `json:"personality" validate:"required"`
}

// ChatbotExport is the downloadable configuration document
type ChatbotExport struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
	Personality string `json:"personality"`
	CreatedAt   string `json:"created_at"`
}

// Export returns the chatbot's configuration in its download shape.
func (c *Chatbot) Export() ChatbotExport {
	return ChatbotExport{
		Name:        c.Name,
		Description: c.Description,
		Industry:    c.Industry,
		Personality: c.Personality,
		CreatedAt:   c.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	}
}

// ChatbotRepository defines the interface for chatbot storage
type ChatbotRepository interface {
	Create(ctx context.Context, chatbot *Chatbot) error
	Get(ctx context.Context, id uuid.UUID) (*Chatbot, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Chatbot, error)
	// Delete removes the chatbot and every conversation referencing it in a
	// single transaction, so a crash cannot leave orphan conversation rows.
	Delete(ctx context.Context, id uuid.UUID) error
}
