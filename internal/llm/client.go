package llm

import "context"

// Client is the boundary to the hosted text-generation service: one prompt
// string in, one trimmed text body out. Implementations do not retry and do
// not interpret the response.
type Client interface {
	// Name returns the provider identifier
	Name() string

	// IsConfigured checks if the client has valid credentials
	IsConfigured() bool

	// Generate produces text for a prompt
	Generate(ctx context.Context, prompt string) (string, error)
}
