package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/intellichat/backend/internal/config"
	"google.golang.org/api/option"
)

// Client generates text through the Gemini API.
type Client struct {
	apiKey  string
	model   string
	timeout time.Duration
}

// NewClient creates a new Gemini client
func NewClient(cfg config.GeminiConfig, timeout time.Duration) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		timeout: timeout,
	}
}

func (c *Client) Name() string {
	return "gemini"
}

func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// Generate sends the prompt and returns the trimmed response text verbatim.
// The configured timeout bounds the round-trip so a hanging call cannot
// stall the request forever.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.IsConfigured() {
		return "", fmt.Errorf("gemini client is not configured (missing API key)")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(c.model)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var output strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			output.WriteString(string(text))
		}
	}

	return strings.TrimSpace(output.String()), nil
}
