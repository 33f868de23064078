package llm

import (
	"fmt"
	"strings"

	"github.com/intellichat/backend/internal/domain"
)

// BuildChatPrompt conditions a reply on the chatbot's persona.
func BuildChatPrompt(chatbot *domain.Chatbot, userMessage string) string {
	return fmt.Sprintf(
		"You are a chatbot with the following characteristics:\n"+
			"Description: %s\n"+
			"Industry: %s\n"+
			"Personality: %s\n"+
			"Please respond to the following message in character: %s",
		chatbot.Description, chatbot.Industry, chatbot.Personality, userMessage,
	)
}

// BuildSentimentPrompt asks for a single sentiment label.
func BuildSentimentPrompt(text string) string {
	return fmt.Sprintf(
		"Analyze the sentiment of the following text and respond with either 'Positive', 'Negative', or 'Neutral': %s",
		text,
	)
}

// BuildImagePrompt asks for a text-to-image prompt.
func BuildImagePrompt(description string) string {
	return fmt.Sprintf(
		"Generate a detailed image prompt for a text-to-image AI based on this description: %s",
		description,
	)
}

// BuildSummaryPrompt flattens the turns into a transcript and asks for a
// 3-5 sentence summary.
func BuildSummaryPrompt(turns []domain.Conversation) string {
	lines := make([]string, 0, len(turns))
	for _, turn := range turns {
		lines = append(lines, fmt.Sprintf("User: %s\nBot: %s", turn.UserMessage, turn.BotResponse))
	}
	return fmt.Sprintf(
		"Summarize the following conversation in 3-5 sentences:\n\n%s",
		strings.Join(lines, "\n"),
	)
}

// BuildPersonaPrompt asks for a suggested chatbot identity.
func BuildPersonaPrompt(industry, personalityTraits string) string {
	return fmt.Sprintf(
		"Generate a chatbot persona for the %s industry with the following personality traits: %s. "+
			"Include a name, brief description, and 3 example dialogue responses.",
		industry, personalityTraits,
	)
}
