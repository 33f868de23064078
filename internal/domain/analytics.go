package domain

// AnalyticsReport is the export document for a single chatbot's analytics.
// Field names match the downloadable JSON shape.
type AnalyticsReport struct {
	ChatbotName           string         `json:"chatbot_name"`
	TotalMessages         int            `json:"total_messages"`
	AvgUserMessageLength  float64        `json:"avg_user_message_length"`
	AvgBotResponseLength  float64        `json:"avg_bot_response_length"`
	SentimentDistribution map[string]int `json:"sentiment_distribution"`
	MessageFrequency      map[string]int `json:"message_frequency"`
}
