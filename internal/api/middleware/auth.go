package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/intellichat/backend/internal/api/response"
	"github.com/intellichat/backend/internal/security"
)

type contextKey string

const (
	UserIDKey    contextKey = "userID"
	UsernameKey  contextKey = "username"
	ChatbotIDKey contextKey = "chatbotID"
)

// AuthMiddleware handles JWT authentication
type AuthMiddleware struct {
	jwtManager *security.JWTManager
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *security.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager}
}

// Authenticate validates the JWT token
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(w, "invalid authorization header format")
			return
		}

		claims, err := m.jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UsernameKey, claims.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID gets the user ID from context
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetUsername gets the username from context
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// GetChatbotID gets the chatbot ID from context
func GetChatbotID(ctx context.Context) (uuid.UUID, bool) {
	chatbotID, ok := ctx.Value(ChatbotIDKey).(uuid.UUID)
	return chatbotID, ok
}

// ChatbotContext extracts the chatbot ID from the URL and adds it to context
func ChatbotContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chatbotIDStr := chi.URLParam(r, "chatbotID")
		if chatbotIDStr == "" {
			response.BadRequest(w, "missing chatbot ID")
			return
		}

		chatbotID, err := uuid.Parse(chatbotIDStr)
		if err != nil {
			response.BadRequest(w, "invalid chatbot ID")
			return
		}

		ctx := context.WithValue(r.Context(), ChatbotIDKey, chatbotID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
