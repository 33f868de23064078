package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/intellichat/backend/internal/api/handler"
	custommw "github.com/intellichat/backend/internal/api/middleware"
	"github.com/intellichat/backend/internal/config"
	"github.com/intellichat/backend/internal/domain"
	"github.com/intellichat/backend/internal/llm"
	"github.com/intellichat/backend/internal/repository/redis"
	"github.com/intellichat/backend/internal/security"
	"github.com/intellichat/backend/internal/service"
)

// Repositories bundles the store implementations the router wires into
// services. Both the SQLite and the Postgres drivers produce one.
type Repositories struct {
	Users         domain.UserRepository
	Chatbots      domain.ChatbotRepository
	Conversations domain.ConversationRepository
	Pinger        handler.Pinger
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, repos Repositories, llmClient llm.Client, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommw.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	jwtManager := security.NewJWTManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)

	// Services
	sessions := service.NewSessionState(cfg.Auth.SessionTTL)
	authService := service.NewAuthService(repos.Users, jwtManager, cfg.Auth.BcryptCost)
	chatbotService := service.NewChatbotService(repos.Chatbots, sessions)
	chatService := service.NewChatService(chatbotService, repos.Conversations, llmClient)
	toolsService := service.NewToolsService(llmClient)
	analyticsService := service.NewAnalyticsService(chatbotService, repos.Conversations)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, sessions)
	sessionHandler := handler.NewSessionHandler(sessions, chatbotService)
	chatbotHandler := handler.NewChatbotHandler(chatbotService)
	chatHandler := handler.NewChatHandler(chatService)
	toolsHandler := handler.NewToolsHandler(toolsService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	authMiddleware := custommw.NewAuthMiddleware(jwtManager)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(repos.Pinger))

		// Auth routes (public)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			if redisClient != nil {
				limiter := redis.NewRateLimiter(
					redisClient,
					cfg.Redis.RateLimit.RequestsPerMinute,
					cfg.Redis.RateLimit.Burst,
				)
				r.Use(custommw.NewRateLimitMiddleware(limiter).Limit)
			}

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/auth/me", authHandler.Me)

			r.Get("/session", sessionHandler.Get)
			r.Put("/session/active-chatbot", sessionHandler.SetActiveChatbot)

			r.Get("/industries", handler.Industries)

			r.Route("/tools", func(r chi.Router) {
				r.Post("/sentiment", toolsHandler.Sentiment)
				r.Post("/image-prompt", toolsHandler.ImagePrompt)
				r.Post("/summarize", toolsHandler.Summarize)
				r.Post("/persona", toolsHandler.Persona)
			})

			r.Route("/chatbots", func(r chi.Router) {
				r.Get("/", chatbotHandler.List)
				r.Post("/", chatbotHandler.Create)

				r.Route("/{chatbotID}", func(r chi.Router) {
					r.Use(custommw.ChatbotContext)

					r.Get("/", chatbotHandler.Get)
					r.Delete("/", chatbotHandler.Delete)
					r.Get("/export", chatbotHandler.Export)

					r.Get("/conversations", chatHandler.History)
					r.Post("/chat", chatHandler.SendMessage)
					r.Get("/summary", chatHandler.Summary)

					r.Get("/analytics", analyticsHandler.Report)
					r.Get("/analytics/export", analyticsHandler.Export)
				})
			})
		})
	})

	return r
}
