package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/intellichat/backend/internal/api"
	"github.com/intellichat/backend/internal/config"
	"github.com/intellichat/backend/internal/llm/gemini"
	"github.com/intellichat/backend/internal/repository/postgres"
	"github.com/intellichat/backend/internal/repository/redis"
	"github.com/intellichat/backend/internal/repository/sqlite"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	log.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("database", cfg.Database.Driver).
		Msg("Starting IntelliChat API server")

	// Initialize store
	repos, closeStore, err := buildRepositories(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize store")
	}
	defer closeStore()

	// Initialize Gemini client
	llmClient := gemini.NewClient(cfg.LLM.Gemini, cfg.LLM.Timeout)
	if !llmClient.IsConfigured() {
		log.Warn().Msg("Gemini API key is empty; generation endpoints will fail")
	}

	// Initialize Redis (optional, rate limiting only)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redis.NewClient(cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer redisClient.Close()
	}

	router := api.NewRouter(cfg, repos, llmClient, redisClient)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Msgf("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

// buildRepositories opens the configured store and returns its
// repositories plus a close function.
func buildRepositories(cfg *config.Config) (api.Repositories, func(), error) {
	ctx := context.Background()

	switch cfg.Database.Driver {
	case "postgres":
		db, err := postgres.NewDB(ctx, cfg.Database)
		if err != nil {
			return api.Repositories{}, nil, err
		}
		return api.Repositories{
			Users:         postgres.NewUserRepository(db),
			Chatbots:      postgres.NewChatbotRepository(db),
			Conversations: postgres.NewConversationRepository(db),
			Pinger:        db,
		}, db.Close, nil

	case "sqlite", "":
		db, err := sqlite.NewDB(ctx, cfg.Database.Path)
		if err != nil {
			return api.Repositories{}, nil, err
		}
		return api.Repositories{
			Users:         sqlite.NewUserRepository(db),
			Chatbots:      sqlite.NewChatbotRepository(db),
			Conversations: sqlite.NewConversationRepository(db),
			Pinger:        db,
		}, func() { db.Close() }, nil

	default:
		return api.Repositories{}, nil, fmt.Errorf("unknown database driver: %s", cfg.Database.Driver)
	}
}
