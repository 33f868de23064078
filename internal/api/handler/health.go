package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/intellichat/backend/internal/api/response"
)

// Pinger verifies storage connectivity
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck reports process liveness
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// ReadyCheck reports whether the store is reachable
func ReadyCheck(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			response.Error(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		response.OK(w, map[string]any{"status": "ready"})
	}
}
