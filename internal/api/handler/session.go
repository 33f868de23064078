package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/intellichat/backend/internal/api/middleware"
	"github.com/intellichat/backend/internal/api/response"
	"github.com/intellichat/backend/internal/domain"
	"github.com/intellichat/backend/internal/service"
)

// SessionHandler exposes the per-user UI session state
type SessionHandler struct {
	sessions       *service.SessionState
	chatbotService *service.ChatbotService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *service.SessionState, chatbotService *service.ChatbotService) *SessionHandler {
	return &SessionHandler{sessions: sessions, chatbotService: chatbotService}
}

// Get returns the current session state
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	state := map[string]any{"active_chatbot_id": nil}
	if chatbotID, ok := h.sessions.ActiveChatbot(userID); ok {
		state["active_chatbot_id"] = chatbotID
	}
	response.OK(w, state)
}

// SetActiveChatbot records the chatbot the user is chatting with. The
// chatbot must exist and belong to the user.
func (h *SessionHandler) SetActiveChatbot(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input struct {
		ChatbotID uuid.UUID `json:"chatbot_id" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if input.ChatbotID == uuid.Nil {
		response.BadRequest(w, "chatbot_id is required")
		return
	}

	if _, err := h.chatbotService.Get(r.Context(), userID, input.ChatbotID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "chatbot not found")
			return
		}
		response.InternalError(w, "failed to get chatbot")
		return
	}

	h.sessions.SetActiveChatbot(userID, input.ChatbotID)
	response.OK(w, map[string]any{"active_chatbot_id": input.ChatbotID})
}
