package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/intellichat/backend/internal/api/middleware"
	"github.com/intellichat/backend/internal/api/response"
	"github.com/intellichat/backend/internal/domain"
	"github.com/intellichat/backend/internal/service"
)

// ChatbotHandler handles chatbot CRUD endpoints
type ChatbotHandler struct {
	chatbotService *service.ChatbotService
}

// NewChatbotHandler creates a new chatbot handler
func NewChatbotHandler(chatbotService *service.ChatbotService) *ChatbotHandler {
	return &ChatbotHandler{chatbotService: chatbotService}
}

// Create handles chatbot creation. Validation rejects the request before
// anything is written.
func (h *ChatbotHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input domain.ChatbotCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	chatbot, err := h.chatbotService.Create(r.Context(), userID, input)
	if err != nil {
		response.InternalError(w, "failed to create chatbot")
		return
	}

	response.Created(w, chatbot)
}

// List returns the user's chatbots
func (h *ChatbotHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	chatbots, err := h.chatbotService.List(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "failed to list chatbots")
		return
	}

	if chatbots == nil {
		chatbots = []domain.Chatbot{}
	}
	response.OK(w, chatbots)
}

// Get returns one chatbot
func (h *ChatbotHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	chatbotID, _ := middleware.GetChatbotID(r.Context())

	chatbot, err := h.chatbotService.Get(r.Context(), userID, chatbotID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "chatbot not found")
			return
		}
		response.InternalError(w, "failed to get chatbot")
		return
	}

	response.OK(w, chatbot)
}

// Delete removes a chatbot and all of its conversations
func (h *ChatbotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	chatbotID, _ := middleware.GetChatbotID(r.Context())

	if err := h.chatbotService.Delete(r.Context(), userID, chatbotID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "chatbot not found")
			return
		}
		response.InternalError(w, "failed to delete chatbot")
		return
	}

	response.NoContent(w)
}

// Export downloads the chatbot's configuration as a JSON document
func (h *ChatbotHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	chatbotID, _ := middleware.GetChatbotID(r.Context())

	chatbot, err := h.chatbotService.Get(r.Context(), userID, chatbotID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "chatbot not found")
			return
		}
		response.InternalError(w, "failed to get chatbot")
		return
	}

	body, err := json.MarshalIndent(chatbot.Export(), "", "  ")
	if err != nil {
		response.InternalError(w, "failed to encode export")
		return
	}

	filename := exportFilename(chatbot.Name) + "_config.json"
	response.Attachment(w, filename, "application/json", body)
}

// Industries returns the suggestion list for the create form
func Industries(w http.ResponseWriter, r *http.Request) {
	response.OK(w, domain.Industries)
}

// exportFilename strips characters that are unsafe in a download filename
func exportFilename(name string) string {
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, name)
	if name == "" {
		name = "chatbot"
	}
	return name
}
