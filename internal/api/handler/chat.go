package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/intellichat/backend/internal/api/middleware"
	"github.com/intellichat/backend/internal/api/response"
	"github.com/intellichat/backend/internal/domain"
	"github.com/intellichat/backend/internal/service"
)

// ChatHandler handles conversation endpoints
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// SendMessage runs one conversation turn
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	chatbotID, _ := middleware.GetChatbotID(r.Context())

	var input struct {
		Message string `json:"message" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	conversation, err := h.chatService.SendMessage(r.Context(), userID, chatbotID, input.Message)
	if err != nil {
		writeChatError(w, err)
		return
	}

	response.Created(w, conversation)
}

// History returns the chatbot's conversation turns, oldest first
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	chatbotID, _ := middleware.GetChatbotID(r.Context())

	turns, err := h.chatService.History(r.Context(), userID, chatbotID)
	if err != nil {
		writeChatError(w, err)
		return
	}

	if turns == nil {
		turns = []domain.Conversation{}
	}
	response.OK(w, turns)
}

// Summary returns a 3-5 sentence summary of the chat history
func (h *ChatHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	chatbotID, _ := middleware.GetChatbotID(r.Context())

	summary, err := h.chatService.Summarize(r.Context(), userID, chatbotID)
	if err != nil {
		if errors.Is(err, domain.ErrNoConversations) {
			response.BadRequest(w, err.Error())
			return
		}
		writeChatError(w, err)
		return
	}

	response.OK(w, map[string]string{"summary": summary})
}

// writeChatError maps service errors onto HTTP statuses. Generation
// failures surface as 502 for this request only; there is no retry and no
// fallback content.
func writeChatError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.NotFound(w, "chatbot not found")
	case errors.Is(err, domain.ErrGenerationFailed):
		response.BadGateway(w, domain.ErrGenerationFailed.Error())
	default:
		response.InternalError(w, "request failed")
	}
}
