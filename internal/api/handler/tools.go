package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/intellichat/backend/internal/api/response"
	"github.com/intellichat/backend/internal/domain"
	"github.com/intellichat/backend/internal/service"
)

// ToolsHandler handles the ad-hoc AI utility endpoints
type ToolsHandler struct {
	toolsService *service.ToolsService
}

// NewToolsHandler creates a new tools handler
func NewToolsHandler(toolsService *service.ToolsService) *ToolsHandler {
	return &ToolsHandler{toolsService: toolsService}
}

type textInput struct {
	Text string `json:"text" validate:"required"`
}

func decodeText(w http.ResponseWriter, r *http.Request) (string, bool) {
	var input textInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return "", false
	}
	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return "", false
	}
	return input.Text, true
}

func writeToolError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrGenerationFailed) {
		response.BadGateway(w, domain.ErrGenerationFailed.Error())
		return
	}
	response.InternalError(w, "request failed")
}

// Sentiment labels free text
func (h *ToolsHandler) Sentiment(w http.ResponseWriter, r *http.Request) {
	text, ok := decodeText(w, r)
	if !ok {
		return
	}

	sentiment, err := h.toolsService.AnalyzeSentiment(r.Context(), text)
	if err != nil {
		writeToolError(w, err)
		return
	}

	response.OK(w, map[string]string{"sentiment": string(sentiment)})
}

// ImagePrompt generates a text-to-image prompt
func (h *ToolsHandler) ImagePrompt(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Description string `json:"description" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	prompt, err := h.toolsService.GenerateImagePrompt(r.Context(), input.Description)
	if err != nil {
		writeToolError(w, err)
		return
	}

	response.OK(w, map[string]string{"image_prompt": prompt})
}

// Summarize summarizes free text
func (h *ToolsHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	text, ok := decodeText(w, r)
	if !ok {
		return
	}

	summary, err := h.toolsService.SummarizeText(r.Context(), text)
	if err != nil {
		writeToolError(w, err)
		return
	}

	response.OK(w, map[string]string{"summary": summary})
}

// Persona suggests a chatbot identity for the create flow
func (h *ToolsHandler) Persona(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Industry          string `json:"industry" validate:"required"`
		PersonalityTraits string `json:"personality_traits" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	persona, err := h.toolsService.GeneratePersona(r.Context(), input.Industry, input.PersonalityTraits)
	if err != nil {
		writeToolError(w, err)
		return
	}

	response.OK(w, map[string]string{"persona": persona})
}
