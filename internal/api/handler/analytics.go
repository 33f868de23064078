package handler

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/intellichat/backend/internal/api/middleware"
	"github.com/intellichat/backend/internal/api/response"
	"github.com/intellichat/backend/internal/domain"
	"github.com/intellichat/backend/internal/service"
)

// AnalyticsHandler handles analytics endpoints
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Report returns the chatbot's analytics document
func (h *AnalyticsHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, ok := h.report(w, r)
	if !ok {
		return
	}
	response.OK(w, report)
}

// Export returns the analytics document as a downloadable file plus a
// data URI for embedding.
func (h *AnalyticsHandler) Export(w http.ResponseWriter, r *http.Request) {
	report, ok := h.report(w, r)
	if !ok {
		return
	}

	body, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		response.InternalError(w, "failed to encode export")
		return
	}

	if r.URL.Query().Get("download") == "true" {
		response.Attachment(w, "chatbot_analytics.json", "application/json", body)
		return
	}

	dataURI := "data:application/json;base64," + base64.StdEncoding.EncodeToString(body)
	response.OK(w, map[string]any{
		"report":   report,
		"data_uri": dataURI,
		"filename": "chatbot_analytics.json",
	})
}

func (h *AnalyticsHandler) report(w http.ResponseWriter, r *http.Request) (*domain.AnalyticsReport, bool) {
	userID, _ := middleware.GetUserID(r.Context())
	chatbotID, _ := middleware.GetChatbotID(r.Context())

	report, err := h.analyticsService.Report(r.Context(), userID, chatbotID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "chatbot not found")
			return nil, false
		}
		response.InternalError(w, "failed to compute analytics")
		return nil, false
	}
	return report, true
}
