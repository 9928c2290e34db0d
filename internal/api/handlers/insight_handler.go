package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/Madiha-Maha/AuroraMind-AI/internal/auth"
	"github.com/Madiha-Maha/AuroraMind-AI/internal/services"
)

// InsightHandler handles HTTP requests for insights.
type InsightHandler struct {
	service services.InsightServiceProvider
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(service services.InsightServiceProvider) *InsightHandler {
	return &InsightHandler{service: service}
}

// InsightPayload defines the structure for insight creation requests.
type InsightPayload struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
	Category    string  `json:"category"`
}

// List returns the authenticated user's most recent insights.
func (h *InsightHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	insights, err := h.service.List(claims.UserID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", claims.UserID).Msg("Failed to list insights")
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, insights)
}

// Create stores a new insight owned by the authenticated user.
func (h *InsightHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var payload InsightPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.Title == "" {
		respondError(w, http.StatusBadRequest, "Title is required")
		return
	}

	id, err := h.service.Create(claims.UserID, payload.Title, payload.Description, payload.Confidence, payload.Category)
	if err != nil {
		log.Error().Err(err).Int64("user_id", claims.UserID).Msg("Failed to create insight")
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":      id,
		"message": "Insight created",
	})
}
