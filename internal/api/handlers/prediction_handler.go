package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/Madiha-Maha/AuroraMind-AI/internal/auth"
	"github.com/Madiha-Maha/AuroraMind-AI/internal/services"
)

// PredictionHandler handles HTTP requests for predictions and dashboard stats.
type PredictionHandler struct {
	service services.PredictionServiceProvider
}

// NewPredictionHandler creates a new PredictionHandler.
func NewPredictionHandler(service services.PredictionServiceProvider) *PredictionHandler {
	return &PredictionHandler{service: service}
}

// PredictPayload defines the structure for predict requests. The input is
// opaque to the server and stored as serialized text.
type PredictPayload struct {
	InputData json.RawMessage `json:"inputData"`
}

// List returns the authenticated user's most recent predictions.
func (h *PredictionHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	predictions, err := h.service.List(claims.UserID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", claims.UserID).Msg("Failed to list predictions")
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, predictions)
}

// Predict runs the simulated model on the submitted input and returns the
// stored result.
func (h *PredictionHandler) Predict(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var payload PredictPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	prediction, err := h.service.Predict(claims.UserID, string(payload.InputData))
	if err != nil {
		log.Error().Err(err).Int64("user_id", claims.UserID).Msg("Failed to store prediction")
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":         prediction.ID,
		"prediction": prediction.Label,
		"accuracy":   prediction.Accuracy,
	})
}

// Dashboard returns aggregate stats for the authenticated user.
func (h *PredictionHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	stats, err := h.service.DashboardStats(claims.UserID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", claims.UserID).Msg("Failed to load dashboard stats")
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
