package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/Madiha-Maha/AuroraMind-AI/internal/auth"
	"github.com/Madiha-Maha/AuroraMind-AI/internal/services"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	users  services.UserServiceProvider
	tokens *auth.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users services.UserServiceProvider, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles new user registration.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.Email == "" || payload.Password == "" || payload.Name == "" {
		respondError(w, http.StatusBadRequest, "Email, password and name are required")
		return
	}

	userID, err := h.users.Register(payload.Email, payload.Password, payload.Name)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			respondError(w, http.StatusBadRequest, "User already exists")
			return
		}
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "User registered successfully",
		"userId":  userID,
	})
}

// Login handles user authentication and token generation. The "User not
// found" and "Invalid password" responses stay distinguishable to match the
// published API contract, user enumeration notwithstanding.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.Email == "" || payload.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.users.Authenticate(payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			respondError(w, http.StatusBadRequest, "User not found")
		case errors.Is(err, services.ErrInvalidPassword):
			log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
			respondError(w, http.StatusBadRequest, "Invalid password")
		default:
			log.Error().Err(err).Str("email", payload.Email).Msg("Authentication lookup failed")
			respondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to generate token")
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user": map[string]interface{}{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}
