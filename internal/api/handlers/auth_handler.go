package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/arvelin/staffdesk-be/internal/auth"
	"github.com/arvelin/staffdesk-be/internal/services"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles sign-up and sign-in requests.
type AuthHandler struct {
	users  services.UserServiceProvider
	events services.EventServiceProvider
	tokens *auth.TokenManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users services.UserServiceProvider, events services.EventServiceProvider, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{users: users, events: events, tokens: tokens}
}

// SignupPayload defines the structure for registration requests.
type SignupPayload struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninPayload defines the structure for login requests.
type SigninPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles new account registration and returns a bearer token.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload SignupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.FullName == "" || payload.Email == "" || payload.Password == "" {
		writeError(w, http.StatusBadRequest, "fullName, email, password are required")
		return
	}

	user, err := h.users.CreateUser(payload.FullName, payload.Email, payload.Password)
	if err != nil {
		if err == services.ErrEmailTaken {
			writeError(w, http.StatusConflict, "Email already in use")
			return
		}
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Email)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to generate token")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.recordEvent("auth.signup", "info", fmt.Sprintf("Account created for %s", user.Email), user.ID)

	writeJSON(w, http.StatusCreated, map[string]string{"token": token})
}

// Signin handles authentication and returns a fresh bearer token.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var payload SigninPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.Email == "" || payload.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.users.AuthenticateUser(payload.Email, payload.Password)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Error().Err(err).Str("email", payload.Email).Msg("Authentication lookup failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Email)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to generate token")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.recordEvent("auth.signin", "info", fmt.Sprintf("Signed in as %s", user.Email), user.ID)

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *AuthHandler) recordEvent(eventType, level, message string, userID int64) {
	if _, err := h.events.CreateEvent(eventType, level, message, &userID); err != nil {
		log.Error().Err(err).Str("type", eventType).Msg("Failed to record event")
	}
}
