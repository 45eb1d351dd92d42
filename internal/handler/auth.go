package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/libris/libris/internal/service"
)

// AuthHandler handles sign-up and login requests.
type AuthHandler struct {
	svc    *service.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:    svc,
		logger: logger,
	}
}

// signUpRequest is the JSON body for POST /sign-up.
type signUpRequest struct {
	UserName string  `json:"user_name"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password string  `json:"password"`
}

// signUpResponse is returned on successful registration.
type signUpResponse struct {
	Message  string `json:"message"`
	UserName string `json:"user_name"`
}

// tokenResponse is returned on successful login.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SignUp handles POST /sign-up.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	user, err := h.svc.Register(r.Context(), service.RegisterInput{
		UserName: req.UserName,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleAuthError(w, err)
		return
	}

	h.logger.Info("user_registered", "user_name", user.UserName)

	writeJSON(w, http.StatusCreated, signUpResponse{
		Message:  "Successfully added user",
		UserName: user.UserName,
	})
}

// Login handles POST /login.
// Credentials arrive as form fields (username, password), matching the
// OAuth2 password flow shape. A valid pair yields a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_FORM", "Invalid form body")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		writeError(w, http.StatusBadRequest, "MISSING_CREDENTIALS", "username and password are required")
		return
	}

	token, err := h.svc.Authenticate(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.logger.Warn("login failed", "user_name", username)
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Incorrect username or password")
			return
		}
		h.handleAuthError(w, err)
		return
	}

	h.logger.Info("login_succeeded", "user_name", username)

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// handleAuthError maps auth service errors to HTTP responses.
func (h *AuthHandler) handleAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEmailExists):
		writeError(w, http.StatusConflict, "EMAIL_TAKEN", "Email already exists in users collection")
	case errors.Is(err, service.ErrUsernameExists):
		writeError(w, http.StatusConflict, "USERNAME_TAKEN", "User name already exists")
	case errors.Is(err, service.ErrUsernameRequired):
		writeError(w, http.StatusBadRequest, "MISSING_USERNAME", "user_name is required")
	case errors.Is(err, service.ErrPasswordRequired):
		writeError(w, http.StatusBadRequest, "MISSING_PASSWORD", "password is required")
	default:
		h.logger.Error("auth operation failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
