package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"team-portal/backend/members-service/logging"
	"team-portal/backend/members-service/middleware"
	"team-portal/backend/members-service/services"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type AuthHandler struct {
	AuthService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{AuthService: authService}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	MemberID string `json:"memberId"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

// Login prijavljuje korisnika. Tačni kredencijali bez zapisa u teamMembers
// se odbijaju - članstvo je uslov za pristup.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, "Invalid credentials format", http.StatusBadRequest)
		return
	}

	member, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrMemberNotInTeam):
			http.Error(w, err.Error(), http.StatusUnauthorized)
		default:
			logging.Logger.Errorf("Event ID: LOGIN_FAILED, Description: Login failed for %s: %v", req.Email, err)
			http.Error(w, "Failed to sign in. Please check your credentials and try again.", http.StatusInternalServerError)
		}
		return
	}

	response := LoginResponse{
		Token:    token,
		Email:    req.Email,
		Role:     member.Role,
		MemberID: member.ID.Hex(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// ForgotPassword šalje email sa reset linkom ako nalog postoji.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, "A valid email address is required", http.StatusBadRequest)
		return
	}

	if err := h.AuthService.ForgotPassword(r.Context(), req.Email); err != nil {
		if errors.Is(err, services.ErrNoAccount) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		logging.Logger.Errorf("Event ID: RESET_EMAIL_FAILED, Description: Failed to send reset email to %s: %v", req.Email, err)
		http.Error(w, "Failed to send password reset email. Please try again.", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Password reset email sent. Please check your inbox (including spam folder)."))
}

// ResetPassword postavlja novu lozinku na osnovu tokena iz emaila.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, "Token and a password of at least 8 characters are required", http.StatusBadRequest)
		return
	}

	if err := h.AuthService.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to reset password", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Password reset successfully"))
}

// Logout opoziva tekući token i time briše sesiju.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromRequest(r)
	if token == "" {
		http.Error(w, "Authorization header missing", http.StatusBadRequest)
		return
	}

	h.AuthService.Logout(token)

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Signed out"))
}

// Register kreira nalog i člana tima. Dostupno samo adminu.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, "Email, name and a password of at least 8 characters are required", http.StatusBadRequest)
		return
	}

	member, err := h.AuthService.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(member)
}
