package adaptor

import (
	"errors"
	"net/http"

	"teide-booking/internal/dto/request"
	"teide-booking/internal/dto/response"
	"teide-booking/internal/usecase"
	"teide-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	auth    utils.AuthConfig
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, auth utils.AuthConfig, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		auth:    auth,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Login handles POST /api/admin/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.SetSessionCookie(w, result.Token, h.auth.SessionTTL, h.auth.CookieSecure)
	utils.ResponseSuccess(w, "Login successful", response.LoginResponse{
		Success:   true,
		ExpiresAt: result.ExpiresAt,
	})
}

// Logout handles POST /api/admin/logout. The cookie is cleared even when
// revoking the stored session fails.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := utils.SessionTokenFromRequest(r)
	if err := h.service.Logout(r.Context(), token); err != nil {
		h.log.Warn("Logout could not revoke session", zap.Error(err))
	}

	utils.ClearSessionCookie(w, h.auth.CookieSecure)
	utils.ResponseSuccess(w, "Logout successful", response.LoginResponse{Success: true})
}

// Session handles GET /api/admin/session
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	principal, err := h.service.Authenticate(r.Context(), utils.SessionTokenFromRequest(r))
	if err != nil {
		if !errors.Is(err, usecase.ErrUnauthorized) {
			h.log.Error("Failed to check session", zap.Error(err))
		}
		utils.ResponseSuccess(w, "success", response.SessionResponse{Authenticated: false})
		return
	}

	utils.ResponseSuccess(w, "success", response.SessionResponse{
		Authenticated: true,
		Username:      principal.Username,
	})
}
