package middleware

import (
	"errors"
	"net/http"

	"teide-booking/internal/usecase"
	"teide-booking/pkg/utils"

	"go.uber.org/zap"
)

// RequireAdmin validates the admin session cookie against every session
// strategy and stores the admin username and token in the request context.
func RequireAdmin(auth usecase.AuthService, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := utils.SessionTokenFromRequest(r)
			if token == "" {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			principal, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				if !errors.Is(err, usecase.ErrUnauthorized) {
					logger.Error("Failed to validate session", zap.Error(err))
				} else {
					logger.Warn("Invalid or expired session",
						zap.String("token", utils.MaskToken(token)),
						zap.String("path", r.URL.Path),
					)
				}
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetAdminContext(r.Context(), principal.Username)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
