package wire

import (
	"teide-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, limit limiter) {
	// ==================== PUBLIC ROUTES ====================
	// Login is rate limited per client IP
	r.With(limit("admin_login")).Post("/api/admin/login", authHandler.Login)

	// Logout and session read the cookie themselves; both answer even
	// without a valid session.
	r.Post("/api/admin/logout", authHandler.Logout)
	r.Get("/api/admin/session", authHandler.Session)
}
