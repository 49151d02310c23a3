package wire

import (
	"teide-booking/internal/adaptor"
	"teide-booking/internal/usecase"
	"teide-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireService(
	r chi.Router,
	serviceHandler *adaptor.ServiceHandler,
	adminHandler *adaptor.AdminServiceHandler,
	auth usecase.AuthService,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/services?locale= - Service cards with effective prices
	r.Get("/api/services", serviceHandler.ListServices)

	// GET /api/services/{slug}?locale= - Detail page with metadata and JSON-LD
	r.Get("/api/services/{slug}", serviceHandler.GetServicePage)

	// ==================== ADMIN ROUTES ====================
	// Content overrides on top of the static catalog
	r.Route("/api/admin/services", func(r chi.Router) {
		r.Use(middleware.RequireAdmin(auth, log))

		r.Get("/", adminHandler.ListServices)        // GET /api/admin/services
		r.Get("/{slug}", adminHandler.GetService)    // GET /api/admin/services/{slug}
		r.Put("/{slug}", adminHandler.UpdateService) // PUT /api/admin/services/{slug}
	})
}
