package adaptor

import (
	"net/http"

	"teide-booking/internal/dto/request"
	"teide-booking/internal/usecase"
	"teide-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminServiceHandler edits service overrides.
type AdminServiceHandler struct {
	service usecase.ContentService
	log     *zap.Logger
}

func NewAdminServiceHandler(service usecase.ContentService, log *zap.Logger) *AdminServiceHandler {
	return &AdminServiceHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin_service")),
	}
}

// ListServices handles GET /api/admin/services (admin only)
func (h *AdminServiceHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.ListServices(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list admin services")
		return
	}

	utils.ResponseSuccess(w, "success", services)
}

// GetService handles GET /api/admin/services/{slug} (admin only)
func (h *AdminServiceHandler) GetService(w http.ResponseWriter, r *http.Request) {
	service, err := h.service.GetService(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handleServiceError(w, h.log, err, "get admin service")
		return
	}

	utils.ResponseSuccess(w, "success", service)
}

// UpdateService handles PUT /api/admin/services/{slug} (admin only)
func (h *AdminServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateServiceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	slug := chi.URLParam(r, "slug")
	resp, err := h.service.UpdateService(r.Context(), slug, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update service")
		return
	}

	admin, _ := utils.GetAdminFromContext(r.Context())
	h.log.Info("Service override updated", zap.String("admin", admin), zap.String("slug", slug))

	utils.ResponseSuccess(w, "Service updated", resp)
}
