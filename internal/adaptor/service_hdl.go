package adaptor

import (
	"net/http"

	"teide-booking/internal/i18n"
	"teide-booking/internal/usecase"
	"teide-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServiceHandler serves the public catalog pages.
type ServiceHandler struct {
	service usecase.PageService
	log     *zap.Logger
}

func NewServiceHandler(service usecase.PageService, log *zap.Logger) *ServiceHandler {
	return &ServiceHandler{
		service: service,
		log:     log.With(zap.String("handler", "service")),
	}
}

func requestLocale(r *http.Request) string {
	return i18n.Negotiate(r.URL.Query().Get("locale"), r.Header.Get("Accept-Language"))
}

// ListServices handles GET /api/services?category= (public)
func (h *ServiceHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.ListServices(r.Context(), requestLocale(r), r.URL.Query().Get("category"))
	if err != nil {
		handleServiceError(w, h.log, err, "list services")
		return
	}

	utils.ResponseSuccess(w, "success", services)
}

// GetServicePage handles GET /api/services/{slug} (public)
func (h *ServiceHandler) GetServicePage(w http.ResponseWriter, r *http.Request) {
	locale := requestLocale(r)

	page, err := h.service.ServicePage(r.Context(), chi.URLParam(r, "slug"), locale)
	if err != nil {
		handleServiceError(w, h.log, err, "get service page")
		return
	}

	w.Header().Set("Content-Language", locale)
	utils.ResponseSuccess(w, "success", page)
}
