package adaptor

import (
	"net/http"

	"teide-booking/internal/dto/request"
	"teide-booking/internal/i18n"
	"teide-booking/internal/usecase"
	"teide-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// CreatePayment handles POST /api/payment/create (public)
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	locale := i18n.Negotiate(r.URL.Query().Get("locale"), r.Header.Get("Accept-Language"))

	intent, err := h.service.CreatePaymentIntent(r.Context(), &req, locale)
	if err != nil {
		handleServiceError(w, h.log, err, "create payment")
		return
	}

	utils.ResponseSuccess(w, intent.Message, intent)
}
