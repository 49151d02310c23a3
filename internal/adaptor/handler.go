package adaptor

import (
	"teide-booking/internal/usecase"
	"teide-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Booking      *BookingHandler
	Payment      *PaymentHandler
	Service      *ServiceHandler
	AdminService *AdminServiceHandler
	Health       *HealthHandler
}

func NewHandler(service *usecase.Service, db Pinger, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, config.Auth, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Payment:      NewPaymentHandler(service.Payment, log),
		Service:      NewServiceHandler(service.Page, log),
		AdminService: NewAdminServiceHandler(service.Content, log),
		Health:       NewHealthHandler(db, log),
	}
}
