package usecase

import (
	"time"

	"teide-booking/internal/data/catalog"
	"teide-booking/internal/data/repository"
	"teide-booking/internal/events"
	"teide-booking/internal/i18n"
	"teide-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Resolver ResolverService
	Auth     AuthService
	Booking  BookingService
	Payment  PaymentService
	Content  ContentService
	Page     PageService
}

func NewService(
	repo *repository.Repository,
	store *catalog.Store,
	publisher events.Publisher,
	translator i18n.Translator,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	resolver := NewResolverService(store, repo.ServiceOverride, log)
	booking := NewBookingService(repo.Booking, resolver, publisher, log)

	return &Service{
		Resolver: resolver,
		Auth:     NewAuthService(repo, config.Auth, time.Now, log),
		Booking:  booking,
		Payment:  NewPaymentService(booking, config.App.SiteURL, log),
		Content:  NewContentService(resolver, repo.ServiceOverride, translator, config.App.DefaultLocale, log),
		Page:     NewPageService(resolver, translator, config.App.SiteURL, log),
	}
}
