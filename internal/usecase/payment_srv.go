package usecase

import (
	"context"
	"fmt"
	"strings"

	"teide-booking/internal/data/entity"
	"teide-booking/internal/dto/request"
	"teide-booking/internal/dto/response"
	"teide-booking/pkg/utils"

	"go.uber.org/zap"
)

const paymentNotConfiguredMessage = "Payment gateway not yet configured. Your booking has been saved."

type PaymentService interface {
	// CreatePaymentIntent prepares the gateway hand-off for a booking owned
	// by the given email. locale picks the manage-booking page to return to.
	CreatePaymentIntent(ctx context.Context, req *request.CreatePaymentRequest, locale string) (*response.PaymentIntentResponse, error)
}

// paymentService goes through the booking engine so ownership and payment
// status rules are the ones customers get on lookup.
type paymentService struct {
	bookings BookingService
	siteURL  string
	log      *zap.Logger
}

func NewPaymentService(bookings BookingService, siteURL string, log *zap.Logger) PaymentService {
	return &paymentService{
		bookings: bookings,
		siteURL:  strings.TrimRight(siteURL, "/"),
		log:      log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) CreatePaymentIntent(ctx context.Context, req *request.CreatePaymentRequest, locale string) (*response.PaymentIntentResponse, error) {
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	booking, err := s.bookings.GetBooking(ctx, req.BookingReference, req.Email)
	if err != nil {
		return nil, err
	}

	// no gateway yet: the booking stays pending until one is wired in
	found, err := s.bookings.UpdatePayment(ctx, booking.Reference, entity.PaymentStatusPending, nil)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, notFound("booking %s", booking.Reference)
	}

	manageURL := fmt.Sprintf("%s/%s/manage-booking", s.siteURL, locale)

	s.log.Info("Payment intent prepared",
		zap.String("reference", booking.Reference),
		zap.Float64("amount", booking.TotalPrice),
	)

	return &response.PaymentIntentResponse{
		BookingReference: booking.Reference,
		Amount:           booking.TotalPrice,
		Currency:         Currency,
		Description:      "Teide Explorer - Booking " + booking.Reference,
		ReturnURL:        manageURL,
		CancelURL:        manageURL,
		PaymentURL:       nil,
		Message:          paymentNotConfiguredMessage,
	}, nil
}
