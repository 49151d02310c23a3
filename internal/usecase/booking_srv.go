package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"teide-booking/internal/data/entity"
	"teide-booking/internal/data/repository"
	"teide-booking/internal/dto/request"
	"teide-booking/internal/dto/response"
	"teide-booking/internal/events"
	"teide-booking/internal/metrics"
	"teide-booking/pkg/utils"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"
)

const (
	// MaxReferenceAttempts caps reference regeneration on collision.
	MaxReferenceAttempts = 5
	Currency             = "EUR"

	childPriceFactor = 0.5
	dateLayout       = "2006-01-02"
	publishTimeout   = 5 * time.Second
)

type BookingService interface {
	// Public endpoints
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)
	GetBooking(ctx context.Context, reference, email string) (*response.BookingResponse, error)

	// Admin endpoints
	ListBookings(ctx context.Context, status string) (*response.AdminBookingListResponse, error)
	GetBookingByReference(ctx context.Context, reference string) (*response.AdminBookingResponse, error)
	UpdateStatus(ctx context.Context, reference string, req *request.UpdateBookingStatusRequest) (*response.BookingStatusResponse, error)
	Stats(ctx context.Context) (*response.BookingStatsResponse, error)

	// UpdatePayment is used by the payment flow; false means no such booking.
	UpdatePayment(ctx context.Context, reference string, status entity.PaymentStatus, paymentID *string) (bool, error)
}

// ReferenceGenerator returns a candidate booking reference for the given time.
type ReferenceGenerator func(now time.Time) (string, error)

type bookingService struct {
	bookings  repository.BookingRepository
	resolver  ResolverService
	publisher events.Publisher
	log       *zap.Logger

	now         func() time.Time
	newRef      ReferenceGenerator
	maxAttempts uint
}

type BookingOption func(*bookingService)

func WithClock(now func() time.Time) BookingOption {
	return func(s *bookingService) { s.now = now }
}

func WithReferenceGenerator(gen ReferenceGenerator) BookingOption {
	return func(s *bookingService) { s.newRef = gen }
}

func NewBookingService(
	bookings repository.BookingRepository,
	resolver ResolverService,
	publisher events.Publisher,
	log *zap.Logger,
	opts ...BookingOption,
) BookingService {
	s := &bookingService{
		bookings:    bookings,
		resolver:    resolver,
		publisher:   publisher,
		log:         log.With(zap.String("service", "booking")),
		now:         time.Now,
		newRef:      utils.GenerateBookingReference,
		maxAttempts: MaxReferenceAttempts,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.publisher == nil {
		s.publisher = events.NewNopPublisher()
	}
	return s
}

// ComputeTotal prices adults at the unit price and children at half of it,
// rounded to cents.
func ComputeTotal(unitPrice float64, adults, children int) float64 {
	total := float64(adults)*unitPrice + float64(children)*unitPrice*childPriceFactor
	return math.Round(total*100) / 100
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	// Validate request
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, validationFailed("date", "Must be a date in the format "+dateLayout)
	}

	// Price comes from the effective service, never from the client
	svc, err := s.resolver.Resolve(ctx, req.ServiceSlug)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, notFound("service %s", req.ServiceSlug)
	}

	total := ComputeTotal(svc.Price, req.Adults, req.Children)

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = entity.DefaultPaymentMethod
	}

	booking := &entity.Booking{
		ServiceSlug:   svc.Slug,
		Date:          date,
		Adults:        req.Adults,
		Children:      req.Children,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Observations:  req.Observations,
		DiscountCode:  req.DiscountCode,
		IsGift:        req.IsGift,
		Hotel:         req.Hotel,
		PaymentMethod: paymentMethod,
		TotalPrice:    total,
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
	}

	if err := s.insertWithFreshReference(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("reference", booking.Reference),
		zap.String("service_slug", booking.ServiceSlug),
		zap.Float64("total_price", booking.TotalPrice),
		zap.String("email", utils.MaskEmail(booking.Email)),
	)
	metrics.BookingsCreated.WithLabelValues(booking.ServiceSlug).Inc()
	s.publishCreated(ctx, booking)

	return &response.CreateBookingResponse{
		Reference:  booking.Reference,
		TotalPrice: booking.TotalPrice,
		Status:     booking.Status,
	}, nil
}

// insertWithFreshReference draws a reference and inserts, drawing again only
// when the unique constraint rejects the reference.
func (s *bookingService) insertWithFreshReference(ctx context.Context, booking *entity.Booking) error {
	err := retry.Do(
		func() error {
			now := s.now()
			ref, err := s.newRef(now)
			if err != nil {
				return retry.Unrecoverable(err)
			}

			booking.Reference = ref
			booking.CreatedAt = now
			return s.bookings.Create(ctx, booking)
		},
		retry.Attempts(s.maxAttempts),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, repository.ErrDuplicateReference)
		}),
		retry.DelayType(retry.FixedDelay),
		retry.Delay(0),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			metrics.ReferenceCollisions.Inc()
			s.log.Warn("Booking reference collision, regenerating",
				zap.Uint("attempt", n+1),
				zap.String("reference", booking.Reference),
			)
		}),
	)
	if err == nil {
		return nil
	}

	if errors.Is(err, repository.ErrDuplicateReference) {
		s.log.Error("Booking reference attempts exhausted", zap.Uint("attempts", s.maxAttempts))
		return internal("allocate booking reference", err)
	}

	s.log.Error("Failed to create booking",
		zap.Error(err),
		zap.String("service_slug", booking.ServiceSlug),
	)
	return internal("create booking", err)
}

func (s *bookingService) publishCreated(ctx context.Context, b *entity.Booking) {
	// the request may finish before the broker answers
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := events.BookingCreated{
		Reference:   b.Reference,
		ServiceSlug: b.ServiceSlug,
		Date:        b.Date.Format(dateLayout),
		Adults:      b.Adults,
		Children:    b.Children,
		TotalPrice:  b.TotalPrice,
		Currency:    Currency,
		CreatedAt:   b.CreatedAt,
	}
	if err := s.publisher.PublishBookingCreated(pubCtx, event); err != nil {
		s.log.Warn("Booking event not published",
			zap.Error(err),
			zap.String("reference", b.Reference),
		)
	}
}

func (s *bookingService) GetBooking(ctx context.Context, reference, email string) (*response.BookingResponse, error) {
	reference = strings.TrimSpace(reference)
	email = request.NormalizeEmail(email)
	if reference == "" || email == "" {
		errs := map[string]string{}
		if reference == "" {
			errs["reference"] = "This field is required"
		}
		if email == "" {
			errs["email"] = "This field is required"
		}
		return nil, NewValidationError(errs)
	}

	booking, err := s.bookings.FindByReferenceAndEmail(ctx, reference, email)
	if err != nil {
		s.log.Error("Failed to look up booking", zap.Error(err), zap.String("reference", reference))
		return nil, internal("find booking", err)
	}
	// a wrong email is indistinguishable from a wrong reference
	if booking == nil {
		return nil, notFound("booking %s", reference)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context, status string) (*response.AdminBookingListResponse, error) {
	var filter *entity.BookingStatus
	if status != "" && status != "all" {
		st := entity.BookingStatus(status)
		if !st.Valid() {
			return nil, validationFailed("status", "Must be one of: pending, confirmed, cancelled")
		}
		filter = &st
	}

	bookings, err := s.bookings.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, internal("list bookings", err)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}

	resp := &response.AdminBookingListResponse{
		Bookings: make([]response.AdminBookingResponse, 0, len(bookings)),
		Stats:    *stats,
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, response.BookingToAdminResponse(b))
	}
	return resp, nil
}

func (s *bookingService) GetBookingByReference(ctx context.Context, reference string) (*response.AdminBookingResponse, error) {
	booking, err := s.bookings.FindByReference(ctx, reference)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("reference", reference))
		return nil, internal("find booking", err)
	}
	if booking == nil {
		return nil, notFound("booking %s", reference)
	}

	resp := response.BookingToAdminResponse(booking)
	return &resp, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, reference string, req *request.UpdateBookingStatusRequest) (*response.BookingStatusResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	status := entity.BookingStatus(req.Status)
	found, err := s.bookings.UpdateStatus(ctx, reference, status)
	if err != nil {
		s.log.Error("Failed to update booking status", zap.Error(err), zap.String("reference", reference))
		return nil, internal("update booking status", err)
	}
	if !found {
		return nil, notFound("booking %s", reference)
	}

	s.log.Info("Booking status updated",
		zap.String("reference", reference),
		zap.String("status", string(status)),
	)

	return &response.BookingStatusResponse{
		Success:   true,
		Reference: reference,
		Status:    status,
	}, nil
}

func (s *bookingService) UpdatePayment(ctx context.Context, reference string, status entity.PaymentStatus, paymentID *string) (bool, error) {
	if !status.Valid() {
		return false, validationFailed("payment_status", "Must be one of: pending, completed, failed")
	}

	found, err := s.bookings.UpdatePayment(ctx, reference, status, paymentID)
	if err != nil {
		s.log.Error("Failed to update payment status", zap.Error(err), zap.String("reference", reference))
		return false, internal("update payment status", err)
	}
	return found, nil
}

func (s *bookingService) Stats(ctx context.Context) (*response.BookingStatsResponse, error) {
	now := s.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	stats, err := s.bookings.Stats(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		s.log.Error("Failed to compute booking stats", zap.Error(err))
		return nil, internal("booking stats", err)
	}

	resp := response.StatsToResponse(stats)
	return &resp, nil
}
