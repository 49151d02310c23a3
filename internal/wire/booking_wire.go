package wire

import (
	"net/http"

	"teide-booking/internal/adaptor"
	"teide-booking/internal/usecase"
	"teide-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type limiter func(name string) func(next http.Handler) http.Handler

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	paymentHandler *adaptor.PaymentHandler,
	auth usecase.AuthService,
	limit limiter,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/bookings - Create booking from the checkout form
	r.With(limit("booking_create")).Post("/api/bookings", bookingHandler.CreateBooking)

	// GET /api/bookings/{reference}?email= - Customer looks up own booking
	r.With(limit("booking_lookup")).Get("/api/bookings/{reference}", bookingHandler.GetBooking)

	// POST /api/payment/create - Payment intent for an existing booking
	r.With(limit("payment")).Post("/api/payment/create", paymentHandler.CreatePayment)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.RequireAdmin(auth, log))

		r.Get("/", bookingHandler.ListBookings) // GET /api/admin/bookings?status=
		r.Get("/stats", bookingHandler.Stats)   // GET /api/admin/bookings/stats
		r.Get("/{reference}", bookingHandler.GetBookingByReference)
		r.Patch("/{reference}", bookingHandler.UpdateStatus)
	})
}
