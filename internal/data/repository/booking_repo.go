package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"teide-booking/internal/data/entity"
	"teide-booking/pkg/database"
	"teide-booking/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// Create inserts one row and fills ID and CreatedAt. A reference clash
	// returns ErrDuplicateReference.
	Create(ctx context.Context, booking *entity.Booking) error
	FindByReference(ctx context.Context, reference string) (*entity.Booking, error)
	FindByReferenceAndEmail(ctx context.Context, reference, email string) (*entity.Booking, error)
	// FindAll lists newest first; a nil status means every booking.
	FindAll(ctx context.Context, status *entity.BookingStatus) ([]*entity.Booking, error)

	// Updates report whether a row changed instead of failing on unknown references.
	UpdateStatus(ctx context.Context, reference string, status entity.BookingStatus) (bool, error)
	UpdatePayment(ctx context.Context, reference string, status entity.PaymentStatus, paymentID *string) (bool, error)

	Stats(ctx context.Context, dayStart, dayEnd time.Time) (*entity.BookingStats, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, reference, service_slug, date, adults, children,
		first_name, last_name, email, phone, observations, discount_code,
		is_gift, hotel, payment_method, total_price, status, payment_status,
		payment_id, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.Reference,
		&b.ServiceSlug,
		&b.Date,
		&b.Adults,
		&b.Children,
		&b.FirstName,
		&b.LastName,
		&b.Email,
		&b.Phone,
		&b.Observations,
		&b.DiscountCode,
		&b.IsGift,
		&b.Hotel,
		&b.PaymentMethod,
		&b.TotalPrice,
		&b.Status,
		&b.PaymentStatus,
		&b.PaymentID,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (reference, service_slug, date, adults, children,
		                      first_name, last_name, email, phone, observations,
		                      discount_code, is_gift, hotel, payment_method,
		                      total_price, status, payment_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		booking.Reference,
		booking.ServiceSlug,
		booking.Date,
		booking.Adults,
		booking.Children,
		booking.FirstName,
		booking.LastName,
		booking.Email,
		booking.Phone,
		booking.Observations,
		booking.DiscountCode,
		booking.IsGift,
		booking.Hotel,
		booking.PaymentMethod,
		booking.TotalPrice,
		booking.Status,
		booking.PaymentStatus,
		booking.CreatedAt,
	).Scan(&booking.ID)

	if isUniqueViolation(err) {
		r.log.Warn("Booking reference collision", zap.String("reference", booking.Reference))
		return fmt.Errorf("create booking %s: %w", booking.Reference, ErrDuplicateReference)
	}
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("reference", booking.Reference),
			zap.String("service_slug", booking.ServiceSlug),
		)
		return fmt.Errorf("create booking %s: %w", booking.Reference, err)
	}

	return nil
}

func (r *bookingRepository) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE reference = $1
	`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, reference))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by reference",
			zap.Error(err),
			zap.String("reference", reference),
		)
		return nil, fmt.Errorf("find booking %s: %w", reference, err)
	}

	return booking, nil
}

// FindByReferenceAndEmail matches both columns exactly, including case.
func (r *bookingRepository) FindByReferenceAndEmail(ctx context.Context, reference, email string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE reference = $1 AND email = $2
	`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, reference, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by reference and email",
			zap.Error(err),
			zap.String("reference", reference),
			zap.String("email", utils.MaskEmail(email)),
		)
		return nil, fmt.Errorf("find booking %s by email: %w", reference, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, status *entity.BookingStatus) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE ($1::text IS NULL OR status = $1::text)
		ORDER BY created_at DESC
	`

	var filter *string
	if status != nil {
		s := string(*status)
		filter = &s
	}

	rows, err := r.db.Query(ctx, query, filter)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]*entity.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking", zap.Error(err))
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, reference string, status entity.BookingStatus) (bool, error) {
	query := `
		UPDATE bookings
		SET status = $2
		WHERE reference = $1
	`

	result, err := r.db.Exec(ctx, query, reference, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("reference", reference),
			zap.String("status", string(status)),
		)
		return false, fmt.Errorf("update booking status %s: %w", reference, err)
	}

	return result.RowsAffected() > 0, nil
}

// UpdatePayment keeps the stored payment id when paymentID is nil.
func (r *bookingRepository) UpdatePayment(ctx context.Context, reference string, status entity.PaymentStatus, paymentID *string) (bool, error) {
	query := `
		UPDATE bookings
		SET payment_status = $2,
		    payment_id = COALESCE($3, payment_id)
		WHERE reference = $1
	`

	result, err := r.db.Exec(ctx, query, reference, status, paymentID)
	if err != nil {
		r.log.Error("Failed to update booking payment",
			zap.Error(err),
			zap.String("reference", reference),
			zap.String("payment_status", string(status)),
		)
		return false, fmt.Errorf("update booking payment %s: %w", reference, err)
	}

	return result.RowsAffected() > 0, nil
}

// Stats counts every booking, sums revenue over non-cancelled ones and counts
// bookings created in [dayStart, dayEnd).
func (r *bookingRepository) Stats(ctx context.Context, dayStart, dayEnd time.Time) (*entity.BookingStats, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(total_price) FILTER (WHERE status <> 'cancelled'), 0)::float8,
			COUNT(*) FILTER (WHERE created_at >= $1 AND created_at < $2)
		FROM bookings
	`

	var stats entity.BookingStats
	err := r.db.QueryRow(ctx, query, dayStart, dayEnd).Scan(
		&stats.TotalBookings,
		&stats.TotalRevenue,
		&stats.TodayBookings,
	)
	if err != nil {
		r.log.Error("Failed to compute booking stats", zap.Error(err))
		return nil, fmt.Errorf("booking stats: %w", err)
	}

	return &stats, nil
}
