package entity

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}

const DefaultPaymentMethod = "card"

type Booking struct {
	ID            int64         `db:"id"`
	Reference     string        `db:"reference"`
	ServiceSlug   string        `db:"service_slug"`
	Date          time.Time     `db:"date"`
	Adults        int           `db:"adults"`
	Children      int           `db:"children"`
	FirstName     string        `db:"first_name"`
	LastName      string        `db:"last_name"`
	Email         string        `db:"email"`
	Phone         string        `db:"phone"`
	Observations  *string       `db:"observations"`
	DiscountCode  *string       `db:"discount_code"`
	IsGift        bool          `db:"is_gift"`
	Hotel         *string       `db:"hotel"`
	PaymentMethod string        `db:"payment_method"`
	TotalPrice    float64       `db:"total_price"`
	Status        BookingStatus `db:"status"`
	PaymentStatus PaymentStatus `db:"payment_status"`
	PaymentID     *string       `db:"payment_id"`
	CreatedAt     time.Time     `db:"created_at"`
}

// BookingStats backs the admin dashboard counters.
type BookingStats struct {
	TotalBookings int64   `db:"total_bookings"`
	TotalRevenue  float64 `db:"total_revenue"`
	TodayBookings int64   `db:"today_bookings"`
}
