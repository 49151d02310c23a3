package response

import (
	"time"

	"teide-booking/internal/data/entity"
)

const dateLayout = "2006-01-02"

type CreateBookingResponse struct {
	Reference  string               `json:"reference"`
	TotalPrice float64              `json:"total_price"`
	Status     entity.BookingStatus `json:"status"`
}

// BookingResponse is what a customer sees. The gateway payment id stays out.
type BookingResponse struct {
	Reference     string               `json:"reference"`
	ServiceSlug   string               `json:"service_slug"`
	Date          string               `json:"date"`
	Adults        int                  `json:"adults"`
	Children      int                  `json:"children"`
	FirstName     string               `json:"first_name"`
	LastName      string               `json:"last_name"`
	Email         string               `json:"email"`
	Phone         string               `json:"phone"`
	Observations  *string              `json:"observations,omitempty"`
	DiscountCode  *string              `json:"discount_code,omitempty"`
	IsGift        bool                 `json:"is_gift"`
	Hotel         *string              `json:"hotel,omitempty"`
	PaymentMethod string               `json:"payment_method"`
	TotalPrice    float64              `json:"total_price"`
	Status        entity.BookingStatus `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time            `json:"created_at"`
}

type AdminBookingResponse struct {
	ID int64 `json:"id"`
	BookingResponse
	PaymentID *string `json:"payment_id"`
}

type BookingStatsResponse struct {
	TotalBookings int64   `json:"total_bookings"`
	TotalRevenue  float64 `json:"total_revenue"`
	TodayBookings int64   `json:"today_bookings"`
}

type AdminBookingListResponse struct {
	Bookings []AdminBookingResponse `json:"bookings"`
	Stats    BookingStatsResponse   `json:"stats"`
}

type BookingStatusResponse struct {
	Success   bool                 `json:"success"`
	Reference string               `json:"reference"`
	Status    entity.BookingStatus `json:"status"`
}

// Helper converters
func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		Reference:     b.Reference,
		ServiceSlug:   b.ServiceSlug,
		Date:          b.Date.Format(dateLayout),
		Adults:        b.Adults,
		Children:      b.Children,
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		Email:         b.Email,
		Phone:         b.Phone,
		Observations:  b.Observations,
		DiscountCode:  b.DiscountCode,
		IsGift:        b.IsGift,
		Hotel:         b.Hotel,
		PaymentMethod: b.PaymentMethod,
		TotalPrice:    b.TotalPrice,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt,
	}
}

func BookingToAdminResponse(b *entity.Booking) AdminBookingResponse {
	return AdminBookingResponse{
		ID:              b.ID,
		BookingResponse: BookingToResponse(b),
		PaymentID:       b.PaymentID,
	}
}

func StatsToResponse(s *entity.BookingStats) BookingStatsResponse {
	if s == nil {
		return BookingStatsResponse{}
	}
	return BookingStatsResponse{
		TotalBookings: s.TotalBookings,
		TotalRevenue:  s.TotalRevenue,
		TodayBookings: s.TodayBookings,
	}
}
