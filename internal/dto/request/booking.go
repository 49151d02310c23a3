package request

import "strings"

// CreateBookingRequest is the public booking form. Any client supplied total
// is ignored; the engine prices the booking itself.
type CreateBookingRequest struct {
	ServiceSlug   string  `json:"service_slug" validate:"required"`
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	Adults        int     `json:"adults" validate:"required,gte=1,lte=50"`
	Children      int     `json:"children" validate:"gte=0,lte=50"`
	FirstName     string  `json:"first_name" validate:"required,max=100"`
	LastName      string  `json:"last_name" validate:"required,max=100"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         string  `json:"phone" validate:"required,max=40"`
	Observations  *string `json:"observations,omitempty" validate:"omitempty,max=2000"`
	DiscountCode  *string `json:"discount_code,omitempty" validate:"omitempty,max=64"`
	IsGift        bool    `json:"is_gift"`
	Hotel         *string `json:"hotel,omitempty" validate:"omitempty,max=200"`
	PaymentMethod string  `json:"payment_method" validate:"omitempty,max=32"`
	AcceptTerms   bool    `json:"accept_terms" validate:"required"`
}

// Normalize trims the free text fields so that whitespace alone never
// satisfies a required field.
func (r *CreateBookingRequest) Normalize() {
	r.ServiceSlug = strings.TrimSpace(r.ServiceSlug)
	r.Date = strings.TrimSpace(r.Date)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = NormalizeEmail(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.PaymentMethod = strings.TrimSpace(r.PaymentMethod)
}

// NormalizeEmail is applied wherever an email is stored or compared.
// Matching stays case sensitive.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}
