package request

import "strings"

type CreatePaymentRequest struct {
	BookingReference string `json:"booking_reference" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
}

func (r *CreatePaymentRequest) Normalize() {
	r.BookingReference = strings.TrimSpace(r.BookingReference)
	r.Email = NormalizeEmail(r.Email)
}
