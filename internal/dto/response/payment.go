package response

// PaymentIntentResponse describes the hand-off to a payment gateway. No
// gateway is integrated yet, so PaymentURL is always null.
type PaymentIntentResponse struct {
	BookingReference string  `json:"booking_reference"`
	Amount           float64 `json:"amount"`
	Currency         string  `json:"currency"`
	Description      string  `json:"description"`
	ReturnURL        string  `json:"return_url"`
	CancelURL        string  `json:"cancel_url"`
	PaymentURL       *string `json:"payment_url"`
	Message          string  `json:"message"`
}
