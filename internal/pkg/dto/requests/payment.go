package requests

type CreatePaymentRequest struct {
	BookingID     int64   `json:"bookingId" validate:"required,gt=0"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentStatus string  `json:"paymentStatus" validate:"required,oneof=paid pending"`
	PaidAt        string  `json:"paidAt,omitempty"`
}

type UpdatePaymentRequest struct {
	Amount        float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	PaymentStatus string  `json:"paymentStatus,omitempty" validate:"omitempty,oneof=paid pending"`
	PaidAt        string  `json:"paidAt,omitempty"`
}
