package requests

type CreateReportRequest struct {
	BookingID   int64 `json:"bookingId" validate:"required,gt=0"`
	GeneratedBy int64 `json:"generatedBy,omitempty"`
}
