package requests

type CreateBookingRequest struct {
	PatientID   int64   `json:"patientId" validate:"required,gt=0"`
	CreatedBy   int64   `json:"createdBy,omitempty"`
	BookingDate string  `json:"bookingDate" validate:"required,datetime=2006-01-02"`
	TestIDs     []int64 `json:"testIds" validate:"required,min=1"`
}

type UpdateBookingRequest struct {
	BookingDate string  `json:"bookingDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status      string  `json:"status,omitempty" validate:"omitempty,oneof=pending completed"`
	TestIDs     []int64 `json:"testIds,omitempty"`
}
