package requests

type CreateSampleRequest struct {
	BookingID   int64  `json:"bookingId" validate:"required,gt=0"`
	TestID      int64  `json:"testId" validate:"required,gt=0"`
	CollectedBy int64  `json:"collectedBy,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type UpdateSampleRequest struct {
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=collection_pending collected"`
	CollectedBy int64  `json:"collectedBy,omitempty"`
	Notes       string `json:"notes,omitempty"`
}
