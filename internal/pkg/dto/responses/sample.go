package responses

type Sample struct {
	ID          int64  `json:"id"`
	BookingID   int64  `json:"bookingId"`
	TestID      int64  `json:"testId"`
	TestName    string `json:"testName,omitempty"`
	CollectedAt string `json:"collectedAt,omitempty"`
	CollectedBy int64  `json:"collectedBy,omitempty"`
	Status      string `json:"status"`
	Notes       string `json:"notes,omitempty"`
}
