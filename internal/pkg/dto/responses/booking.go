package responses

type Booking struct {
	ID          int64  `json:"id"`
	PatientID   int64  `json:"patientId"`
	PatientName string `json:"patientName,omitempty"`
	CreatedBy   int64  `json:"createdBy,omitempty"`
	BookingDate string `json:"bookingDate"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

type BookingTest struct {
	ID             int64  `json:"id"`
	BookingID      int64  `json:"bookingId"`
	TestID         int64  `json:"testId"`
	TestName       string `json:"testName"`
	Interpretation string `json:"interpretation,omitempty"`
}
