package responses

type Payment struct {
	ID                   int64    `json:"id"`
	BookingID            int64    `json:"bookingId"`
	PatientName          string   `json:"patientName,omitempty"`
	PatientContactNumber string   `json:"patientContactNumber,omitempty"`
	TestNames            []string `json:"testNames,omitempty"`
	BookingDate          string   `json:"bookingDate,omitempty"`
	Status               string   `json:"status"`
	TotalAmount          float64  `json:"totalAmount"`
	PaidAt               string   `json:"paidAt,omitempty"`
}
