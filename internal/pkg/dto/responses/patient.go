package responses

type PatientSummary struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Gender        string `json:"gender"`
	DateOfBirth   string `json:"dateOfBirth"`
	ContactNumber string `json:"contactNumber,omitempty"`
	Email         string `json:"email"`
	Address       string `json:"address,omitempty"`
	IsActive      bool   `json:"isActive"`
	CreatedAt     string `json:"createdAt,omitempty"`
	TotalBookings int64  `json:"totalBookings"`
	LastVisit     string `json:"lastVisit,omitempty"`
}

// PatientDashboard is the portal landing summary for a logged-in patient.
type PatientDashboard struct {
	TotalBookings       int64 `json:"totalBookings"`
	TotalTestsCompleted int64 `json:"totalTestsCompleted"`
	PendingTests        int64 `json:"pendingTests"`
}

type PatientProfile struct {
	ID            int64  `json:"id,omitempty"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber,omitempty"`
	Address       string `json:"address,omitempty"`
}

// PatientBooking is one row of the portal bookings table.
type PatientBooking struct {
	BookingID    int64  `json:"bookingId"`
	TestName     string `json:"testName"`
	BookingDate  string `json:"bookingDate"`
	SampleStatus string `json:"sampleStatus"`
	TestStatus   string `json:"testStatus"`
}

// PatientPayment is one row of the portal payments table.
type PatientPayment struct {
	PaymentID int64   `json:"paymentId"`
	BookingID int64   `json:"bookingId"`
	PaidAt    string  `json:"paidAt,omitempty"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
}
