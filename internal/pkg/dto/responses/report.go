package responses

type Report struct {
	ID          int64  `json:"id"`
	BookingID   int64  `json:"bookingId"`
	GeneratedBy int64  `json:"generatedBy,omitempty"`
	ReportFile  string `json:"reportFile,omitempty"`
	GeneratedAt string `json:"generatedAt,omitempty"`
}
