package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingMethodKey      = "method"
	LoggingPathKey        = "path"
	LoggingURLKey         = "url"
	LoggingStatusKey      = "status"
	LoggingDurationKey    = "duration"
	LoggingEmailKey       = "email"
	LoggingUserTypeKey    = "user_type"
	LoggingBookingIDKey   = "booking_id"
	LoggingTestIDKey      = "test_id"
	LoggingPatientIDKey   = "patient_id"
	LoggingPaymentIDKey   = "payment_id"
	LoggingSampleIDKey    = "sample_id"
	LoggingReportIDKey    = "report_id"
	LoggingStorageKeyKey  = "storage_key"
	LoggingResponseKey    = "response"
	LoggingContentTypeKey = "content_type"
)
