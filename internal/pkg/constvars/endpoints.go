package constvars

// Auth endpoints, relative to the backend base URL.
const (
	EndpointAuthLogin           = "/auth/login"
	EndpointAuthLogout          = "/auth/logout"
	EndpointAuthRegisterPatient = "/auth/register/patient"
	EndpointAuthRegisterUser    = "/auth/register/user"
	EndpointAuthVerifyEmail     = "/auth/verify-email"
	EndpointAuthForgotPassword  = "/auth/forgot-password"
	EndpointAuthResetPassword   = "/auth/reset-password"
)

// Resource endpoints, relative to the backend base URL.
const (
	EndpointPatients     = "/patients"
	EndpointTests        = "/tests"
	EndpointBookings     = "/bookings"
	EndpointBookingTests = "/booking-tests"
	EndpointSamples      = "/samples"
	EndpointResults      = "/results"
	EndpointReports      = "/reports"
	EndpointPayments     = "/payments"
	EndpointDashboard    = "/dashboard"
)
