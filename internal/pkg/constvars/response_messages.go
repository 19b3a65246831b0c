package constvars

const (
	ResponseUnknown = "unknown"
)

// Messages returned by the mock backend, mirroring the production contract.
const (
	MsgLoggedOut             = "Logged out"
	MsgRegistrationAccepted  = "Registration successful, please verify your email"
	MsgEmailVerified         = "Email verified successfully"
	MsgPasswordResetSent     = "If the email exists, a reset link has been sent"
	MsgPasswordResetDone     = "Password has been reset"
	MsgResourceDeleted       = "Deleted"
	MsgTokenTypeBearer       = "Bearer"
	MockInvoicePDFHeader     = "%PDF-1.4 PathLab invoice "
	MockReportPDFHeader      = "%PDF-1.4 PathLab report "
	MockAccessTokenTTLSecond = 900
)
