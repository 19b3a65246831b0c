package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"oneof":     "must be one of [%s]",
	"gt":        "must be greater than %s",
	"gte":       "must be greater than or equal to %s",
	"numeric":   "must be a number",
	"datetime":  "must be a valid date (%s)",
	"password":  "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"user_type": "must be either 'PATIENT' or 'USER'",
	"gender":    "must be one of M, F or O",
	"role":      "must be one of ADMIN, LAB_TECH or DOCTOR",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"gt":       true,
	"gte":      true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientBackendUnreachable            = "cannot reach the PathLab server, check your connection"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientNotLoggedIn                   = "you are not logged in, please login first"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientInvalidLoginResponse          = "Invalid login response"
	ErrClientSessionCorrupted              = "your saved session is invalid, please login again"
	ErrClientTooManyRequests               = "too many attempts, please try again later"
)

// Error messages for developers
const (
	ErrDevValidationFailed        = "Validation failed"
	ErrDevCannotMarshalJSON       = "Failed to marshal JSON"
	ErrDevCannotParseJSON         = "Failed to parse JSON"
	ErrDevBuildRequest            = "Failed to build HTTP request"
	ErrDevSendRequest             = "Failed to send HTTP request to backend"
	ErrDevReadResponseBody        = "Failed to read response body"
	ErrDevDecodeResponse          = "Failed to decode response body"
	ErrDevUnexpectedStatus        = "Backend responded with HTTP %d: %s"
	ErrDevLoginResponseNoToken    = "Login response has no access token"
	ErrDevTokenNotDecodable       = "Access token payload cannot be decoded"
	ErrDevTokenMissingRole        = "Access token payload has no userType claim"
	ErrDevSessionStorageRead      = "Failed to read session storage entry"
	ErrDevSessionStorageWrite     = "Failed to write session storage entry"
	ErrDevSessionStorageDelete    = "Failed to delete session storage entry"
	ErrDevAuthTokenMissing        = "Authorization token is missing"
	ErrDevAuthTokenInvalid        = "Authorization token is invalid or expired"
	ErrDevAuthTokenBlacklisted    = "Authorization token has been revoked"
	ErrDevAuthSigningMethod       = "Unexpected token signing method"
	ErrDevAuthGenerateToken       = "Failed to generate token"
	ErrDevRoleNotAllowed          = "Session role is not allowed to perform this operation"
	ErrDevResourceNotFound        = "%s not found"
	ErrDevEmailAlreadyExists      = "Email already in use"
	ErrDevInvalidCredentials      = "Credentials do not match any account"
	ErrDevVerificationTokenError  = "Verification token is invalid or expired"
	ErrDevResetTokenError         = "Reset token is invalid or expired"
	ErrDevAccountNotVerified      = "Account email is not verified yet"
	ErrDevAdminCredentialsInvalid = "Admin credentials are missing or invalid"
	ErrDevTooManyLoginAttempts    = "Login rate limit exceeded"
)
