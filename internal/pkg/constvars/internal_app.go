package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
	CONTEXT_CLAIMS_KEY     ContextKey = "claims"
)

const (
	REQUEST_ID_PREFIX = "PATHLAB_CLI_"
)

// Per-session storage entry names. Both entries are cleared together on
// logout and validated independently on load.
const (
	StorageKeyAuthToken = "auth_token"
	StorageKeyAuthUser  = "auth_user"
)

const (
	UserTypePatient = "PATIENT"
	UserTypeStaff   = "USER"
)

const (
	StaffRoleAdmin   = "ADMIN"
	StaffRoleLabTech = "LAB_TECH"
	StaffRoleDoctor  = "DOCTOR"
)

const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusCompleted = "completed"
)

const (
	SampleStatusCollectionPending = "collection_pending"
	SampleStatusCollected         = "collected"
)

const (
	SampleTypeBlood  = "blood"
	SampleTypeUrine  = "urine"
	SampleTypeSaliva = "saliva"
	SampleTypeTissue = "tissue"
	SampleTypeOther  = "other"
)

const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
)

// Flags attached to a parameter value after comparing it against the
// applicable reference range. Empty when no numeric comparison is possible.
const (
	ResultStatusLow    = "LOW"
	ResultStatusNormal = "NORMAL"
	ResultStatusHigh   = "HIGH"
)

// JWT claim carrying the authenticated role. The login request's userType
// field is only a hint for the backend; this claim is the source of truth.
const (
	JWTClaimUserType = "userType"
	JWTClaimSubject  = "sub"
)

// Age below which the child reference range applies.
const ChildAgeThreshold = 18
