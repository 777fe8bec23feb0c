package constvars

// Client-facing error messages. Kept generic on purpose: the upstream API does
// not guarantee structured error codes, so callers treat failures uniformly.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientNotAuthorized                 = "You are not authorized to access this resource"
	ErrClientInvalidEmailOrPassword        = "Invalid email or password"
	ErrClientDoctorNotFound                = "Doctor not found"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientAppointmentNotFound           = "No appointment data found"
	ErrClientBookingFieldsMissing          = "Please fill in all required fields"
	ErrClientCardDetailsMissing            = "Please fill in all card details"
	ErrClientPaymentFailed                 = "Payment failed. Please try again."
	ErrClientBookingFailed                 = "Failed to book appointment. Please try again."
	ErrClientAppointmentNotActionable      = "This appointment can no longer be modified"
	ErrClientPastDateSelected              = "Cannot select a date in the past"
	ErrClientTooManyRequests               = "Too many requests, please slow down"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
	ErrClientUpstreamFallbackFormat        = "Request failed with status %d"
)

// Developer messages attached to CustomError for diagnostics.
const (
	ErrDevCannotParseJSON          = "Failed to parse JSON request body"
	ErrDevCannotParseDate          = "Failed to parse calendar date"
	ErrDevCannotMarshalJSON        = "Failed to marshal value to JSON"
	ErrDevValidationFailed         = "Request validation failed"
	ErrDevURLParamMissing          = "Required URL parameter %s is missing"
	ErrDevCreateHTTPRequest        = "Failed to build HTTP request to upstream API"
	ErrDevSendHTTPRequest          = "Failed to send HTTP request to upstream API"
	ErrDevReadUpstreamResponse     = "Failed to read upstream API response body"
	ErrDevDecodeUpstreamResponse   = "Failed to decode upstream %s response"
	ErrDevUpstreamRejected         = "Upstream API rejected %s request"
	ErrDevSessionTokenMissing      = "Session token cookie is missing"
	ErrDevSessionResolutionFailed  = "Session resolution against /auth/me failed"
	ErrDevSessionRoleMismatch      = "Session role does not allow this resource"
	ErrDevBookingFieldsMissing     = "Booking submission blocked: required field empty"
	ErrDevCardDetailsMissing       = "Card payment blocked: card field empty"
	ErrDevAppointmentTerminalState = "Status transition attempted on terminal appointment"
	ErrDevPastDateSelected         = "Calendar selection rejected: date before today"
	ErrDevPaymentAuthorizeFailed   = "Payment provider failed to authorize"
	ErrDevServerDeadlineExceeded   = "Request deadline exceeded"
	ErrDevRedisGetData             = "Failed to get data from Redis"
	ErrDevRedisSetData             = "Failed to set data to Redis"
	ErrDevRedisDeleteData          = "Failed to delete data from Redis"
	ErrDevRedisIncrementValue      = "Failed to increment value in Redis"
	ErrDevRateLimitExceeded        = "Fixed-window quota exceeded"
)
