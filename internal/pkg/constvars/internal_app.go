package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "HEALUP_SVC_"
)

const (
	// SessionCookieName matches the storage key browser clients already use,
	// so an existing token keeps working across the transition.
	SessionCookieName = "healup-token"

	// SessionCacheKeyPrefix namespaces cached sessions; the token itself is
	// hashed into the key, never stored in it.
	SessionCacheKeyPrefix = "SESSION:"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

const (
	AppointmentStatusUpcoming  = "upcoming"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	AppointmentTypeInPerson = "in-person"
	AppointmentTypeVideo    = "video"
)

const (
	PaymentMethodCard   = "card"
	PaymentMethodPayPal = "paypal"
)

const (
	TransactionIDPrefix = "TXN-"
	PaymentServiceFee   = 50
)

const (
	DateOnlyFormat = "2006-01-02"
	MonthFormat    = "2006-01"
)

const (
	MaxRatingStars = 5
)

const (
	LimiterGroupCredentials = "credentials"
)
