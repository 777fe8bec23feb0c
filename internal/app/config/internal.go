package config

type InternalConfig struct {
	App       App
	HealUpAPI HealUpAPI
	Session   Session
	Limiter   Limiter
	Payment   Payment
}

type App struct {
	Env             string
	Port            string
	Timezone        string
	EndpointPrefix  string
	MaxRequests     int
	ShutdownTimeout int
}

// HealUpAPI locates the remote REST backend every page is rendered against.
type HealUpAPI struct {
	BaseUrl                 string
	RequestTimeoutInSeconds int
}

type Session struct {
	CookieDomain             string
	CookieSecure             bool
	DefaultExpiryTimeInHours int
	CacheTTLInSeconds        int
}

// Limiter throttles credential endpoints (fixed window, Redis-backed) and the
// doctor search endpoint (in-memory token bucket).
type Limiter struct {
	CredentialWindowSeconds  int
	CredentialMaxAttempts    int
	SearchRequestsPerSecond  int
	SearchBlockTimeInSeconds int
}

type Payment struct {
	ServiceFee int
}
