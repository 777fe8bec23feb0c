package config

import (
	"github.com/joho/godotenv"
	"github.com/lakshana011/HealUp/internal/pkg/utils"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Timezone:        utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		HealUpAPI: HealUpAPI{
			BaseUrl:                 utils.GetEnvString("HEALUP_API_BASE_URL", "http://localhost:5000/api"),
			RequestTimeoutInSeconds: utils.GetEnvInt("HEALUP_API_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		Session: Session{
			CookieDomain:             utils.GetEnvString("SESSION_COOKIE_DOMAIN", ""),
			CookieSecure:             utils.GetEnvBool("SESSION_COOKIE_SECURE", false),
			DefaultExpiryTimeInHours: utils.GetEnvInt("SESSION_DEFAULT_EXPIRY_TIME_IN_HOURS", 24),
			CacheTTLInSeconds:        utils.GetEnvInt("SESSION_CACHE_TTL_IN_SECONDS", 60),
		},
		Limiter: Limiter{
			CredentialWindowSeconds:  utils.GetEnvInt("LIMITER_CREDENTIAL_WINDOW_SECONDS", 60),
			CredentialMaxAttempts:    utils.GetEnvInt("LIMITER_CREDENTIAL_MAX_ATTEMPTS", 10),
			SearchRequestsPerSecond:  utils.GetEnvInt("LIMITER_SEARCH_REQUESTS_PER_SECOND", 5),
			SearchBlockTimeInSeconds: utils.GetEnvInt("LIMITER_SEARCH_BLOCK_TIME_IN_SECONDS", 30),
		},
		Payment: Payment{
			ServiceFee: utils.GetEnvInt("PAYMENT_SERVICE_FEE", 50),
		},
	}
}
