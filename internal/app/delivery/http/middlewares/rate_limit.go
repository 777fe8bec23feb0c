package middlewares

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/lakshana011/HealUp/internal/app/services/shared/ratelimiter"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
	"github.com/lakshana011/HealUp/internal/pkg/exceptions"
	"github.com/lakshana011/HealUp/internal/pkg/utils"
)

// CredentialRateLimit guards login and signup against brute forcing. The
// window lives in Redis, so all instances share one counter per IP.
func (m *Middlewares) CredentialRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := m.CredentialLimiter.Evaluate(r.Context(), &ratelimiter.EvaluateInput{
			Identifier: clientIP(r),
			NowUTC:     time.Now().UTC(),
		})
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if !result.Allowed {
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(result.RetryAfterSecs))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get(constvars.HeaderXRealIP); forwarded != "" {
		return forwarded
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
