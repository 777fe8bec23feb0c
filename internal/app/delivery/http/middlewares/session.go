package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/lakshana011/HealUp/internal/pkg/constvars"
)

// ResolveSession turns the stored token into a SessionData exactly once per
// request. Handlers downstream read the resolved session from the context and
// never touch the cookie themselves.
func (m *Middlewares) ResolveSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if cookie, err := r.Cookie(constvars.SessionCookieName); err == nil {
			token = cookie.Value
		}
		if token == "" {
			if header := r.Header.Get(constvars.HeaderAuthorization); strings.HasPrefix(header, constvars.AuthorizationBearerPrefix) {
				token = strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix)
			}
		}

		sessionData := m.SessionService.Resolve(r.Context(), token)
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
