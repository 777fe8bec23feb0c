package middlewares

import (
	"net/http"

	"github.com/lakshana011/HealUp/internal/app/models"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
	"github.com/lakshana011/HealUp/internal/pkg/exceptions"
	"github.com/lakshana011/HealUp/internal/pkg/utils"
)

func (m *Middlewares) RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionData, _ := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.SessionData)
		if sessionData.IsAnonymous() {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionTokenMissing(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *Middlewares) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionData, _ := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.SessionData)
			if sessionData.IsAnonymous() {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionTokenMissing(nil))
				return
			}
			if !sessionData.HasRole(role) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed(nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
