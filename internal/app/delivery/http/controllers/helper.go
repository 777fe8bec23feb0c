package controllers

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/lakshana011/HealUp/internal/app/models"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
	"github.com/lakshana011/HealUp/internal/pkg/exceptions"
	"github.com/lakshana011/HealUp/internal/pkg/utils"
)

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return id
}

func sessionData(r *http.Request) *models.SessionData {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.SessionData)
	if !ok || session == nil {
		return models.AnonymousSession()
	}
	return session
}

func parseAndValidateBody(r *http.Request, out interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := utils.ValidateStruct(out); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
