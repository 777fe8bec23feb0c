package models

import "github.com/lakshana011/HealUp/internal/pkg/constvars"

// SessionData is the per-request resolved session. Resolution happens exactly
// once per request in the session middleware; handlers must branch on the
// resolved value, never on the raw cookie.
type SessionData struct {
	Token          string
	Authenticated  bool
	User           *User
	DoctorProfile  *Doctor
	PatientProfile *Patient
}

func AnonymousSession() *SessionData {
	return &SessionData{}
}

func (s *SessionData) IsAnonymous() bool {
	return s == nil || !s.Authenticated || s.User == nil
}

func (s *SessionData) HasRole(role string) bool {
	return !s.IsAnonymous() && s.User.Role == role
}

func (s *SessionData) IsPatient() bool {
	return s.HasRole(constvars.RolePatient)
}

func (s *SessionData) IsDoctor() bool {
	return s.HasRole(constvars.RoleDoctor)
}

func (s *SessionData) IsAdmin() bool {
	return s.HasRole(constvars.RoleAdmin)
}
