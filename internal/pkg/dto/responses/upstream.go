package responses

import "github.com/lakshana011/HealUp/internal/app/models"

// Envelopes the upstream HealUp API wraps around mutating calls. List and
// single-entity reads come back as bare JSON, decoded straight into models.

type UpstreamAuth struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message,omitempty"`
	Token          string          `json:"token,omitempty"`
	User           *models.User    `json:"user,omitempty"`
	DoctorProfile  *models.Doctor  `json:"doctorProfile,omitempty"`
	PatientProfile *models.Patient `json:"patientProfile,omitempty"`
}

type UpstreamBooking struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message,omitempty"`
	Appointment *models.Appointment `json:"appointment,omitempty"`
}

type UpstreamDoctorUpdate struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Doctor  *models.Doctor `json:"doctor,omitempty"`
}

type UpstreamPatientUpdate struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Patient *models.Patient `json:"patient,omitempty"`
}

type UpstreamStatus struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
