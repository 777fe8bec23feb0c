package responses

import "github.com/lakshana011/HealUp/internal/app/models"

type AuthResult struct {
	User *models.User `json:"user"`
}

type Session struct {
	Authenticated  bool            `json:"authenticated"`
	User           *models.User    `json:"user,omitempty"`
	DoctorProfile  *models.Doctor  `json:"doctorProfile,omitempty"`
	PatientProfile *models.Patient `json:"patientProfile,omitempty"`
}
