package responses

import "github.com/lakshana011/HealUp/internal/app/models"

// PatientDetail is one patient record together with their booking history.
// The history is populated for doctor and admin viewers; a patient reading
// their own record finds it on the dashboard instead.
type PatientDetail struct {
	Patient      models.Patient    `json:"patient"`
	Appointments []AppointmentView `json:"appointments"`
}
