package requests

// BookAppointment is the booking-step submission. Patient identity comes from
// the resolved session, never from the request body.
type BookAppointment struct {
	Date  string `json:"date" validate:"required,calendar_date"`
	Time  string `json:"time" validate:"required"`
	Type  string `json:"type" validate:"omitempty,appointment_type"`
	Notes string `json:"notes"`
}

// CreateAppointment is the upstream wire shape for POST /appointments.
type CreateAppointment struct {
	PatientID string `json:"patientId"`
	DoctorID  string `json:"doctorId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Type      string `json:"type"`
	Notes     string `json:"notes,omitempty"`
}
