package models

import "github.com/lakshana011/HealUp/internal/pkg/constvars"

// Appointment snapshots doctor/patient names and specialty at booking time.
// The copies are never reconciled with later Doctor edits; that drift is part
// of the upstream contract, not something this service repairs.
type Appointment struct {
	ID          string `json:"id"`
	PatientID   string `json:"patientId"`
	PatientName string `json:"patientName"`
	DoctorID    string `json:"doctorId"`
	DoctorName  string `json:"doctorName"`
	Specialty   string `json:"specialty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	Type        string `json:"type"`
	Notes       string `json:"notes,omitempty"`
}

// IsTerminal reports whether the appointment reached a state with no exposed
// outgoing transition. upcoming -> completed and upcoming -> cancelled are the
// only transitions the upstream API offers.
func (a Appointment) IsTerminal() bool {
	return a.Status == constvars.AppointmentStatusCompleted ||
		a.Status == constvars.AppointmentStatusCancelled
}

func (a Appointment) CanCancel() bool {
	return a.Status == constvars.AppointmentStatusUpcoming
}

func (a Appointment) CanComplete() bool {
	return a.Status == constvars.AppointmentStatusUpcoming
}
