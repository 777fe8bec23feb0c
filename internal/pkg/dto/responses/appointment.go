package responses

import "github.com/lakshana011/HealUp/internal/app/models"

// AppointmentView attaches the action flags list pages render as buttons.
// Terminal statuses never expose either action.
type AppointmentView struct {
	models.Appointment
	CanCancel   bool `json:"canCancel"`
	CanComplete bool `json:"canComplete"`
}

func NewAppointmentView(appointment models.Appointment) AppointmentView {
	return AppointmentView{
		Appointment: appointment,
		CanCancel:   appointment.CanCancel(),
		CanComplete: appointment.CanComplete(),
	}
}

type AppointmentListView struct {
	Appointments []AppointmentView `json:"appointments"`
	Total        int               `json:"total"`
	StatusFilter string            `json:"statusFilter,omitempty"`
}
