package constvars

const (
	URLParamDoctorID      = "doctorID"
	URLParamPatientID     = "patientID"
	URLParamAppointmentID = "appointmentID"
)

const (
	QueryParamDate      = "date"
	QueryParamTime      = "time"
	QueryParamMonth     = "month"
	QueryParamSlot      = "slot"
	QueryParamSpecialty = "specialty"
	QueryParamSearch    = "q"
	QueryParamStatus    = "status"
)
