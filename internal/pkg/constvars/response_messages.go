package constvars

const (
	LoginSuccessMessage       = "Logged in successfully"
	SignupSuccessMessage      = "Account created successfully"
	LogoutSuccessMessage      = "Logged out successfully"
	SessionResolvedMessage    = "Session resolved"
	DoctorsRetrievedMessage   = "Doctors retrieved successfully"
	DoctorRetrievedMessage    = "Doctor retrieved successfully"
	DoctorUpdatedMessage      = "Doctor profile updated successfully"
	AvailabilityUpdateMessage = "Availability updated successfully"
	PatientsRetrievedMessage  = "Patients retrieved successfully"
	PatientRetrievedMessage   = "Patient retrieved successfully"
	PatientUpdatedMessage     = "Patient profile updated successfully"
	AppointmentsListMessage   = "Appointments retrieved successfully"
	AppointmentCancelMessage  = "Appointment cancelled successfully"
	AppointmentDoneMessage    = "Appointment marked as completed"
	BookingProfileMessage     = "Doctor profile and availability retrieved"
	BookingSummaryMessage     = "Booking summary retrieved"
	BookingCreatedMessage     = "Appointment booked successfully"
	PaymentViewMessage        = "Payment details retrieved"
	PaymentSuccessMessage     = "Payment processed successfully"
	ConfirmationMessage       = "Appointment confirmed"
	DashboardMessage          = "Dashboard retrieved successfully"
)

const (
	NoSlotsAvailableMessage = "No slots available for this date"
)

const (
	ResponseUnknown = "unknown"
)
