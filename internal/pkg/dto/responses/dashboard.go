package responses

type PatientStats struct {
	TotalAppointments     int `json:"totalAppointments"`
	UpcomingAppointments  int `json:"upcomingAppointments"`
	CompletedAppointments int `json:"completedAppointments"`
}

type DoctorStats struct {
	TotalAppointments     int `json:"totalAppointments"`
	TodayAppointments     int `json:"todayAppointments"`
	CompletedAppointments int `json:"completedAppointments"`
	PendingAppointments   int `json:"pendingAppointments"`
}

type PatientDashboard struct {
	Stats    PatientStats      `json:"stats"`
	Upcoming []AppointmentView `json:"upcoming"`
}

type DoctorDashboard struct {
	Stats DoctorStats       `json:"stats"`
	Today []AppointmentView `json:"today"`
}

type AdminDashboard struct {
	TotalDoctors      int `json:"totalDoctors"`
	TotalPatients     int `json:"totalPatients"`
	TotalAppointments int `json:"totalAppointments"`
	UpcomingCount     int `json:"upcomingCount"`
	CompletedCount    int `json:"completedCount"`
	CancelledCount    int `json:"cancelledCount"`
}
