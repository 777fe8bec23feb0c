package requests

// DoctorQueryParams filters the doctor listing. Both filters are optional and
// forwarded verbatim to the upstream API.
type DoctorQueryParams struct {
	Specialty string
	Search    string
}

// AppointmentQueryParams narrows appointment listings client-side by status.
type AppointmentQueryParams struct {
	Status string
}
