package requests

// UpdateDoctorProfile carries the fields a doctor may edit on their own
// record. Zero values are omitted so partial updates pass through untouched.
type UpdateDoctorProfile struct {
	Name            string `json:"name,omitempty"`
	Specialty       string `json:"specialty,omitempty"`
	Experience      int    `json:"experience,omitempty"`
	ConsultationFee int    `json:"consultationFee,omitempty"`
	Image           string `json:"image,omitempty"`
	Bio             string `json:"bio,omitempty"`
	Education       string `json:"education,omitempty"`
}

// ReplaceAvailability replaces a doctor's slot set wholesale.
type ReplaceAvailability struct {
	Slots []string `json:"slots" validate:"required"`
}
