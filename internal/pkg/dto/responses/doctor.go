package responses

import "github.com/lakshana011/HealUp/internal/app/models"

// DoctorView decorates the upstream record with display helpers. Stars is the
// rating clipped to the 5-star scale; the raw rating passes through untouched.
type DoctorView struct {
	models.Doctor
	Stars int `json:"stars"`
}

func NewDoctorView(doctor models.Doctor) DoctorView {
	stars := int(doctor.Rating)
	if stars > 5 {
		stars = 5
	}
	if stars < 0 {
		stars = 0
	}
	return DoctorView{Doctor: doctor, Stars: stars}
}

type DoctorListView struct {
	Doctors []DoctorView `json:"doctors"`
	Total   int          `json:"total"`
}
