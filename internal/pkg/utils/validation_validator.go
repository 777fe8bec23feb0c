package utils

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("appointment_type", validateAppointmentType)
	validate.RegisterValidation("user_role", validateUserRole)
	validate.RegisterValidation("calendar_date", validateCalendarDate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateAppointmentType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.AppointmentTypeInPerson || value == constvars.AppointmentTypeVideo
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RolePatient || value == constvars.RoleDoctor
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}
	_, err := time.Parse(constvars.DateOnlyFormat, value)
	return err == nil
}
