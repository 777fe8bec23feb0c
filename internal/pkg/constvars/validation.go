package constvars

// CustomValidationErrorMessages maps validator tags to client wording.
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"email":            "must be a valid email address",
	"min":              "must be at least %s characters",
	"max":              "must be at most %s characters",
	"oneof":            "must be one of: %s",
	"appointment_type": "must be either in-person or video",
	"user_role":        "must be either patient or doctor",
	"calendar_date":    "must be a valid date in YYYY-MM-DD format",
	"slot_label":       "must be a non-empty time slot",
}

// TagsWithParams marks tags whose message embeds the tag parameter.
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}
