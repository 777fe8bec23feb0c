package models

// Doctor mirrors the upstream API representation. Read-only from this service
// except through the doctor self-profile and availability endpoints.
type Doctor struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specialty       string   `json:"specialty"`
	Experience      int      `json:"experience"`
	Rating          float64  `json:"rating"`
	Reviews         int      `json:"reviews"`
	Image           string   `json:"image"`
	Bio             string   `json:"bio"`
	Education       string   `json:"education"`
	AvailableSlots  []string `json:"availableSlots"`
	ConsultationFee int      `json:"consultationFee"`
}
