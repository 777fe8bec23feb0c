package requests

type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
	Name   string `json:"name"`
}

type SubmitPayment struct {
	Method string      `json:"method" validate:"required,oneof=card paypal"`
	Card   CardDetails `json:"card"`
}

// HasCompleteCardDetails checks non-emptiness only. No format or checksum
// validation happens here; the provider boundary owns anything stricter.
func (p *SubmitPayment) HasCompleteCardDetails() bool {
	return p.Card.Number != "" && p.Card.Expiry != "" && p.Card.CVV != "" && p.Card.Name != ""
}
