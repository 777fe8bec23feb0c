package contracts

import "context"

// PaymentGatewayService is the external provider boundary. It authorizes a
// charge and reports a transaction identifier; it never touches appointment
// state.
type PaymentGatewayService interface {
	Authorize(ctx context.Context, amount int, method string) (string, error)
}
