package payment_gateway

import (
	"context"
	"time"

	"github.com/lakshana011/HealUp/internal/app/contracts"
	"github.com/lakshana011/HealUp/internal/pkg/utils"
)

// stubGateway authorizes every charge and mints a synthetic transaction id.
// It stands in for a real provider behind the same interface; swapping it out
// touches nothing in the booking workflow.
type stubGateway struct {
	now func() time.Time
}

func NewStubGateway() contracts.PaymentGatewayService {
	return &stubGateway{now: time.Now}
}

func (s *stubGateway) Authorize(ctx context.Context, amount int, method string) (string, error) {
	return utils.GenerateTransactionID(s.now()), nil
}
