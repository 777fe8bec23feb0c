package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateTransactionID produces the synthetic identifier the stub payment
// provider reports, in the TXN-<unix millis> shape the upstream contract uses.
func GenerateTransactionID(now time.Time) string {
	return fmt.Sprintf("%s%d", constvars.TransactionIDPrefix, now.UnixMilli())
}
