package payment

import (
	"context"

	"solmar/models"
)

// Gateway names accepted at the confirm endpoint.
const (
	GatewayStripe = "stripe"
	GatewaySquare = "square"
)

// PaymentGateway submits a tokenized charge to an external processor. Both
// concrete processors reduce to this contract: an amount in minor units and
// an opaque token in, a success flag and a processor reference out.
//
// Implementations never retry; a declined or failed charge is returned to
// the caller, which decides whether the user may resubmit.
type PaymentGateway interface {
	Name() string
	Charge(ctx context.Context, req models.ChargeRequest) (*models.ChargeResult, error)
}
