package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"solmar/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StripeGateway charges through Stripe PaymentIntents. The token is the
// payment-method reference produced by Stripe's client-side tokenization;
// the intent is confirmed immediately.
type StripeGateway struct {
	logger *zap.Logger
}

// NewStripeGateway sets the global Stripe key and returns the gateway.
func NewStripeGateway(apiKey string, logger *zap.Logger) *StripeGateway {
	stripe.Key = apiKey
	return &StripeGateway{logger: logger}
}

func (g *StripeGateway) Name() string { return GatewayStripe }

// Charge submits a confirmed PaymentIntent for the computed total.
func (g *StripeGateway) Charge(ctx context.Context, req models.ChargeRequest) (*models.ChargeResult, error) {
	params := &stripe.PaymentIntentParams{
		Params:        stripe.Params{Context: ctx},
		Amount:        stripe.Int64(req.AmountCents),
		Currency:      stripe.String(strings.ToLower(req.Currency)),
		PaymentMethod: stripe.String(req.Token),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, g.mapError(err)
	}

	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		g.logger.Warn("stripe payment intent not succeeded",
			zap.String("intent", pi.ID), zap.String("status", string(pi.Status)))
		return nil, fmt.Errorf("%w: payment intent status %s", ErrDeclined, pi.Status)
	}

	return &models.ChargeResult{
		Success:   true,
		Reference: pi.ID,
		Gateway:   GatewayStripe,
	}, nil
}

func (g *StripeGateway) mapError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		g.logger.Warn("stripe charge failed",
			zap.String("type", string(stripeErr.Type)), zap.String("code", string(stripeErr.Code)))
		switch stripeErr.Type {
		case stripe.ErrorTypeCard:
			return fmt.Errorf("%w: %s", ErrDeclined, stripeErr.Msg)
		case stripe.ErrorTypeInvalidRequest:
			return fmt.Errorf("%w: %s", ErrTokenRejected, stripeErr.Msg)
		}
	}
	return fmt.Errorf("%w: %v", ErrGatewayUnreachable, err)
}
