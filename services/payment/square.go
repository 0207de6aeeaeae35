package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"solmar/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SquareGateway charges through the Square Payments API. The token is the
// source ID produced by Square's Web Payments tokenization.
type SquareGateway struct {
	baseURL     string
	accessToken string
	locationID  string
	httpClient  *http.Client
	logger      *zap.Logger
}

// NewSquareGateway returns a gateway for the given Square environment.
func NewSquareGateway(baseURL, accessToken, locationID string, logger *zap.Logger) *SquareGateway {
	return &SquareGateway{
		baseURL:     baseURL,
		accessToken: accessToken,
		locationID:  locationID,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		logger:      logger,
	}
}

func (g *SquareGateway) Name() string { return GatewaySquare }

type squarePaymentRequest struct {
	SourceID       string           `json:"source_id"`
	IdempotencyKey string           `json:"idempotency_key"`
	AmountMoney    squareMoney      `json:"amount_money"`
	LocationID     string           `json:"location_id,omitempty"`
	Note           string           `json:"note,omitempty"`
}

type squareMoney struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type squarePaymentResponse struct {
	Payment struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"payment"`
	Errors []struct {
		Category string `json:"category"`
		Code     string `json:"code"`
		Detail   string `json:"detail"`
	} `json:"errors"`
}

// Charge submits a payment creation request. Every attempt carries a fresh
// idempotency key: retries are a user decision, never an automatic resend.
func (g *SquareGateway) Charge(ctx context.Context, req models.ChargeRequest) (*models.ChargeResult, error) {
	body := squarePaymentRequest{
		SourceID:       req.Token,
		IdempotencyKey: uuid.New().String(),
		AmountMoney: squareMoney{
			Amount:   req.AmountCents,
			Currency: req.Currency,
		},
		LocationID: g.locationID,
		Note:       req.Description,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal square payment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v2/payments", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build square payment request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.accessToken)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnreachable, err)
	}
	defer resp.Body.Close()

	var parsed squarePaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: unreadable response: %v", ErrGatewayUnreachable, err)
	}

	if resp.StatusCode != http.StatusOK || len(parsed.Errors) > 0 {
		return nil, g.mapError(resp.StatusCode, parsed)
	}
	if parsed.Payment.Status != "COMPLETED" && parsed.Payment.Status != "APPROVED" {
		return nil, fmt.Errorf("%w: payment status %s", ErrDeclined, parsed.Payment.Status)
	}

	return &models.ChargeResult{
		Success:   true,
		Reference: parsed.Payment.ID,
		Gateway:   GatewaySquare,
	}, nil
}

func (g *SquareGateway) mapError(status int, parsed squarePaymentResponse) error {
	if len(parsed.Errors) == 0 {
		return fmt.Errorf("%w: unexpected status %d", ErrGatewayUnreachable, status)
	}
	first := parsed.Errors[0]
	g.logger.Warn("square charge failed",
		zap.String("category", first.Category), zap.String("code", first.Code))

	switch first.Category {
	case "PAYMENT_METHOD_ERROR":
		return fmt.Errorf("%w: %s", ErrDeclined, first.Detail)
	case "INVALID_REQUEST_ERROR", "AUTHENTICATION_ERROR":
		return fmt.Errorf("%w: %s", ErrTokenRejected, first.Detail)
	default:
		return fmt.Errorf("%w: %s %s", ErrGatewayUnreachable, first.Code, first.Detail)
	}
}
