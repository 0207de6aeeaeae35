package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"solmar/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func squareCharge() models.ChargeRequest {
	return models.ChargeRequest{
		SessionID:   "sess-1",
		AmountCents: 20500,
		Currency:    "USD",
		Token:       "cnon:card-nonce-ok",
		Description: "Private Chef Experience on 2026-07-14",
	}
}

func TestSquareCharge_Completed(t *testing.T) {
	var seen struct {
		SourceID       string `json:"source_id"`
		IdempotencyKey string `json:"idempotency_key"`
		AmountMoney    struct {
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
		} `json:"amount_money"`
		LocationID string `json:"location_id"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/payments", r.URL.Path)
		assert.Equal(t, "Bearer sq0atp-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&seen))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"payment":{"id":"sq_pay_1","status":"COMPLETED"}}`))
	}))
	defer server.Close()

	gw := NewSquareGateway(server.URL, "sq0atp-test", "LOC1", zap.NewNop())
	result, err := gw.Charge(context.Background(), squareCharge())
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "sq_pay_1", result.Reference)
	assert.Equal(t, GatewaySquare, result.Gateway)

	assert.Equal(t, "cnon:card-nonce-ok", seen.SourceID)
	assert.NotEmpty(t, seen.IdempotencyKey)
	assert.Equal(t, int64(20500), seen.AmountMoney.Amount)
	assert.Equal(t, "USD", seen.AmountMoney.Currency)
	assert.Equal(t, "LOC1", seen.LocationID)
}

func TestSquareCharge_CardDeclined(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"errors":[{"category":"PAYMENT_METHOD_ERROR","code":"CARD_DECLINED","detail":"Card declined."}]}`))
	}))
	defer server.Close()

	gw := NewSquareGateway(server.URL, "sq0atp-test", "LOC1", zap.NewNop())
	_, err := gw.Charge(context.Background(), squareCharge())
	assert.ErrorIs(t, err, ErrDeclined)
}

func TestSquareCharge_BadToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":[{"category":"INVALID_REQUEST_ERROR","code":"NOT_FOUND","detail":"Source not found."}]}`))
	}))
	defer server.Close()

	gw := NewSquareGateway(server.URL, "sq0atp-test", "LOC1", zap.NewNop())
	_, err := gw.Charge(context.Background(), squareCharge())
	assert.ErrorIs(t, err, ErrTokenRejected)
}

func TestSquareCharge_NonCompletedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"payment":{"id":"sq_pay_2","status":"FAILED"}}`))
	}))
	defer server.Close()

	gw := NewSquareGateway(server.URL, "sq0atp-test", "LOC1", zap.NewNop())
	_, err := gw.Charge(context.Background(), squareCharge())
	assert.ErrorIs(t, err, ErrDeclined)
}

func TestSquareCharge_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	gw := NewSquareGateway(server.URL, "sq0atp-test", "LOC1", zap.NewNop())
	_, err := gw.Charge(context.Background(), squareCharge())
	assert.ErrorIs(t, err, ErrGatewayUnreachable)
}
