package payment

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func looseMatch(expected, actual []interface{}) error { return nil }

func newGuard() (*ChargeGuard, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	return &ChargeGuard{Cache: db, TTL: 2 * time.Minute}, mock
}

func TestChargeGuard_AcquireFirstWins(t *testing.T) {
	guard, mock := newGuard()
	mock.CustomMatch(looseMatch).ExpectSetNX("", "", 2*time.Minute).SetVal(true)

	ok, err := guard.Acquire(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestChargeGuard_AcquireRefusedWhileInFlight(t *testing.T) {
	guard, mock := newGuard()
	mock.CustomMatch(looseMatch).ExpectSetNX("", "", 2*time.Minute).SetVal(false)

	ok, err := guard.Acquire(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChargeGuard_Release(t *testing.T) {
	guard, mock := newGuard()
	mock.ExpectDel("charge:inflight:sess-1").SetVal(1)

	err := guard.Release(context.Background(), "sess-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChargeGuard_OrphanCharges(t *testing.T) {
	guard, mock := newGuard()
	mock.ExpectKeys("charge:orphan:*").SetVal([]string{"charge:orphan:sess-1"})
	mock.ExpectGet("charge:orphan:sess-1").SetVal("square:sq_pay_1:2026-07-14T10:00:00Z")

	orphans, err := guard.OrphanCharges(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"sess-1": "square:sq_pay_1:2026-07-14T10:00:00Z"}, orphans)
}
