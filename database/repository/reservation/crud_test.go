package reservationRepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"solmar/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func chefPayload() models.ReservationPayload {
	return models.ReservationPayload{
		Service: models.Service{
			ID:       "private-chef",
			Name:     "Private Chef Experience",
			Type:     models.ServiceChef,
			Currency: "USD",
		},
		TotalPrice:  205,
		Currency:    "USD",
		BookingDate: time.Date(2026, 7, 14, 19, 30, 0, 0, time.FixedZone("AST", -4*3600)),
		FormData: models.ServiceFormData{
			ServiceType: models.ServiceChef,
			Chef:        &models.ChefFormData{ChefType: models.ChefProfessional, GuestCount: 12},
		},
		ClientInfo: &models.ClientInfo{
			Name:  "Maria Alvarez",
			Email: "maria@example.com",
			Phone: "+18095550134",
		},
		Notes: "no shellfish please",
	}
}

func TestNewReservationRecord(t *testing.T) {
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.FixedZone("AST", -4*3600))

	rec := NewReservationRecord(chefPayload(), "ch_123", now)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "private-chef", rec.ServiceID)
	assert.Equal(t, "Private Chef Experience", rec.ServiceName)
	assert.Equal(t, models.StatusPending, rec.Status)
	assert.Equal(t, 205.0, rec.TotalPrice)
	assert.Equal(t, "USD", rec.Currency)
	assert.Equal(t, "ch_123", rec.PaymentReference)
	assert.Equal(t, "no shellfish please", rec.Notes)

	// Contact details are lifted onto the record.
	assert.Equal(t, "Maria Alvarez", rec.ClientName)
	assert.Equal(t, "maria@example.com", rec.ClientEmail)
	assert.Equal(t, "+18095550134", rec.ClientPhone)

	// Timestamps are normalized to UTC.
	assert.Equal(t, time.UTC, rec.CreatedAt.Location())
	assert.Equal(t, time.UTC, rec.BookingDate.Location())
	assert.True(t, rec.BookingDate.Equal(time.Date(2026, 7, 14, 23, 30, 0, 0, time.UTC)))
	assert.Equal(t, rec.CreatedAt, rec.UpdatedAt)

	// Selections land as a flat bag.
	assert.Equal(t, models.ServiceChef, rec.FormData["serviceType"])
	assert.Equal(t, models.ChefProfessional, rec.FormData[models.FieldChefType])
	assert.Equal(t, 12, rec.FormData[models.FieldGuestCount])
}

func TestNewReservationRecord_UniqueIDs(t *testing.T) {
	payload := chefPayload()
	now := time.Now()

	a := NewReservationRecord(payload, "ch_1", now)
	b := NewReservationRecord(payload, "ch_2", now)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestWrapStoreError(t *testing.T) {
	require.NoError(t, wrapStoreError("op", nil))

	err := wrapStoreError("get reservation", mongo.ErrNoDocuments)
	assert.ErrorIs(t, err, ErrNotFound)

	err = wrapStoreError("create reservation", context.DeadlineExceeded)
	assert.ErrorIs(t, err, ErrUnavailable)

	err = wrapStoreError("create reservation", mongo.CommandError{Code: 13, Message: "not authorized on solmar"})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	err = wrapStoreError("create reservation", mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 13, Message: "not authorized"}},
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	// Unclassified failures keep their cause but join no category.
	plain := errors.New("boom")
	err = wrapStoreError("create reservation", plain)
	assert.ErrorIs(t, err, plain)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrPermissionDenied)
}
