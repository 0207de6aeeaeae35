package reservationRepo

import (
	"context"
	"time"

	"solmar/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewReservationRecord maps an assembled payload into the wire record. Kept
// separate from the insert so the mapping is testable without a live store.
func NewReservationRecord(payload models.ReservationPayload, paymentRef string, now time.Time) models.Reservation {
	rec := models.Reservation{
		ID:               uuid.New().String(),
		ServiceID:        payload.Service.ID,
		ServiceName:      payload.Service.Name,
		BookingDate:      payload.BookingDate.UTC(),
		Status:           models.StatusPending,
		TotalPrice:       payload.TotalPrice,
		Currency:         payload.Currency,
		FormData:         payload.FormData.Flatten(),
		PaymentReference: paymentRef,
		Notes:            payload.Notes,
		CreatedAt:        now.UTC(),
		UpdatedAt:        now.UTC(),
	}
	if payload.ClientInfo != nil {
		rec.ClientName = payload.ClientInfo.Name
		rec.ClientEmail = payload.ClientInfo.Email
		rec.ClientPhone = payload.ClientInfo.Phone
		rec.HostContact = payload.ClientInfo.HostContact
	}
	return rec
}

// Create inserts a new reservation record and returns the stored domain object.
func (r *mongoReservationRepo) Create(ctx context.Context, payload models.ReservationPayload, paymentRef string) (*models.Reservation, error) {
	rec := NewReservationRecord(payload, paymentRef, time.Now())

	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return nil, wrapStoreError("create reservation", err)
	}
	return &rec, nil
}

// GetByID returns a reservation by its booking identifier.
func (r *mongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	var rec models.Reservation
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rec)
	if err != nil {
		return nil, wrapStoreError("get reservation", err)
	}
	return &rec, nil
}

// ListPendingOlderThan fetches pending reservations created before the
// cutoff, oldest first. Used by the audit sweep.
func (r *mongoReservationRepo) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]models.Reservation, error) {
	filter := bson.M{
		"status":     models.StatusPending,
		"created_at": bson.M{"$lt": cutoff.UTC()},
	}
	opts := options.Find().SetSort(bson.M{"created_at": 1})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, wrapStoreError("list pending reservations", err)
	}
	defer cursor.Close(ctx)

	var recs []models.Reservation
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, wrapStoreError("list pending reservations", err)
	}
	return recs, nil
}
