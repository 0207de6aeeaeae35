package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"solmar/config"
	"solmar/database"
	"solmar/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReservationRepository persists confirmed bookings. Create is invoked only
// after a successful charge; no update or delete operations belong to the
// booking pipeline.
type ReservationRepository interface {
	Create(ctx context.Context, payload models.ReservationPayload, paymentRef string) (*models.Reservation, error)
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]models.Reservation, error)
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo returns a ReservationRepository backed by MongoDB.
func NewMongoReservationRepo() ReservationRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoReservationRepo{
		coll: db.Collection("reservations"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		fmt.Printf("failed to create reservation indexes: %v\n", err)
	}
	return repo
}
