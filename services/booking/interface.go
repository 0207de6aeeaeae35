package booking

import (
	"context"
	"time"

	"solmar/database/repository/reservation"
	"solmar/models"
	"solmar/services/catalog"
	"solmar/services/notification"
	"solmar/services/payment"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// BookingSessionService manages the mutable per-booking form state. It owns
// the field values, the error map and the derived computed price; it has no
// payment or persistence side effects.
type BookingSessionService interface {
	StartSession(ctx context.Context, serviceID string) (*models.BookingSession, string, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	UpdateFields(ctx context.Context, sessionID string, fields map[string]string) (*models.BookingSession, error)
	Validate(ctx context.Context, sessionID string) (*models.BookingSession, ValidationResult, error)
	AttachClientInfo(ctx context.Context, sessionID string, info models.ClientInfo) (*models.BookingSession, map[string]string, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultBookingSessionService implements BookingSessionService over Redis.
type DefaultBookingSessionService struct {
	Catalog    catalog.CatalogService
	Cache      *redis.Client
	SessionTTL time.Duration
}

// ReminderScheduler enqueues a pre-booking reminder push. Implemented by the
// asynq-backed scheduler in services/tasks.
type ReminderScheduler interface {
	ScheduleReminder(payload models.ReminderPayload, fireAt time.Time) error
}

// BookingOrchestrator runs the confirm flow: assemble, charge, persist,
// notify. The one place in the system where ordering matters: the
// reservation is created only after the gateway reports success.
type BookingOrchestrator interface {
	Confirm(ctx context.Context, req ConfirmRequest) (*models.Reservation, error)
}

// ConfirmRequest carries everything the confirm flow needs from the client.
type ConfirmRequest struct {
	SessionID   string `json:"sessionId"`
	Gateway     string `json:"gateway" binding:"required"`
	Token       string `json:"token" binding:"required"`
	DeviceToken string `json:"deviceToken,omitempty"`
}

// DefaultBookingOrchestrator implements BookingOrchestrator.
type DefaultBookingOrchestrator struct {
	Sessions     BookingSessionService
	Catalog      catalog.CatalogService
	Gateways     map[string]payment.PaymentGateway
	Guard        *payment.ChargeGuard
	Repo         reservationRepo.ReservationRepository
	Notification notification.NotificationService
	Reminders    ReminderScheduler
	Logger       *zap.Logger
}
