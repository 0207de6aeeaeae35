// File: services/booking/orchestrator.go
package booking

import (
	"context"
	"fmt"
	"math"
	"time"

	"solmar/models"

	"go.uber.org/zap"
)

// reminderLead is how long before the booking the reminder push fires.
const reminderLead = 24 * time.Hour

// Confirm runs the confirm flow for a booking session: assemble the payload,
// charge the selected gateway, persist the reservation, then best-effort
// notifications. The reservation create is issued strictly after the charge
// succeeds; there is no compensation if persistence then fails, only an
// orphan-charge marker for manual reconciliation.
func (o *DefaultBookingOrchestrator) Confirm(ctx context.Context, req ConfirmRequest) (*models.Reservation, error) {
	session, err := o.Sessions.GetSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if !session.Validated {
		return nil, ErrSessionInvalid
	}
	if session.ClientInfo == nil {
		return nil, ErrClientInfoMissing
	}

	service, err := o.Catalog.GetServiceByID(session.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("session references unknown service: %w", err)
	}

	payload, err := Assemble(*service, *session, session.ComputedPrice)
	if err != nil {
		return nil, err
	}

	gateway, ok := o.Gateways[req.Gateway]
	if !ok {
		return nil, fmt.Errorf("unsupported payment gateway: %s", req.Gateway)
	}

	acquired, err := o.Guard.Acquire(ctx, session.SessionID)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, ErrChargeInFlight
	}

	result, err := gateway.Charge(ctx, models.ChargeRequest{
		SessionID:   session.SessionID,
		AmountCents: int64(math.Round(payload.TotalPrice * 100)),
		Currency:    payload.Currency,
		Token:       req.Token,
		Description: fmt.Sprintf("%s on %s", service.Name, payload.BookingDate.Format("2006-01-02")),
		Metadata: map[string]string{
			"sessionId": session.SessionID,
			"serviceId": service.ID,
		},
	})
	if err != nil {
		// Charge failed: release the guard so the user can retry. The
		// session (form data included) is deliberately preserved.
		if relErr := o.Guard.Release(ctx, session.SessionID); relErr != nil {
			o.Logger.Error("failed to release charge guard", zap.String("session", session.SessionID), zap.Error(relErr))
		}
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	reservation, err := o.Repo.Create(ctx, payload, result.Reference)
	if err != nil {
		// The customer has been charged with no booking record. Flag it for
		// the audit sweep; reconciliation is manual.
		o.Logger.Error("reservation write failed after successful charge",
			zap.String("session", session.SessionID),
			zap.String("gateway", result.Gateway),
			zap.String("reference", result.Reference),
			zap.Error(err))
		if markErr := o.Guard.MarkOrphan(ctx, session.SessionID, result.Gateway, result.Reference); markErr != nil {
			o.Logger.Error("failed to record orphan charge", zap.String("session", session.SessionID), zap.Error(markErr))
		}
		return nil, fmt.Errorf("your payment went through but the booking could not be recorded, please contact support: %w", err)
	}

	o.notify(ctx, reservation, req.DeviceToken)

	if err := o.Sessions.CancelSession(ctx, session.SessionID); err != nil {
		o.Logger.Warn("failed to discard completed booking session", zap.String("session", session.SessionID), zap.Error(err))
	}

	o.Logger.Info("booking confirmed",
		zap.String("bookingId", reservation.ID),
		zap.String("service", reservation.ServiceID),
		zap.Float64("totalPrice", reservation.TotalPrice))
	return reservation, nil
}

// notify sends the confirmation push and queues the pre-booking reminder.
// Both are best effort; failures never unwind a confirmed booking.
func (o *DefaultBookingOrchestrator) notify(ctx context.Context, reservation *models.Reservation, deviceToken string) {
	if deviceToken == "" {
		return
	}

	data := map[string]string{
		"bookingId": reservation.ID,
		"status":    reservation.Status,
	}
	body := fmt.Sprintf("%s is booked for %s.", reservation.ServiceName, reservation.BookingDate.Format("Jan 2, 15:04"))
	if err := o.Notification.SendBookingPush(ctx, deviceToken, "Booking confirmed", body, data); err != nil {
		o.Logger.Warn("confirmation push failed", zap.String("bookingId", reservation.ID), zap.Error(err))
	}

	fireAt := reservation.BookingDate.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return
	}
	reminder := models.ReminderPayload{
		ReservationID: reservation.ID,
		DeviceToken:   deviceToken,
		ServiceName:   reservation.ServiceName,
		BookingDate:   reservation.BookingDate.Format(time.RFC3339),
	}
	if err := o.Reminders.ScheduleReminder(reminder, fireAt); err != nil {
		o.Logger.Warn("failed to schedule reminder", zap.String("bookingId", reservation.ID), zap.Error(err))
	}
}
