// File: services/booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"

	"solmar/models"
	"solmar/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// StartSession creates a new booking session for a catalog service, assigns
// it a unique SessionID, stores it in Redis and returns it together with the
// JWT session token that guards subsequent mutations.
func (s *DefaultBookingSessionService) StartSession(ctx context.Context, serviceID string) (*models.BookingSession, string, error) {
	service, err := s.Catalog.GetServiceByID(serviceID)
	if err != nil {
		return nil, "", fmt.Errorf("cannot start booking session: %w", err)
	}

	session := models.BookingSession{
		SessionID:     uuid.New().String(),
		ServiceID:     service.ID,
		Fields:        map[string]string{},
		Errors:        map[string]string{},
		ComputedPrice: CalculatePrice(*service, nil),
	}

	if err := s.save(ctx, &session); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateSessionToken(session.SessionID, s.SessionTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}
	return &session, token, nil
}

// GetSession retrieves a session from Redis.
func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Cache.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

// UpdateFields applies field changes: values are set, any existing error for
// a changed field is cleared (errors reappear only on the next Validate),
// and the computed price is rederived. Applying the same value twice leaves
// the session unchanged.
func (s *DefaultBookingSessionService) UpdateFields(ctx context.Context, sessionID string, fields map[string]string) (*models.BookingSession, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	service, err := s.Catalog.GetServiceByID(session.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("session references unknown service: %w", err)
	}

	for name, value := range fields {
		session.Fields[name] = value
		delete(session.Errors, name)
		delete(session.Warnings, name)
	}
	// Any change invalidates the previous validation pass.
	session.Validated = false
	session.ComputedPrice = CalculatePrice(*service, session.Fields)

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Validate runs the full rule set and stores the result on the session. The
// session's Validated flag is set only when the error map comes back empty.
func (s *DefaultBookingSessionService) Validate(ctx context.Context, sessionID string) (*models.BookingSession, ValidationResult, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, ValidationResult{}, err
	}
	service, err := s.Catalog.GetServiceByID(session.ServiceID)
	if err != nil {
		return nil, ValidationResult{}, fmt.Errorf("session references unknown service: %w", err)
	}

	result := ValidateFields(*service, session.Fields)
	session.Errors = result.Errors
	session.Warnings = result.Warnings
	session.Validated = result.Valid()

	if err := s.save(ctx, session); err != nil {
		return nil, ValidationResult{}, err
	}
	return session, result, nil
}

// AttachClientInfo validates and stores the contact details collected before
// payment. The returned map carries field errors when the details are
// rejected; the session is only written when it is empty.
func (s *DefaultBookingSessionService) AttachClientInfo(ctx context.Context, sessionID string, info models.ClientInfo) (*models.BookingSession, map[string]string, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	service, err := s.Catalog.GetServiceByID(session.ServiceID)
	if err != nil {
		return nil, nil, fmt.Errorf("session references unknown service: %w", err)
	}

	if errs := ValidateClientInfo(*service, info); len(errs) > 0 {
		return session, errs, nil
	}

	session.ClientInfo = &info
	if err := s.save(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, nil, nil
}

// CancelSession discards an in-progress booking session.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) save(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(session.SessionID), data, s.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return "booking:session:" + sessionID
}
