package booking

import "errors"

var (
	// ErrSessionNotFound covers both expired and never-created sessions.
	ErrSessionNotFound = errors.New("booking session not found or expired")
	// ErrSessionInvalid means validation has failing rules; the error map on
	// the session carries the detail.
	ErrSessionInvalid = errors.New("booking form has validation errors")
	// ErrClientInfoMissing means confirmation was attempted before contact
	// details were attached.
	ErrClientInfoMissing = errors.New("client contact details are required before payment")
	// ErrChargeInFlight means a charge submission for this session is
	// already being processed.
	ErrChargeInFlight = errors.New("a payment for this booking is already being processed")
)
