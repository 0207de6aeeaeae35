package models

// ChargeRequest is the gateway-neutral charge submission. Amount is in minor
// currency units; Token is the opaque single-use reference produced by the
// processor's tokenization step, so raw card data never reaches this code.
type ChargeRequest struct {
	SessionID   string            `json:"sessionId"`
	AmountCents int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Token       string            `json:"token"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	Description string            `json:"description,omitempty"`
}

// ChargeResult reports the processor's answer to a charge submission.
type ChargeResult struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference,omitempty"`
	Gateway   string `json:"gateway"`
	Error     string `json:"error,omitempty"`
}

// ReminderPayload is the queued task body for a pre-booking reminder push.
type ReminderPayload struct {
	ReservationID string `json:"reservationId"`
	DeviceToken   string `json:"deviceToken"`
	ServiceName   string `json:"serviceName"`
	BookingDate   string `json:"bookingDate"`
}
