package models

// BookingSession holds the mutable form state for one in-progress booking.
// It lives in Redis between the first field change and confirmation.
type BookingSession struct {
	SessionID     string            `json:"sessionId"`
	ServiceID     string            `json:"serviceId"`
	Fields        map[string]string `json:"fields"`
	Errors        map[string]string `json:"errors"`
	Warnings      map[string]string `json:"warnings,omitempty"`
	ComputedPrice float64           `json:"computedPrice"`
	Validated     bool              `json:"validated"`
	ClientInfo    *ClientInfo       `json:"clientInfo,omitempty"`
}

// ClientInfo carries the contact details collected before payment.
type ClientInfo struct {
	Name        string `json:"name" bson:"name" binding:"required"`
	Email       string `json:"email" bson:"email" binding:"required"`
	Phone       string `json:"phone" bson:"phone" binding:"required"`
	HostContact string `json:"hostContact,omitempty" bson:"host_contact,omitempty"`
}
