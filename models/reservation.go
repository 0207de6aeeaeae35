package models

import "time"

// Reservation statuses. Only StatusPending is assigned by this pipeline;
// later transitions belong to back-office tooling.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ReservationPayload is the assembled, validated submission built from a
// booking session at submit time. Immutable after assembly except for
// ClientInfo, which is attached once contact details are collected.
type ReservationPayload struct {
	Service     Service         `json:"service"`
	TotalPrice  float64         `json:"totalPrice"`
	Currency    string          `json:"currency"`
	FormData    ServiceFormData `json:"formData"`
	BookingDate time.Time       `json:"bookingDate"`
	ClientInfo  *ClientInfo     `json:"clientInfo,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// Reservation is the durable booking record. The ID is assigned at
// persistence time; the record is created exactly once per successful charge
// and never deleted by this pipeline.
type Reservation struct {
	ID               string                 `bson:"id" json:"bookingId"`
	ServiceID        string                 `bson:"service_id" json:"serviceId"`
	ServiceName      string                 `bson:"service_name" json:"serviceName"`
	BookingDate      time.Time              `bson:"booking_date" json:"bookingDate"`
	Status           string                 `bson:"status" json:"status"`
	TotalPrice       float64                `bson:"total_price" json:"totalPrice"`
	Currency         string                 `bson:"currency" json:"currency"`
	ClientName       string                 `bson:"client_name" json:"clientName"`
	ClientEmail      string                 `bson:"client_email" json:"clientEmail"`
	ClientPhone      string                 `bson:"client_phone" json:"clientPhone"`
	HostContact      string                 `bson:"host_contact,omitempty" json:"hostContact,omitempty"`
	FormData         map[string]interface{} `bson:"form_data" json:"formData"`
	PaymentReference string                 `bson:"payment_reference" json:"paymentReference"`
	Notes            string                 `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt        time.Time              `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time              `bson:"updated_at" json:"updatedAt"`
}
