package models

// Service type identifiers used as the discriminant across the booking pipeline.
const (
	ServiceChef     = "chef"
	ServiceKaraoke  = "karaoke"
	ServiceMassage  = "massage"
	ServiceTransfer = "airport-transfer"
	ServiceYacht    = "yacht-charter"
	ServiceGrocery  = "grocery-delivery"
)

// Service represents a bookable offering from the static catalog.
type Service struct {
	ID          string   `mapstructure:"id" json:"id"`
	Name        string   `mapstructure:"name" json:"name"`
	Type        string   `mapstructure:"type" json:"type"`
	BasePrice   float64  `mapstructure:"basePrice" json:"basePrice"`
	Currency    string   `mapstructure:"currency" json:"currency"`
	Duration    int      `mapstructure:"duration" json:"duration"` // minutes
	MinGuests   int      `mapstructure:"minGuests" json:"minGuests"`
	MaxGuests   int      `mapstructure:"maxGuests" json:"maxGuests"`
	PackageTags []string `mapstructure:"packageTags" json:"packageTags,omitempty"`
	Description string   `mapstructure:"description" json:"description,omitempty"`
}

// PickupBased reports whether a service involves a pickup location, which
// makes the host/pickup contact field mandatory at client-info time.
func (s Service) PickupBased() bool {
	return s.Type == ServiceTransfer || s.Type == ServiceGrocery
}
