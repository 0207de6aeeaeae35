package models

// Form field names shared by every service form.
const (
	FieldDate        = "date"
	FieldTime        = "time"
	FieldGuestCount  = "guestCount"
	FieldPersonCount = "personCount"
	FieldChefType    = "chefType"
	FieldNeedsScreen = "needsScreen"
	FieldSetupType   = "setupType"
	FieldAroma       = "aromatherapy"
	FieldPickupZone  = "pickupZone"
	FieldDestZone    = "destinationZone"
	FieldRoundTrip   = "roundTrip"
	FieldDuration    = "durationTier"
	FieldBasketSize  = "basketSize"
	FieldNotes       = "notes"
)

// Chef tier options.
const (
	ChefRegular      = "regular"
	ChefProfessional = "professional"
)

// Karaoke setup options.
const (
	SetupIndoor  = "indoor"
	SetupOutdoor = "outdoor"
)

// Yacht duration tiers.
const (
	DurationHalfDay = "half-day"
	DurationFullDay = "full-day"
)

// Grocery basket tiers.
const (
	BasketSmall  = "small"
	BasketMedium = "medium"
	BasketLarge  = "large"
)

// ChefFormData carries the chef-service selections.
type ChefFormData struct {
	ChefType   string `json:"chefType" bson:"chefType"`
	GuestCount int    `json:"guestCount" bson:"guestCount"`
}

// KaraokeFormData carries the karaoke-night selections.
type KaraokeFormData struct {
	GuestCount  int    `json:"guestCount" bson:"guestCount"`
	NeedsScreen bool   `json:"needsScreen" bson:"needsScreen"`
	SetupType   string `json:"setupType" bson:"setupType"`
}

// MassageFormData carries the massage selections.
type MassageFormData struct {
	PersonCount  int  `json:"personCount" bson:"personCount"`
	Aromatherapy bool `json:"aromatherapy" bson:"aromatherapy"`
}

// TransferFormData carries the airport-transfer selections.
type TransferFormData struct {
	PickupZone      string `json:"pickupZone" bson:"pickupZone"`
	DestinationZone string `json:"destinationZone" bson:"destinationZone"`
	RoundTrip       bool   `json:"roundTrip" bson:"roundTrip"`
	PassengerCount  int    `json:"passengerCount" bson:"passengerCount"`
}

// YachtFormData carries the yacht-charter selections.
type YachtFormData struct {
	DurationTier string `json:"durationTier" bson:"durationTier"`
	GuestCount   int    `json:"guestCount" bson:"guestCount"`
}

// GroceryFormData carries the grocery-delivery selections.
type GroceryFormData struct {
	BasketSize string `json:"basketSize" bson:"basketSize"`
}

// ServiceFormData is the tagged union of per-service selections. Exactly one
// variant is populated, matching ServiceType; the persistence layer flattens
// it into the reservation record so the store needs no per-service schema.
type ServiceFormData struct {
	ServiceType string            `json:"serviceType" bson:"serviceType"`
	Chef        *ChefFormData     `json:"chef,omitempty" bson:"chef,omitempty"`
	Karaoke     *KaraokeFormData  `json:"karaoke,omitempty" bson:"karaoke,omitempty"`
	Massage     *MassageFormData  `json:"massage,omitempty" bson:"massage,omitempty"`
	Transfer    *TransferFormData `json:"transfer,omitempty" bson:"transfer,omitempty"`
	Yacht       *YachtFormData    `json:"yacht,omitempty" bson:"yacht,omitempty"`
	Grocery     *GroceryFormData  `json:"grocery,omitempty" bson:"grocery,omitempty"`
}

// Flatten renders the populated variant as a flat string-keyed bag for the
// reservation record.
func (f ServiceFormData) Flatten() map[string]interface{} {
	bag := map[string]interface{}{"serviceType": f.ServiceType}
	switch {
	case f.Chef != nil:
		bag[FieldChefType] = f.Chef.ChefType
		bag[FieldGuestCount] = f.Chef.GuestCount
	case f.Karaoke != nil:
		bag[FieldGuestCount] = f.Karaoke.GuestCount
		bag[FieldNeedsScreen] = f.Karaoke.NeedsScreen
		bag[FieldSetupType] = f.Karaoke.SetupType
	case f.Massage != nil:
		bag[FieldPersonCount] = f.Massage.PersonCount
		bag[FieldAroma] = f.Massage.Aromatherapy
	case f.Transfer != nil:
		bag[FieldPickupZone] = f.Transfer.PickupZone
		bag[FieldDestZone] = f.Transfer.DestinationZone
		bag[FieldRoundTrip] = f.Transfer.RoundTrip
		bag["passengerCount"] = f.Transfer.PassengerCount
	case f.Yacht != nil:
		bag[FieldDuration] = f.Yacht.DurationTier
		bag[FieldGuestCount] = f.Yacht.GuestCount
	case f.Grocery != nil:
		bag[FieldBasketSize] = f.Grocery.BasketSize
	}
	return bag
}
