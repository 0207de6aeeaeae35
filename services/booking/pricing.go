package booking

import (
	"math"

	"solmar/models"
)

// Surcharge tables. Amounts are in the catalog currency; thresholds are
// documented service policy.
const (
	ChefProfessionalFee   = 55.0
	ChefMediumGroupFee    = 30.0 // applies above 10 guests
	ChefLargeGroupFee     = 60.0 // applies above 15 guests
	ChefMediumGroupGuests = 10
	ChefLargeGroupGuests  = 15

	KaraokeScreenRentalFee = 40.0
	KaraokeOutdoorSetupFee = 60.0

	MassageAromatherapyFee = 20.0 // per person

	TransferRoundTripFactor = 1.8
	TransferNightPickupFee  = 20.0

	YachtFullDayFactor = 1.8
	YachtCrewFee       = 150.0
	YachtCrewFeeGuests = 8

	GrocerySmallBasketFee  = 30.0
	GroceryMediumBasketFee = 50.0
	GroceryLargeBasketFee  = 75.0
)

// transferRoutes is the fixed-route price table keyed pickup|destination.
// Routes are symmetric; lookupRoute tries both directions.
var transferRoutes = map[[2]string]float64{
	{"airport", "bavaro"}:     45,
	{"airport", "cap-cana"}:   60,
	{"airport", "uvero-alto"}: 80,
	{"airport", "macao"}:      70,
	{"bavaro", "cap-cana"}:    35,
	{"bavaro", "macao"}:       40,
}

func lookupRoute(pickup, dest string) (float64, bool) {
	if price, ok := transferRoutes[[2]string{pickup, dest}]; ok {
		return price, true
	}
	price, ok := transferRoutes[[2]string{dest, pickup}]
	return price, ok
}

// roundToCents applies two-decimal currency semantics (half up).
func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalculateChefPrice computes a chef booking total: base price, a flat fee
// for the professional tier, and a tiered group surcharge. Guest counts past
// the documented maximum are priced at the large band; validation rejects
// them before the price is treated as final.
func CalculateChefPrice(basePrice float64, chefType string, guestCount int) float64 {
	total := basePrice
	if chefType == models.ChefProfessional {
		total += ChefProfessionalFee
	}
	if guestCount > ChefLargeGroupGuests {
		total += ChefLargeGroupFee
	} else if guestCount > ChefMediumGroupGuests {
		total += ChefMediumGroupFee
	}
	return roundToCents(total)
}

// CalculateKaraokePrice computes a karaoke booking total. Screen rental and
// outdoor setup are independently toggled flat fees.
func CalculateKaraokePrice(basePrice float64, needsScreen bool, setupType string) float64 {
	total := basePrice
	if needsScreen {
		total += KaraokeScreenRentalFee
	}
	if setupType == models.SetupOutdoor {
		total += KaraokeOutdoorSetupFee
	}
	return roundToCents(total)
}

// CalculateMassagePrice computes a massage total as per-person pricing with
// an optional per-person aromatherapy upgrade. Counts below one price as one.
func CalculateMassagePrice(basePrice float64, personCount int, aromatherapy bool) float64 {
	if personCount < 1 {
		personCount = 1
	}
	perPerson := basePrice
	if aromatherapy {
		perPerson += MassageAromatherapyFee
	}
	return roundToCents(perPerson * float64(personCount))
}

// CalculateTransferPrice computes a fixed-route transfer total. Unknown zone
// pairs price as zero; validation rejects them before submission. nightPickup
// covers pickups between 22:00 and 06:00.
func CalculateTransferPrice(pickupZone, destZone string, roundTrip, nightPickup bool) float64 {
	route, ok := lookupRoute(pickupZone, destZone)
	if !ok {
		return 0
	}
	total := route
	if roundTrip {
		total *= TransferRoundTripFactor
	}
	if nightPickup {
		total += TransferNightPickupFee
	}
	return roundToCents(total)
}

// CalculateYachtPrice computes a yacht charter total from the duration tier
// plus a crew fee for larger groups.
func CalculateYachtPrice(basePrice float64, durationTier string, guestCount int) float64 {
	total := basePrice
	if durationTier == models.DurationFullDay {
		total = basePrice * YachtFullDayFactor
	}
	if guestCount > YachtCrewFeeGuests {
		total += YachtCrewFee
	}
	return roundToCents(total)
}

// CalculateGroceryPrice computes a grocery delivery total: base delivery fee
// plus the basket tier fee.
func CalculateGroceryPrice(basePrice float64, basketSize string) float64 {
	total := basePrice
	switch basketSize {
	case models.BasketMedium:
		total += GroceryMediumBasketFee
	case models.BasketLarge:
		total += GroceryLargeBasketFee
	default:
		total += GrocerySmallBasketFee
	}
	return roundToCents(total)
}

// CalculatePrice dispatches on the service type and the current form fields.
// Pure computation, safe to run on every field change; edge inputs price
// permissively and are rejected by validation before submission.
func CalculatePrice(service models.Service, fields map[string]string) float64 {
	switch service.Type {
	case models.ServiceChef:
		return CalculateChefPrice(service.BasePrice, fields[models.FieldChefType], fieldInt(fields, models.FieldGuestCount))
	case models.ServiceKaraoke:
		return CalculateKaraokePrice(service.BasePrice, fieldBool(fields, models.FieldNeedsScreen), fields[models.FieldSetupType])
	case models.ServiceMassage:
		return CalculateMassagePrice(service.BasePrice, fieldInt(fields, models.FieldPersonCount), fieldBool(fields, models.FieldAroma))
	case models.ServiceTransfer:
		return CalculateTransferPrice(
			fields[models.FieldPickupZone],
			fields[models.FieldDestZone],
			fieldBool(fields, models.FieldRoundTrip),
			isNightPickup(fields[models.FieldTime]),
		)
	case models.ServiceYacht:
		return CalculateYachtPrice(service.BasePrice, fields[models.FieldDuration], fieldInt(fields, models.FieldGuestCount))
	case models.ServiceGrocery:
		return CalculateGroceryPrice(service.BasePrice, fields[models.FieldBasketSize])
	default:
		return roundToCents(service.BasePrice)
	}
}
