package booking

import (
	"fmt"

	"solmar/models"
)

// ErrSessionNotValidated guards Assemble against being called on a session
// that has not passed validation. Hitting it is a wiring bug in the caller,
// not a user-facing failure mode.
var ErrSessionNotValidated = fmt.Errorf("booking session has not passed validation")

// Assemble builds the immutable reservation payload from a validated session.
func Assemble(service models.Service, session models.BookingSession, computedPrice float64) (models.ReservationPayload, error) {
	if !session.Validated {
		return models.ReservationPayload{}, ErrSessionNotValidated
	}
	if session.ServiceID != service.ID {
		return models.ReservationPayload{}, fmt.Errorf("session %s does not belong to service %s", session.SessionID, service.ID)
	}

	bookingAt, err := combineDateTime(session.Fields[models.FieldDate], session.Fields[models.FieldTime])
	if err != nil {
		// Validation guarantees a parseable date; reaching this is a bug.
		return models.ReservationPayload{}, fmt.Errorf("session %s has unparseable date despite validation: %w", session.SessionID, err)
	}

	return models.ReservationPayload{
		Service:     service,
		TotalPrice:  computedPrice,
		Currency:    service.Currency,
		FormData:    buildFormData(service, session.Fields),
		BookingDate: bookingAt,
		ClientInfo:  session.ClientInfo,
		Notes:       session.Fields[models.FieldNotes],
	}, nil
}

// buildFormData converts the raw field map into the typed per-service
// variant. Unrecognized fields are dropped here; they were already ignored
// by pricing and validation.
func buildFormData(service models.Service, fields map[string]string) models.ServiceFormData {
	data := models.ServiceFormData{ServiceType: service.Type}
	switch service.Type {
	case models.ServiceChef:
		data.Chef = &models.ChefFormData{
			ChefType:   fields[models.FieldChefType],
			GuestCount: fieldInt(fields, models.FieldGuestCount),
		}
	case models.ServiceKaraoke:
		data.Karaoke = &models.KaraokeFormData{
			GuestCount:  fieldInt(fields, models.FieldGuestCount),
			NeedsScreen: fieldBool(fields, models.FieldNeedsScreen),
			SetupType:   fields[models.FieldSetupType],
		}
	case models.ServiceMassage:
		data.Massage = &models.MassageFormData{
			PersonCount:  fieldInt(fields, models.FieldPersonCount),
			Aromatherapy: fieldBool(fields, models.FieldAroma),
		}
	case models.ServiceTransfer:
		data.Transfer = &models.TransferFormData{
			PickupZone:      fields[models.FieldPickupZone],
			DestinationZone: fields[models.FieldDestZone],
			RoundTrip:       fieldBool(fields, models.FieldRoundTrip),
			PassengerCount:  fieldInt(fields, "passengerCount"),
		}
	case models.ServiceYacht:
		data.Yacht = &models.YachtFormData{
			DurationTier: fields[models.FieldDuration],
			GuestCount:   fieldInt(fields, models.FieldGuestCount),
		}
	case models.ServiceGrocery:
		data.Grocery = &models.GroceryFormData{
			BasketSize: fields[models.FieldBasketSize],
		}
	}
	return data
}
