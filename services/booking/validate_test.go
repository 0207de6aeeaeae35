package booking

import (
	"testing"
	"time"

	"solmar/models"

	"github.com/stretchr/testify/assert"
)

func karaokeService() models.Service {
	return models.Service{
		ID:        "karaoke-night",
		Type:      models.ServiceKaraoke,
		BasePrice: 150,
		MinGuests: 1,
		MaxGuests: 40,
	}
}

func transferService() models.Service {
	return models.Service{
		ID:        "airport-transfer",
		Type:      models.ServiceTransfer,
		MinGuests: 1,
		MaxGuests: 8,
	}
}

// fixedNow keeps the future-date rules deterministic.
var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

func futureDate(days int) string {
	return fixedNow.AddDate(0, 0, days).Format(dateLayout)
}

func TestValidate_ChefValidForm(t *testing.T) {
	fields := map[string]string{
		models.FieldDate:       futureDate(7),
		models.FieldTime:       "19:00",
		models.FieldChefType:   models.ChefRegular,
		models.FieldGuestCount: "4",
	}
	res := validateFieldsAt(chefService(), fields, fixedNow)
	assert.True(t, res.Valid())
	assert.Empty(t, res.Errors)
}

func TestValidate_ChefGuestCountAboveMax(t *testing.T) {
	fields := map[string]string{
		models.FieldDate:       futureDate(7),
		models.FieldGuestCount: "21",
	}
	res := validateFieldsAt(chefService(), fields, fixedNow)
	assert.False(t, res.Valid())
	assert.Equal(t, "max 20 exceeded", res.Errors[models.FieldGuestCount])
}

func TestValidate_ChefGuestCountBelowMin(t *testing.T) {
	fields := map[string]string{
		models.FieldDate:       futureDate(7),
		models.FieldGuestCount: "0",
	}
	res := validateFieldsAt(chefService(), fields, fixedNow)
	assert.Equal(t, "min 1 required", res.Errors[models.FieldGuestCount])
}

func TestValidate_MissingDate(t *testing.T) {
	fields := map[string]string{
		models.FieldGuestCount: "4",
	}
	res := validateFieldsAt(chefService(), fields, fixedNow)
	assert.Equal(t, "required", res.Errors[models.FieldDate])
}

func TestValidate_PastDate(t *testing.T) {
	fields := map[string]string{
		models.FieldDate:       "2026-03-09",
		models.FieldGuestCount: "4",
	}
	res := validateFieldsAt(chefService(), fields, fixedNow)
	assert.Equal(t, "date must be in the future", res.Errors[models.FieldDate])
}

func TestValidate_UnparseableDate(t *testing.T) {
	fields := map[string]string{
		models.FieldDate:       "next tuesday",
		models.FieldGuestCount: "4",
	}
	res := validateFieldsAt(chefService(), fields, fixedNow)
	assert.Equal(t, "invalid date", res.Errors[models.FieldDate])
}

func TestValidate_KaraokeSameDayIsWarningNotError(t *testing.T) {
	fields := map[string]string{
		models.FieldDate:       fixedNow.Format(dateLayout),
		models.FieldTime:       "20:00",
		models.FieldGuestCount: "10",
	}
	res := validateFieldsAt(karaokeService(), fields, fixedNow)
	assert.True(t, res.Valid())
	assert.Equal(t, warnSameDayBooking, res.Warnings[models.FieldDate])
}

func TestValidate_KaraokeTomorrowInsideBufferIsHardError(t *testing.T) {
	// Tomorrow morning is under 24h away but not same-day.
	fields := map[string]string{
		models.FieldDate:       futureDate(1),
		models.FieldTime:       "09:00",
		models.FieldGuestCount: "10",
	}
	res := validateFieldsAt(karaokeService(), fields, fixedNow)
	assert.False(t, res.Valid())
	assert.Equal(t, "karaoke bookings require 24 hours notice", res.Errors[models.FieldDate])
	assert.Empty(t, res.Warnings)
}

func TestValidate_KaraokeOutsideBufferIsClean(t *testing.T) {
	fields := map[string]string{
		models.FieldDate:       futureDate(3),
		models.FieldTime:       "20:00",
		models.FieldGuestCount: "10",
	}
	res := validateFieldsAt(karaokeService(), fields, fixedNow)
	assert.True(t, res.Valid())
	assert.Empty(t, res.Warnings)
}

func TestValidate_TransferRequiresBothZones(t *testing.T) {
	fields := map[string]string{
		models.FieldDate:       futureDate(5),
		models.FieldPickupZone: "airport",
	}
	res := validateFieldsAt(transferService(), fields, fixedNow)
	assert.Equal(t, "required", res.Errors[models.FieldDestZone])
	assert.NotContains(t, res.Errors, models.FieldPickupZone)
}

func TestValidate_TransferUnknownRoute(t *testing.T) {
	fields := map[string]string{
		models.FieldDate:       futureDate(5),
		models.FieldPickupZone: "airport",
		models.FieldDestZone:   "atlantis",
	}
	res := validateFieldsAt(transferService(), fields, fixedNow)
	assert.Equal(t, "no fixed route between the selected zones", res.Errors[models.FieldDestZone])
}

func TestValidate_YachtRequiresDurationTier(t *testing.T) {
	yacht := models.Service{ID: "yacht-charter", Type: models.ServiceYacht, MinGuests: 1, MaxGuests: 15}
	fields := map[string]string{
		models.FieldDate:       futureDate(5),
		models.FieldGuestCount: "6",
	}
	res := validateFieldsAt(yacht, fields, fixedNow)
	assert.Equal(t, "required", res.Errors[models.FieldDuration])
}

func TestValidateClientInfo(t *testing.T) {
	svc := chefService()

	errs := ValidateClientInfo(svc, models.ClientInfo{
		Name:  "Maria Alvarez",
		Email: "maria@example.com",
		Phone: "+1 (809) 555-0134",
	})
	assert.Empty(t, errs)

	errs = ValidateClientInfo(svc, models.ClientInfo{})
	assert.Equal(t, "required", errs["name"])
	assert.Equal(t, "required", errs["email"])
	assert.Equal(t, "required", errs["phone"])

	errs = ValidateClientInfo(svc, models.ClientInfo{
		Name:  "Maria",
		Email: "not-an-email",
		Phone: "555-01",
	})
	assert.Equal(t, "invalid email address", errs["email"])
	assert.Equal(t, "phone number is too short", errs["phone"])
}

func TestValidateClientInfo_HostContactRequiredForPickupServices(t *testing.T) {
	info := models.ClientInfo{
		Name:  "Maria Alvarez",
		Email: "maria@example.com",
		Phone: "+18095550134",
	}

	errs := ValidateClientInfo(transferService(), info)
	assert.Equal(t, "required for pickup services", errs["hostContact"])

	info.HostContact = "Villa Sol front desk, ask for Pedro"
	errs = ValidateClientInfo(transferService(), info)
	assert.Empty(t, errs)

	// Non-pickup services never require it.
	errs = ValidateClientInfo(chefService(), models.ClientInfo{
		Name: "Maria", Email: "maria@example.com", Phone: "+18095550134",
	})
	assert.Empty(t, errs)
}
