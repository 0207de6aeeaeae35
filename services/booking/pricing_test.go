package booking

import (
	"fmt"
	"testing"

	"solmar/models"

	"github.com/stretchr/testify/assert"
)

func chefService() models.Service {
	return models.Service{
		ID:        "private-chef",
		Name:      "Private Chef Experience",
		Type:      models.ServiceChef,
		BasePrice: 120,
		Currency:  "USD",
		MinGuests: 1,
		MaxGuests: 20,
	}
}

func TestCalculateChefPrice_RegularSmallGroup(t *testing.T) {
	total := CalculateChefPrice(120, models.ChefRegular, 4)
	assert.Equal(t, 120.0, total)
}

func TestCalculateChefPrice_ProfessionalMediumGroup(t *testing.T) {
	// professional fee + medium band surcharge
	total := CalculateChefPrice(120, models.ChefProfessional, 12)
	assert.Equal(t, 205.0, total)
}

func TestCalculateChefPrice_LargeGroup(t *testing.T) {
	total := CalculateChefPrice(120, models.ChefRegular, 16)
	assert.Equal(t, 120.0+ChefLargeGroupFee, total)
}

func TestCalculateChefPrice_MonotonicInGuestCount(t *testing.T) {
	prev := 0.0
	for guests := 1; guests <= 20; guests++ {
		total := CalculateChefPrice(120, models.ChefProfessional, guests)
		assert.GreaterOrEqual(t, total, prev, "price dropped at %d guests", guests)
		assert.GreaterOrEqual(t, total, 0.0)
		prev = total
	}
}

func TestCalculateKaraokePrice(t *testing.T) {
	base := 150.0

	assert.Equal(t, base, CalculateKaraokePrice(base, false, models.SetupIndoor))
	assert.Equal(t, base+KaraokeScreenRentalFee, CalculateKaraokePrice(base, true, models.SetupIndoor))
	assert.Equal(t, base+KaraokeOutdoorSetupFee, CalculateKaraokePrice(base, false, models.SetupOutdoor))
	assert.Equal(t, base+KaraokeScreenRentalFee+KaraokeOutdoorSetupFee,
		CalculateKaraokePrice(base, true, models.SetupOutdoor))
}

func TestCalculateMassagePrice(t *testing.T) {
	assert.Equal(t, 200.0, CalculateMassagePrice(100, 2, false))
	assert.Equal(t, 240.0, CalculateMassagePrice(100, 2, true))
	// Zero persons price as one; validation rejects them before submission.
	assert.Equal(t, 100.0, CalculateMassagePrice(100, 0, false))
}

func TestCalculateTransferPrice(t *testing.T) {
	oneWay := CalculateTransferPrice("airport", "bavaro", false, false)
	assert.Equal(t, 45.0, oneWay)

	// Routes are symmetric.
	assert.Equal(t, oneWay, CalculateTransferPrice("bavaro", "airport", false, false))

	assert.Equal(t, 81.0, CalculateTransferPrice("airport", "bavaro", true, false))
	assert.Equal(t, 65.0, CalculateTransferPrice("airport", "bavaro", false, true))

	// Unknown zone pairs price as zero and are caught by validation.
	assert.Equal(t, 0.0, CalculateTransferPrice("airport", "atlantis", false, false))
}

func TestCalculateYachtPrice(t *testing.T) {
	assert.Equal(t, 900.0, CalculateYachtPrice(900, models.DurationHalfDay, 4))
	assert.Equal(t, 1620.0, CalculateYachtPrice(900, models.DurationFullDay, 4))
	assert.Equal(t, 900.0+YachtCrewFee, CalculateYachtPrice(900, models.DurationHalfDay, 9))
}

func TestCalculateGroceryPrice(t *testing.T) {
	assert.Equal(t, 20.0+GrocerySmallBasketFee, CalculateGroceryPrice(20, models.BasketSmall))
	assert.Equal(t, 20.0+GroceryMediumBasketFee, CalculateGroceryPrice(20, models.BasketMedium))
	assert.Equal(t, 20.0+GroceryLargeBasketFee, CalculateGroceryPrice(20, models.BasketLarge))
}

func TestCalculatePrice_DispatchMatchesCalculators(t *testing.T) {
	fields := map[string]string{
		models.FieldChefType:   models.ChefProfessional,
		models.FieldGuestCount: "12",
	}
	assert.Equal(t,
		CalculateChefPrice(120, models.ChefProfessional, 12),
		CalculatePrice(chefService(), fields))

	karaoke := models.Service{ID: "karaoke-night", Type: models.ServiceKaraoke, BasePrice: 150}
	fields = map[string]string{
		models.FieldNeedsScreen: "true",
		models.FieldSetupType:   models.SetupOutdoor,
	}
	assert.Equal(t,
		CalculateKaraokePrice(150, true, models.SetupOutdoor),
		CalculatePrice(karaoke, fields))
}

func TestCalculatePrice_IgnoresUnrecognizedFields(t *testing.T) {
	fields := map[string]string{
		models.FieldGuestCount: "4",
		"favoriteColor":        "teal",
	}
	assert.Equal(t, 120.0, CalculatePrice(chefService(), fields))
}

func TestCalculatePrice_NeverNegative(t *testing.T) {
	services := []models.Service{
		chefService(),
		{Type: models.ServiceKaraoke, BasePrice: 150},
		{Type: models.ServiceMassage, BasePrice: 100},
		{Type: models.ServiceTransfer},
		{Type: models.ServiceYacht, BasePrice: 900},
		{Type: models.ServiceGrocery, BasePrice: 20},
	}
	edgeFields := []map[string]string{
		nil,
		{},
		{models.FieldGuestCount: "-5", models.FieldPersonCount: "-5"},
		{models.FieldGuestCount: "not-a-number"},
	}
	for _, svc := range services {
		for i, fields := range edgeFields {
			price := CalculatePrice(svc, fields)
			assert.GreaterOrEqual(t, price, 0.0,
				fmt.Sprintf("service %s, field set %d", svc.Type, i))
		}
	}
}
