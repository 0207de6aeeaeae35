package booking

import (
	"regexp"
	"strings"

	"solmar/models"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Loose international format: optional +, digits with common separators.
	phonePattern = regexp.MustCompile(`^\+?[0-9()\-.\s]+$`)
	digitPattern = regexp.MustCompile(`[0-9]`)
)

const minPhoneDigits = 8

// ValidateClientInfo checks the contact details collected before payment.
// The host/pickup contact is mandatory for pickup-based services.
func ValidateClientInfo(service models.Service, info models.ClientInfo) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(info.Name) == "" {
		errs["name"] = "required"
	}

	email := strings.TrimSpace(info.Email)
	if email == "" {
		errs["email"] = "required"
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "invalid email address"
	}

	phone := strings.TrimSpace(info.Phone)
	switch {
	case phone == "":
		errs["phone"] = "required"
	case !phonePattern.MatchString(phone):
		errs["phone"] = "invalid phone number"
	case len(digitPattern.FindAllString(phone, -1)) < minPhoneDigits:
		errs["phone"] = "phone number is too short"
	}

	if service.PickupBased() && strings.TrimSpace(info.HostContact) == "" {
		errs["hostContact"] = "required for pickup services"
	}

	return errs
}
