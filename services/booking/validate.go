package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"solmar/models"
)

// karaokeLeadTime is the minimum buffer before a karaoke setup crew can be
// dispatched. Bookings inside the buffer are only allowed for the current
// calendar day, and then only with a same-day warning.
const karaokeLeadTime = 24 * time.Hour

const warnSameDayBooking = "same-day booking: setup crew availability is not guaranteed"

// ValidationResult carries the per-field error map plus non-blocking warnings.
// An empty Errors map means the form may be submitted.
type ValidationResult struct {
	Errors   map[string]string `json:"errors"`
	Warnings map[string]string `json:"warnings,omitempty"`
}

// Valid reports whether submission may proceed.
func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// ValidateFields applies the per-field and cross-field rules for the given
// service to the current form fields.
func ValidateFields(service models.Service, fields map[string]string) ValidationResult {
	return validateFieldsAt(service, fields, time.Now())
}

func validateFieldsAt(service models.Service, fields map[string]string, now time.Time) ValidationResult {
	res := ValidationResult{
		Errors:   map[string]string{},
		Warnings: map[string]string{},
	}

	bookingAt := validateDate(fields, now, &res)

	switch service.Type {
	case models.ServiceChef:
		validateCount(models.FieldGuestCount, fields, service.MinGuests, service.MaxGuests, &res)
		if t := fields[models.FieldChefType]; t != "" && t != models.ChefRegular && t != models.ChefProfessional {
			res.Errors[models.FieldChefType] = "unknown chef tier"
		}
	case models.ServiceKaraoke:
		validateCount(models.FieldGuestCount, fields, service.MinGuests, service.MaxGuests, &res)
		validateKaraokeLeadTime(bookingAt, now, &res)
	case models.ServiceMassage:
		validateCount(models.FieldPersonCount, fields, service.MinGuests, service.MaxGuests, &res)
	case models.ServiceTransfer:
		validateTransferZones(fields, &res)
	case models.ServiceYacht:
		validateCount(models.FieldGuestCount, fields, service.MinGuests, service.MaxGuests, &res)
		if tier := fields[models.FieldDuration]; tier != models.DurationHalfDay && tier != models.DurationFullDay {
			res.Errors[models.FieldDuration] = "required"
		}
	case models.ServiceGrocery:
		switch fields[models.FieldBasketSize] {
		case models.BasketSmall, models.BasketMedium, models.BasketLarge:
		default:
			res.Errors[models.FieldBasketSize] = "required"
		}
	}

	return res
}

// validateDate checks presence, format and the date-in-the-future rule, and
// returns the parsed booking timestamp for cross-field rules.
func validateDate(fields map[string]string, now time.Time, res *ValidationResult) time.Time {
	dateStr := strings.TrimSpace(fields[models.FieldDate])
	if dateStr == "" {
		res.Errors[models.FieldDate] = "required"
		return time.Time{}
	}
	bookingAt, err := combineDateTime(dateStr, fields[models.FieldTime])
	if err != nil {
		res.Errors[models.FieldDate] = "invalid date"
		return time.Time{}
	}
	// A booking for today is in the future as long as the day has not ended.
	endOfDay := time.Date(bookingAt.Year(), bookingAt.Month(), bookingAt.Day(), 23, 59, 59, 0, bookingAt.Location())
	if endOfDay.Before(now) {
		res.Errors[models.FieldDate] = "date must be in the future"
		return time.Time{}
	}
	return bookingAt
}

// validateCount checks a numeric count field against the service band.
func validateCount(field string, fields map[string]string, min, max int, res *ValidationResult) {
	raw := strings.TrimSpace(fields[field])
	if raw == "" {
		res.Errors[field] = "required"
		return
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		res.Errors[field] = "must be a whole number"
		return
	}
	if n < min {
		res.Errors[field] = fmt.Sprintf("min %d required", min)
		return
	}
	if n > max {
		res.Errors[field] = fmt.Sprintf("max %d exceeded", max)
	}
}

// validateTransferZones enforces the pickup/destination cross-field rule.
func validateTransferZones(fields map[string]string, res *ValidationResult) {
	pickup := strings.TrimSpace(fields[models.FieldPickupZone])
	dest := strings.TrimSpace(fields[models.FieldDestZone])
	if pickup == "" {
		res.Errors[models.FieldPickupZone] = "required"
	}
	if dest == "" {
		res.Errors[models.FieldDestZone] = "required"
	}
	if pickup == "" || dest == "" {
		return
	}
	if _, ok := lookupRoute(pickup, dest); !ok {
		res.Errors[models.FieldDestZone] = "no fixed route between the selected zones"
	}
}

// validateKaraokeLeadTime applies the 24-hour buffer rule: inside the buffer
// a same-calendar-day booking is a warning, anything else is a hard error.
func validateKaraokeLeadTime(bookingAt time.Time, now time.Time, res *ValidationResult) {
	if bookingAt.IsZero() {
		return
	}
	if bookingAt.Sub(now) >= karaokeLeadTime {
		return
	}
	sameDay := bookingAt.Year() == now.Year() && bookingAt.YearDay() == now.YearDay()
	if sameDay {
		res.Warnings[models.FieldDate] = warnSameDayBooking
		return
	}
	res.Errors[models.FieldDate] = "karaoke bookings require 24 hours notice"
}
