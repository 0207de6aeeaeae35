package booking

import (
	"strconv"
	"strings"
	"time"
)

// Form date/time layouts. Dates arrive as "2006-01-02", times as "15:04".
const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

func fieldInt(fields map[string]string, name string) int {
	n, err := strconv.Atoi(strings.TrimSpace(fields[name]))
	if err != nil {
		return 0
	}
	return n
}

func fieldBool(fields map[string]string, name string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(fields[name]))
	if err != nil {
		return false
	}
	return b
}

// combineDateTime merges the date and time form fields into one timestamp.
// An empty time field means the start of the selected day.
func combineDateTime(dateStr, timeStr string) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, strings.TrimSpace(dateStr), time.Local)
	if err != nil {
		return time.Time{}, err
	}
	if strings.TrimSpace(timeStr) == "" {
		return day, nil
	}
	clock, err := time.Parse(timeLayout, strings.TrimSpace(timeStr))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local), nil
}

// isNightPickup reports whether the pickup time falls in the 22:00-06:00
// night band.
func isNightPickup(timeStr string) bool {
	clock, err := time.Parse(timeLayout, strings.TrimSpace(timeStr))
	if err != nil {
		return false
	}
	return clock.Hour() >= 22 || clock.Hour() < 6
}
