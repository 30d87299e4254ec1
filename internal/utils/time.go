package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/agenda/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in loc. A nil loc means time.Local.
func NowInTimezone(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Now().In(loc)
}

// Today returns the current date in loc as YYYY-MM-DD.
func Today(loc *time.Location) string {
	return NowInTimezone(loc).Format(constants.DateFormat)
}

// ValidateDateFormat checks if the string is a YYYY-MM-DD date.
func ValidateDateFormat(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

// ValidateTimeFormat checks if the string is an HH:MM time.
func ValidateTimeFormat(timeStr string) bool {
	_, err := time.Parse(constants.TimeFormat, timeStr)
	return err == nil
}

// CombineDateAndTime reads a YYYY-MM-DD date and an H:MM or HH:MM clock (seconds
// are ignored) as wall clock time in loc.
func CombineDateAndTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	date, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}

	timeOfDay, err := time.Parse(constants.TimeFormat, FormatTime(timeStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format: %w", err)
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		timeOfDay.Hour(), timeOfDay.Minute(), 0, 0,
		loc,
	), nil
}

// ToISODateTime joins a date and an HH:MM time into "<date>T<time>:00".
// ok is false when either part is missing.
func ToISODateTime(date, timeStr string) (iso string, ok bool) {
	if date == "" || timeStr == "" {
		return "", false
	}
	return date + constants.ISODateTimeSeparator + timeStr + ":00", true
}

// ExtractDate returns the date part of an ISO datetime.
func ExtractDate(dateTime string) string {
	if dateTime == "" {
		return ""
	}
	date, _, _ := strings.Cut(dateTime, constants.ISODateTimeSeparator)
	return date
}

// ExtractTime returns the HH:MM of an ISO datetime, or "" when there is no time part.
func ExtractTime(dateTime string) string {
	if dateTime == "" {
		return ""
	}
	parts := strings.Split(dateTime, constants.ISODateTimeSeparator)
	if len(parts) < 2 || parts[1] == "" {
		return ""
	}
	return firstRunes(parts[1], len(constants.TimeFormat))
}

// FormatTime truncates a clock time to HH:MM. The input is not validated.
func FormatTime(timeStr string) string {
	if timeStr == "" {
		return ""
	}
	return firstRunes(timeStr, len(constants.TimeFormat))
}

// DefaultEndTime is EndTime with the default appointment duration.
func DefaultEndTime(start string) string {
	return EndTime(start, constants.DefaultAppointmentMinutes)
}

// EndTime adds durationMinutes to an HH:MM start and returns the zero-padded
// HH:MM result. Arithmetic is on minutes-of-day, so crossing midnight wraps
// silently in both directions. Returns "" when start is empty or its hour or
// minute is not a number.
func EndTime(start string, durationMinutes int) string {
	if start == "" {
		return ""
	}
	parts := strings.Split(start, ":")
	if len(parts) < 2 {
		return ""
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return ""
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return ""
	}

	total := hour*constants.MinutesPerHour + minute + durationMinutes
	total = ((total % constants.MinutesPerDay) + constants.MinutesPerDay) % constants.MinutesPerDay

	return fmt.Sprintf("%02d:%02d", total/constants.MinutesPerHour, total%constants.MinutesPerHour)
}

func firstRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
