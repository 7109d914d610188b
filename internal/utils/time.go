package utils

import (
	"fmt"
	"time"

	"github.com/Sanuxal/SOCRATES.AI/internal/constants"
)

// Today returns the current date string (YYYY-MM-DD) in the local timezone.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// FormatDate formats a time as a standard date string (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseTime parses a clock time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// DaysUntil returns the number of whole days from today (midnight) to the
// given date. Negative when the date is in the past.
func DaysUntil(dateStr string) (int, error) {
	target, err := ParseDate(dateStr)
	if err != nil {
		return 0, fmt.Errorf("invalid date format: %w", err)
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(target.Sub(today).Hours() / 24), nil
}

// AddDays returns the date string count days after the given date.
func AddDays(dateStr string, count int) (string, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, count)), nil
}
