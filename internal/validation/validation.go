package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Common validation errors
var (
	ErrInvalidID        = fmt.Errorf("invalid ID")
	ErrInvalidDate      = fmt.Errorf("invalid date")
	ErrInvalidDateRange = fmt.Errorf("invalid date range")
)

// ValidateID parses a bond ID path parameter. IDs are positive integers.
func ValidateID(id string) (int64, error) {
	parsed, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil || parsed <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}
	return parsed, nil
}

// ParseDate parses a YYYY-MM-DD date, or an RFC3339 timestamp truncated to its
// date, into midnight UTC.
func ParseDate(str string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", str)
	if err != nil {
		t, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, str)
		}
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// ValidateDateRange checks that from is not after to.
func ValidateDateRange(from, to time.Time) error {
	if from.After(to) {
		return fmt.Errorf("%w: %s is after %s", ErrInvalidDateRange,
			from.Format("2006-01-02"), to.Format("2006-01-02"))
	}
	return nil
}
