package core

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate accepts the calendar-date form the browser client submits
// ("2006-01-02") as well as full RFC 3339 timestamps.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf(
		"parse date %q: %w",
		value,
		ErrInvalidInput,
	)
}
