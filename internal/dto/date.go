package dto

import (
	"strings"
	"time"

	apierrors "github.com/yukikurage/task-tracker/internal/errors"
)

const dateLayout = "2006-01-02"

// ErrInvalidDueDate is returned for due dates in neither accepted layout.
var ErrInvalidDueDate = apierrors.NewAPIError(apierrors.ErrCodeInvalidInput, "due_date must be YYYY-MM-DD or RFC 3339")

// ParseDueDate accepts YYYY-MM-DD or RFC 3339. An empty string means no due
// date and yields nil.
func ParseDueDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(dateLayout, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, ErrInvalidDueDate
	}
	t = t.UTC()
	return &t, nil
}

// FormatDueDate renders date-only values as YYYY-MM-DD and anything with a
// time of day as RFC 3339.
func FormatDueDate(t time.Time) string {
	t = t.UTC()
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(dateLayout)
	}
	return t.Format(time.RFC3339)
}
