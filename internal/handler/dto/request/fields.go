package request

import (
	"strings"
	"time"

	"room-booking/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

func requiredInt(v *int, label string) (int, error) {
	if v == nil {
		return 0, errs.Validation(label + " is required")
	}
	return *v, nil
}

// optionalDate treats nil and blank strings as an absent date.
func optionalDate(v *string, label string) (*time.Time, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*v))
	if err != nil {
		return nil, errs.Validation(label + " must be YYYY-MM-DD")
	}
	return &t, nil
}
