package form

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// FieldErrors maps a form field name to the message shown next to it.
type FieldErrors map[string]string

func (fe FieldErrors) Any() bool { return len(fe) > 0 }

func (fe FieldErrors) add(field, msg string) {
	if _, exists := fe[field]; !exists {
		fe[field] = msg
	}
}

func requiredText(fe FieldErrors, field, label, raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		fe.add(field, label+" is required")
	}
	return v
}

func requiredInt(fe FieldErrors, field, label, raw string) int {
	v := strings.TrimSpace(raw)
	if v == "" {
		fe.add(field, label+" is required")
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		fe.add(field, label+" must be an integer")
		return 0
	}
	return n
}

func requiredNumber(fe FieldErrors, field, label, raw string) decimal.Decimal {
	v := strings.TrimSpace(raw)
	if v == "" {
		fe.add(field, label+" is required")
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		fe.add(field, label+" must be a number")
		return decimal.Zero
	}
	return d
}

func requiredDate(fe FieldErrors, field, label, raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		fe.add(field, label+" is required")
		return ""
	}
	if _, err := time.Parse(dateLayout, v); err != nil {
		fe.add(field, label+" must be YYYY-MM-DD")
		return ""
	}
	return v
}

func optionalDate(fe FieldErrors, field, label, raw string) *string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, v); err != nil {
		fe.add(field, label+" must be YYYY-MM-DD")
		return nil
	}
	return &v
}

func optionalText(raw string) *string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil
	}
	return &v
}

// checked reads an HTML checkbox value.
func checked(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

func optionalValue(raw string) string {
	return strings.TrimSpace(raw)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
