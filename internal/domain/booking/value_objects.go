package booking

import (
	"strings"

	"room-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxOrderIDLength = 64

var ErrInvalidOrderID = errs.Validation("order_id must be at most 64 characters")

// OrderID correlates a booking with external systems.
type OrderID struct {
	value string
}

// NewOrderID issues a random identifier.
func NewOrderID() OrderID {
	return OrderID{value: uuid.NewString()}
}

// ParseOrderID accepts a caller-supplied id; an empty input yields a freshly issued one.
func ParseOrderID(s string) (OrderID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NewOrderID(), nil
	}
	if len(s) > MaxOrderIDLength {
		return OrderID{}, ErrInvalidOrderID
	}
	return OrderID{value: s}, nil
}

func (o OrderID) String() string { return o.value }
