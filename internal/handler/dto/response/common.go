package response

import (
	"time"

	"room-booking/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

const dateLayout = "2006-01-02"

type MessageResponse struct {
	Message string `json:"message"`
}

type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type BookingCreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
	OrderID string `json:"order_id"`
}

type AssociationsResponse struct {
	HasAssociations bool `json:"has_associations"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// copyInto maps src onto dst by field name; fields tagged copier:"-" are filled by the caller.
func copyInto(dst, src any) error {
	if err := copier.Copy(dst, src); err != nil {
		return errs.Wrapf(err, "failed to map %T into a response", src)
	}
	return nil
}
