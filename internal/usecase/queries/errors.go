package queries

import (
	"room-booking/internal/infra"
	"room-booking/internal/pkg/errs"
)

var (
	ErrInvalidDate  = errs.Validation("date must be YYYY-MM-DD")
	ErrInvalidMonth = errs.Validation("month must be YYYY-MM")
)

func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
