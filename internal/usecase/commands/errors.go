package commands

import (
	"room-booking/internal/infra"
	"room-booking/internal/pkg/errs"
)

// notFoundAs replaces a NOT_FOUND repository error with the given sentinel.
func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
