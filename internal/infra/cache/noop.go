package cache

import (
	"context"
	"time"

	"room-booking/internal/domain/availability"
	"room-booking/internal/usecase/queries"
)

// Noop is used when Redis is not configured.
type Noop struct{}

func (Noop) Dates(context.Context, int64, availability.Window) ([]string, bool) { return nil, false }
func (Noop) StoreDates(context.Context, int64, availability.Window, []string)   {}
func (Noop) Timeslots(context.Context, int64, time.Time) ([]queries.TimeslotView, bool) {
	return nil, false
}
func (Noop) StoreTimeslots(context.Context, int64, time.Time, []queries.TimeslotView) {}
func (Noop) InvalidateRoom(context.Context, int64)                                    {}
