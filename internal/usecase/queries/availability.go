package queries

import (
	"context"
	"time"

	"room-booking/internal/domain/availability"
	"room-booking/internal/domain/showtime"
	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

const monthLayout = "2006-01"

// AvailabilityCache keeps computed availability until a write on the room invalidates it.
type AvailabilityCache interface {
	Dates(ctx context.Context, roomID int64, w availability.Window) ([]string, bool)
	StoreDates(ctx context.Context, roomID int64, w availability.Window, dates []string)
	Timeslots(ctx context.Context, roomID int64, date time.Time) ([]TimeslotView, bool)
	StoreTimeslots(ctx context.Context, roomID int64, date time.Time, slots []TimeslotView)
}

type AvailabilityQueries interface {
	// AvailableDates lists YYYY-MM-DD dates with at least one free timeslot. An empty month
	// covers today through the configured horizon.
	AvailableDates(ctx context.Context, roomID int64, month string) ([]string, error)
	Timeslots(ctx context.Context, roomID int64, date string) ([]TimeslotView, error)
}

type availabilityQueriesImpl struct {
	uow       shared.UnitOfWork
	rooms     RoomReadStore
	showtimes ShowtimeReadStore
	bookings  BookingReadStore
	cache     AvailabilityCache
	clock     clock.Clock
	loc       *time.Location
	horizon   int
}

func NewAvailabilityQueries(
	uow shared.UnitOfWork,
	rooms RoomReadStore,
	showtimes ShowtimeReadStore,
	bookings BookingReadStore,
	cache AvailabilityCache,
	clk clock.Clock,
	cfg config.BookingConfig,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		uow:       uow,
		rooms:     rooms,
		showtimes: showtimes,
		bookings:  bookings,
		cache:     cache,
		clock:     clk,
		loc:       cfg.Location(),
		horizon:   cfg.AvailabilityDays,
	}
}

func (q *availabilityQueriesImpl) AvailableDates(ctx context.Context, roomID int64, month string) ([]string, error) {
	today := clock.Today(q.clock, q.loc)

	window := availability.NextDays(today, q.horizon)
	if month != "" {
		m, err := time.ParseInLocation(monthLayout, month, q.loc)
		if err != nil {
			return nil, ErrInvalidMonth
		}
		var ok bool
		if window, ok = availability.MonthOf(m, today); !ok {
			return q.ensureRoom(ctx, roomID)
		}
	}

	if dates, ok := q.cache.Dates(ctx, roomID, window); ok {
		return dates, nil
	}

	dates := make([]string, 0)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db db.DBTX) error {
		room, err := q.rooms.FindByID(ctx, db, roomID)
		if err != nil {
			return notFoundAs(err, errs.ErrRoomNotFound)
		}
		clipped, open := window.Clip(room.LaunchDate, room.SunsetDate)
		if !open {
			return nil
		}
		list, err := q.showtimes.ListByRoom(ctx, db, roomID)
		if err != nil {
			return err
		}
		booked, err := q.bookings.BookedSlots(ctx, db, roomID, clipped.From, clipped.To)
		if err != nil {
			return err
		}
		dates = availability.AvailableDates(list, booked, clipped)
		return nil
	})
	if err != nil {
		return nil, err
	}

	q.cache.StoreDates(ctx, roomID, window, dates)
	return dates, nil
}

func (q *availabilityQueriesImpl) Timeslots(ctx context.Context, roomID int64, date string) ([]TimeslotView, error) {
	day, err := availability.ParseDate(date, q.loc)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if slots, ok := q.cache.Timeslots(ctx, roomID, day); ok {
		return slots, nil
	}

	views := make([]TimeslotView, 0)
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, db db.DBTX) error {
		room, err := q.rooms.FindByID(ctx, db, roomID)
		if err != nil {
			return notFoundAs(err, errs.ErrRoomNotFound)
		}
		if !availability.OpenOn(day, room.LaunchDate, room.SunsetDate) {
			return nil
		}
		list, err := q.showtimes.ListByRoom(ctx, db, roomID)
		if err != nil {
			return err
		}
		booked, err := q.bookings.BookedSlots(ctx, db, roomID, day, day)
		if err != nil {
			return err
		}
		for _, slot := range availability.TimeslotsOn(list, booked, day) {
			views = append(views, toTimeslotView(slot.Showtime, room.Title, slot.IsBooked))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	q.cache.StoreTimeslots(ctx, roomID, day, views)
	return views, nil
}

// ensureRoom answers an empty list for a past month while still reporting unknown rooms.
func (q *availabilityQueriesImpl) ensureRoom(ctx context.Context, roomID int64) ([]string, error) {
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		_, err := q.rooms.FindByID(ctx, db, roomID)
		return notFoundAs(err, errs.ErrRoomNotFound)
	})
	if err != nil {
		return nil, err
	}
	return []string{}, nil
}

func toTimeslotView(s *showtime.Showtime, roomName string, booked bool) TimeslotView {
	return TimeslotView{
		ID:        s.ID(),
		Timeslot:  s.Timeslot(),
		RoomName:  roomName,
		StartTime: s.StartTime().String(),
		EndTime:   s.EndTime().String(),
		IsBooked:  booked,
	}
}
