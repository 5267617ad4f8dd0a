package commands

import (
	"context"
	"log/slog"
	"time"

	"room-booking/internal/domain/availability"
	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/infra/repository"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

type CreateBookingResult struct {
	ID      int64
	OrderID string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, p booking.Params) (*CreateBookingResult, error)
	UpdateBooking(ctx context.Context, id int64, p booking.Params) error
	DeleteBooking(ctx context.Context, id int64) error
}

type bookingCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	loc       *time.Location
	cache     AvailabilityInvalidator
	publisher EventPublisher
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	cfg config.BookingConfig,
	cache AvailabilityInvalidator,
	publisher EventPublisher,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:       uow,
		clock:     clk,
		loc:       cfg.Location(),
		cache:     cache,
		publisher: publisher,
	}
}

func (uc *bookingCommandsImpl) CreateBooking(ctx context.Context, p booking.Params) (*CreateBookingResult, error) {
	b, err := booking.NewBooking(p, clock.Today(uc.clock, uc.loc))
	if err != nil {
		return nil, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := checkSlot(ctx, tx, b); err != nil {
			return err
		}
		newID, cerr := tx.Bookings().Create(ctx, tx.DB(), b)
		id = newID
		return bookingWriteErr(cerr)
	})
	if err != nil {
		return nil, err
	}

	// committed: follow-up work must outlive the request
	after := context.WithoutCancel(ctx)
	uc.cache.InvalidateRoom(after, b.RoomID())
	uc.publish(after, id, b)

	return &CreateBookingResult{ID: id, OrderID: b.OrderID().String()}, nil
}

func (uc *bookingCommandsImpl) UpdateBooking(ctx context.Context, id int64, p booking.Params) error {
	var previousRoom, nextRoom int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, errs.ErrBookingNotFound)
		}
		previousRoom = b.RoomID()
		if err := b.Update(p); err != nil {
			return err
		}
		nextRoom = b.RoomID()
		if err := checkSlot(ctx, tx, b); err != nil {
			return err
		}
		return bookingWriteErr(tx.Bookings().Update(ctx, tx.DB(), b))
	})
	if err != nil {
		return err
	}

	uc.cache.InvalidateRoom(context.WithoutCancel(ctx), previousRoom)
	if nextRoom != previousRoom {
		uc.cache.InvalidateRoom(context.WithoutCancel(ctx), nextRoom)
	}
	return nil
}

func (uc *bookingCommandsImpl) DeleteBooking(ctx context.Context, id int64) error {
	var roomID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, errs.ErrBookingNotFound)
		}
		roomID = b.RoomID()
		return notFoundAs(tx.Bookings().Delete(ctx, tx.DB(), id), errs.ErrBookingNotFound)
	})
	if err != nil {
		return err
	}
	uc.cache.InvalidateRoom(context.WithoutCancel(ctx), roomID)
	return nil
}

// checkSlot verifies the room, the customer and that the room schedules the timeslot on the show date.
// The unique constraint on (room_id, show_date, show_timeslot) settles races between bookings.
func checkSlot(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
	r, err := tx.Rooms().FindByID(ctx, tx.DB(), b.RoomID())
	if err != nil {
		return notFoundAs(err, errs.ErrRoomNotFound)
	}
	if !r.Fits(b.GuestCount()) {
		return booking.ErrGuestCountTooLarge
	}
	if !availability.OpenOn(b.ShowDate(), r.LaunchDate(), r.SunsetDate()) {
		return errs.ErrUnknownTimeslot
	}

	c, err := tx.Customers().FindByID(ctx, tx.DB(), b.CustomerID())
	if err != nil {
		return notFoundAs(err, errs.ErrCustomerNotFound)
	}
	if c.IsBanned() {
		return booking.ErrCustomerBanned
	}

	showtimes, err := tx.Showtimes().ListByRoom(ctx, tx.DB(), b.RoomID())
	if err != nil {
		return err
	}
	if !availability.Offers(showtimes, b.ShowDate(), b.ShowTimeslot()) {
		return errs.ErrUnknownTimeslot
	}
	return nil
}

func bookingWriteErr(err error) error {
	switch {
	case infra.IsConstraint(err, repository.BookingSlotConstraint):
		return errs.Mark(err, errs.ErrTimeslotTaken)
	case infra.IsConstraint(err, repository.BookingOrderIDConstraint):
		return errs.Mark(err, errs.ErrDuplicateOrderID)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrBookingNotFound)
	default:
		return err
	}
}

func (uc *bookingCommandsImpl) publish(ctx context.Context, id int64, b *booking.Booking) {
	event := BookingConfirmedEvent{
		BookingID:    id,
		OrderID:      b.OrderID().String(),
		RoomID:       b.RoomID(),
		CustomerID:   b.CustomerID(),
		GuestCount:   b.GuestCount(),
		ShowDate:     b.ShowDate().Format(availability.DateLayout),
		ShowTimeslot: b.ShowTimeslot(),
		BookedAt:     uc.clock.Now(),
	}
	if err := uc.publisher.PublishBookingConfirmed(ctx, event); err != nil {
		slog.Warn("予約確定イベントの送信に失敗しました", "booking_id", id, "order_id", event.OrderID, "error", err.Error())
	}
}
