package console

import (
	"context"
	"strconv"
	"time"

	"room-booking/internal/domain/form"
	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/ptr"
)

// BookingOptions feed the room and customer selects of the booking form.
type BookingOptions struct {
	Rooms     []resdto.RoomResponse
	Customers []resdto.CustomerResponse
}

type BookingConsole interface {
	ListBookings(ctx context.Context) ([]resdto.BookingResponse, error)
	LoadBooking(ctx context.Context, id int64) (form.Booking, error)
	Options(ctx context.Context) (*BookingOptions, error)
	SaveBooking(ctx context.Context, id int64, f form.Booking) Outcome
	DeleteBooking(ctx context.Context, id int64) error
}

type bookingConsoleImpl struct {
	api   API
	clock clock.Clock
	loc   *time.Location
}

func NewBookingConsole(api API, clk clock.Clock, cfg config.BookingConfig) BookingConsole {
	return &bookingConsoleImpl{api: api, clock: clk, loc: cfg.Location()}
}

func (uc *bookingConsoleImpl) ListBookings(ctx context.Context) ([]resdto.BookingResponse, error) {
	return uc.api.ListBookings(ctx)
}

func (uc *bookingConsoleImpl) LoadBooking(ctx context.Context, id int64) (form.Booking, error) {
	b, err := uc.api.GetBooking(ctx, id)
	if err != nil {
		return form.Booking{}, err
	}
	return form.Booking{
		RoomID:       strconv.FormatInt(b.RoomID, 10),
		CustomerID:   strconv.FormatInt(b.CustomerID, 10),
		GuestCount:   strconv.Itoa(b.GuestCount),
		OrderID:      b.OrderID,
		ShowDate:     b.ShowDate,
		ShowTimeslot: strconv.Itoa(b.ShowTimeslot),
	}, nil
}

func (uc *bookingConsoleImpl) Options(ctx context.Context) (*BookingOptions, error) {
	rooms, err := uc.api.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := uc.api.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	return &BookingOptions{Rooms: rooms, Customers: customers}, nil
}

func (uc *bookingConsoleImpl) SaveBooking(ctx context.Context, id int64, f form.Booking) Outcome {
	v, fe := f.Validate()
	if fe.Any() {
		return invalid(fe)
	}
	req := reqdto.BookingRequest{
		RoomID:       v.RoomID,
		CustomerID:   v.CustomerID,
		GuestCount:   ptr.To(v.GuestCount),
		OrderID:      v.OrderID,
		BookingDate:  clock.Today(uc.clock, uc.loc).Format(time.DateOnly),
		ShowDate:     v.ShowDate,
		ShowTimeslot: ptr.To(v.ShowTimeslot),
	}

	if id == 0 {
		res, err := uc.api.CreateBooking(ctx, req)
		if err != nil {
			return failed(err)
		}
		return Outcome{Message: res.Message, ID: res.ID}
	}
	msg, err := uc.api.UpdateBooking(ctx, id, req)
	if err != nil {
		return failed(err)
	}
	return Outcome{Message: msg}
}

func (uc *bookingConsoleImpl) DeleteBooking(ctx context.Context, id int64) error {
	return uc.api.DeleteBooking(ctx, id)
}
