//go:build unit || e2e

package builder

import (
	"time"

	"room-booking/internal/domain/booking"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/pkg/ptr"
	"room-booking/internal/usecase/queries"
)

type BookingBuilder struct {
	ID           int64
	RoomID       int64
	CustomerID   int64
	GuestCount   int
	OrderID      string
	BookingDate  time.Time
	ShowDate     time.Time
	ShowTimeslot int
}

// NewBookingBuilder books timeslot 1 on Monday 2025-01-20, made on 2025-01-15.
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:           1,
		RoomID:       1,
		CustomerID:   1,
		GuestCount:   4,
		OrderID:      "order-0001",
		BookingDate:  time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		ShowDate:     time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		ShowTimeslot: 1,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Params() booking.Params {
	return booking.Params{
		RoomID:       b.RoomID,
		CustomerID:   b.CustomerID,
		GuestCount:   b.GuestCount,
		OrderID:      b.OrderID,
		ShowDate:     b.ShowDate,
		ShowTimeslot: b.ShowTimeslot,
	}
}

// BuildDomain creates the booking as if it were made on BookingDate.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.Params(), b.BookingDate)
}

func (b *BookingBuilder) BuildStored() *booking.Booking {
	return booking.ReconstructBooking(b.ID, b.Params(), b.BookingDate)
}

func (b *BookingBuilder) BuildView() queries.BookingView {
	return queries.BookingView{
		ID:           b.ID,
		RoomID:       b.RoomID,
		RoomTitle:    "Theater A",
		CustomerID:   b.CustomerID,
		CustomerName: "Hanako Yamada",
		GuestCount:   b.GuestCount,
		OrderID:      b.OrderID,
		BookingDate:  b.BookingDate,
		ShowDate:     b.ShowDate,
		ShowTimeslot: b.ShowTimeslot,
	}
}

func (b *BookingBuilder) BuildDTO() reqdto.BookingRequest {
	return reqdto.BookingRequest{
		RoomID:       b.RoomID,
		CustomerID:   b.CustomerID,
		GuestCount:   ptr.To(b.GuestCount),
		OrderID:      b.OrderID,
		ShowDate:     b.ShowDate.Format("2006-01-02"),
		ShowTimeslot: ptr.To(b.ShowTimeslot),
	}
}

func (b *BookingBuilder) WithoutOrderID() *BookingBuilder {
	b.OrderID = ""
	return b
}

func (b *BookingBuilder) WithGuests(n int) *BookingBuilder {
	b.GuestCount = n
	return b
}

func (b *BookingBuilder) OnDate(show time.Time, timeslot int) *BookingBuilder {
	b.ShowDate = show
	b.ShowTimeslot = timeslot
	return b
}
