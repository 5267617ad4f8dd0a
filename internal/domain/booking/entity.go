package booking

import (
	"time"

	"room-booking/internal/pkg/errs"
)

var (
	ErrMissingRoom        = errs.Validation("Room is required")
	ErrMissingCustomer    = errs.Validation("Customer is required")
	ErrInvalidGuestCount  = errs.Validation("Guest count must be a positive integer")
	ErrInvalidTimeslot    = errs.Validation("Timeslot must be a positive integer")
	ErrMissingShowDate    = errs.Validation("Show date is required")
	ErrGuestCountTooLarge = errs.Validation("Guest count exceeds room capacity")
	ErrShowDateInPast     = errs.Validation("Show date must not be in the past")
	ErrCustomerBanned     = errs.Validation("Customer is not allowed to book")
)

type Params struct {
	RoomID       int64
	CustomerID   int64
	GuestCount   int
	OrderID      string
	ShowDate     time.Time
	ShowTimeslot int
}

type Booking struct {
	id           int64
	roomID       int64
	customerID   int64
	guestCount   int
	orderID      OrderID
	bookingDate  time.Time
	showDate     time.Time
	showTimeslot int
}

// NewBooking stamps today as the booking date. today must be a date at midnight.
func NewBooking(p Params, today time.Time) (*Booking, error) {
	b := &Booking{bookingDate: today}
	if err := b.apply(p); err != nil {
		return nil, err
	}
	if b.showDate.Before(today) {
		return nil, ErrShowDateInPast
	}
	return b, nil
}

func ReconstructBooking(id int64, p Params, bookingDate time.Time) *Booking {
	return &Booking{
		id:           id,
		roomID:       p.RoomID,
		customerID:   p.CustomerID,
		guestCount:   p.GuestCount,
		orderID:      OrderID{value: p.OrderID},
		bookingDate:  bookingDate,
		showDate:     p.ShowDate,
		showTimeslot: p.ShowTimeslot,
	}
}

// Update keeps the original booking date and, when p.OrderID is empty, the existing order id.
func (b *Booking) Update(p Params) error {
	if p.OrderID == "" {
		p.OrderID = b.orderID.String()
	}
	next := *b
	if err := next.apply(p); err != nil {
		return err
	}
	*b = next
	return nil
}

func (b *Booking) apply(p Params) error {
	if p.RoomID <= 0 {
		return ErrMissingRoom
	}
	if p.CustomerID <= 0 {
		return ErrMissingCustomer
	}
	if p.GuestCount <= 0 {
		return ErrInvalidGuestCount
	}
	if p.ShowDate.IsZero() {
		return ErrMissingShowDate
	}
	if p.ShowTimeslot <= 0 {
		return ErrInvalidTimeslot
	}
	orderID, err := ParseOrderID(p.OrderID)
	if err != nil {
		return err
	}
	b.roomID = p.RoomID
	b.customerID = p.CustomerID
	b.guestCount = p.GuestCount
	b.orderID = orderID
	b.showDate = p.ShowDate
	b.showTimeslot = p.ShowTimeslot
	return nil
}

func (b *Booking) ID() int64              { return b.id }
func (b *Booking) RoomID() int64          { return b.roomID }
func (b *Booking) CustomerID() int64      { return b.customerID }
func (b *Booking) GuestCount() int        { return b.guestCount }
func (b *Booking) OrderID() OrderID       { return b.orderID }
func (b *Booking) BookingDate() time.Time { return b.bookingDate }
func (b *Booking) ShowDate() time.Time    { return b.showDate }
func (b *Booking) ShowTimeslot() int      { return b.showTimeslot }
