package request

import (
	"strings"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/pkg/errs"
)

// BookingRequest leaves order_id optional; the server issues one when it is absent.
// booking_date is accepted for compatibility but the server stamps its own date.
type BookingRequest struct {
	RoomID       int64  `json:"room_id"`
	CustomerID   int64  `json:"customer_id"`
	GuestCount   *int   `json:"guest_count"`
	OrderID      string `json:"order_id,omitempty"`
	BookingDate  string `json:"booking_date,omitempty"`
	ShowDate     string `json:"show_date" example:"2025-01-31"`
	ShowTimeslot *int   `json:"show_timeslot"`
}

func (r BookingRequest) ToParams(loc *time.Location) (booking.Params, error) {
	var (
		p   booking.Params
		err error
	)
	p.RoomID = r.RoomID
	p.CustomerID = r.CustomerID
	p.OrderID = strings.TrimSpace(r.OrderID)
	if p.GuestCount, err = requiredInt(r.GuestCount, "Guest count"); err != nil {
		return booking.Params{}, err
	}
	if strings.TrimSpace(r.ShowDate) == "" {
		return booking.Params{}, booking.ErrMissingShowDate
	}
	if p.ShowDate, err = time.ParseInLocation(dateLayout, strings.TrimSpace(r.ShowDate), loc); err != nil {
		return booking.Params{}, errs.Validation("Show date must be YYYY-MM-DD")
	}
	if p.ShowTimeslot, err = requiredInt(r.ShowTimeslot, "Timeslot"); err != nil {
		return booking.Params{}, err
	}
	return p, nil
}
