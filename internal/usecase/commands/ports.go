package commands

import (
	"context"
	"time"
)

// AvailabilityInvalidator drops cached availability after schedule or booking writes.
type AvailabilityInvalidator interface {
	InvalidateRoom(ctx context.Context, roomID int64)
}

type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error
}

// BookingConfirmedEvent is published once a booking is committed.
type BookingConfirmedEvent struct {
	BookingID    int64     `json:"booking_id"`
	OrderID      string    `json:"order_id"`
	RoomID       int64     `json:"room_id"`
	CustomerID   int64     `json:"customer_id"`
	GuestCount   int       `json:"guest_count"`
	ShowDate     string    `json:"show_date"`
	ShowTimeslot int       `json:"show_timeslot"`
	BookedAt     time.Time `json:"booked_at"`
}
