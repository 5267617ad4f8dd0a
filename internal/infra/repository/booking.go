package repository

import (
	"context"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	findBookingSQL = `
SELECT id, room_id, customer_id, guest_count, order_id, booking_date, show_date, show_timeslot
FROM bookings WHERE id = $1 FOR UPDATE`

	insertBookingSQL = `
INSERT INTO bookings (room_id, customer_id, guest_count, order_id, booking_date, show_date, show_timeslot)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

	updateBookingSQL = `
UPDATE bookings
SET room_id = $2, customer_id = $3, guest_count = $4, order_id = $5, show_date = $6,
    show_timeslot = $7, updated_at = now()
WHERE id = $1`

	deleteBookingSQL = `DELETE FROM bookings WHERE id = $1`
)

// Constraint names surfaced through infra.IsConstraint.
const (
	BookingSlotConstraint    = "bookings_room_show_slot_key"
	BookingOrderIDConstraint = "bookings_order_id_key"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) FindByID(ctx context.Context, tx db.DBTX, id int64) (*booking.Booking, error) {
	var (
		bookingID          int64
		p                  booking.Params
		guests, timeslot   int32
		bookedOn, showDate pgtype.Date
	)
	err := tx.QueryRow(ctx, findBookingSQL, id).Scan(
		&bookingID, &p.RoomID, &p.CustomerID, &guests, &p.OrderID, &bookedOn, &showDate, &timeslot,
	)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find booking", err)
	}
	p.GuestCount = int(guests)
	p.ShowTimeslot = int(timeslot)
	p.ShowDate = pgconv.DateFromPgtype(showDate)
	return booking.ReconstructBooking(bookingID, p, pgconv.DateFromPgtype(bookedOn)), nil
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, insertBookingSQL,
		b.RoomID(),
		b.CustomerID(),
		b.GuestCount(),
		b.OrderID().String(),
		pgconv.DateToPgtype(b.BookingDate()),
		pgconv.DateToPgtype(b.ShowDate()),
		b.ShowTimeslot(),
	).Scan(&id)
	if err != nil {
		return 0, infra.ClassifyPgErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	tag, err := tx.Exec(ctx, updateBookingSQL,
		b.ID(),
		b.RoomID(),
		b.CustomerID(),
		b.GuestCount(),
		b.OrderID().String(),
		pgconv.DateToPgtype(b.ShowDate()),
		b.ShowTimeslot(),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx db.DBTX, id int64) error {
	return execDelete(ctx, tx, deleteBookingSQL, id, "booking")
}
