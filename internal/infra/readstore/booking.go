package readstore

import (
	"context"
	"time"

	"room-booking/internal/domain/availability"
	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	bookingViewSQL = `
SELECT b.id, b.room_id, r.title, b.customer_id, c.first_name || ' ' || c.last_name,
       b.guest_count, b.order_id, b.booking_date, b.show_date, b.show_timeslot
FROM bookings b
JOIN rooms r ON r.id = b.room_id
JOIN customers c ON c.id = b.customer_id`

	listBookingsSQL = bookingViewSQL + ` ORDER BY b.show_date DESC, b.show_timeslot, b.id`

	findBookingSQL = bookingViewSQL + ` WHERE b.id = $1`

	bookedSlotsSQL = `
SELECT show_date, show_timeslot FROM bookings
WHERE room_id = $1 AND show_date BETWEEN $2 AND $3`
)

type BookingReadStore struct{}

func NewBookingReadStore() *BookingReadStore {
	return &BookingReadStore{}
}

func (r *BookingReadStore) List(ctx context.Context, db db.DBTX) ([]queries.BookingView, error) {
	rows, err := db.Query(ctx, listBookingsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	list, err := collect(rows, scanBooking)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan bookings", err)
	}
	return list, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, db db.DBTX, id int64) (*queries.BookingView, error) {
	view, err := scanBooking(db.QueryRow(ctx, findBookingSQL, id))
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find booking", err)
	}
	return &view, nil
}

// BookedSlots collects the taken timeslots of a room between from and to, inclusive.
func (r *BookingReadStore) BookedSlots(ctx context.Context, db db.DBTX, roomID int64, from, to time.Time) (availability.Booked, error) {
	rows, err := db.Query(ctx, bookedSlotsSQL, roomID, pgconv.DateToPgtype(from), pgconv.DateToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booked slots", err)
	}
	defer rows.Close()

	booked := availability.Booked{}
	for rows.Next() {
		var (
			date     pgtype.Date
			timeslot int32
		)
		if err := rows.Scan(&date, &timeslot); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked slot", err)
		}
		booked.Add(date.Time, int(timeslot))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booked slots", err)
	}
	return booked, nil
}

func scanBooking(row pgx.Row) (queries.BookingView, error) {
	var (
		v                  queries.BookingView
		guests, timeslot   int32
		bookedOn, showDate pgtype.Date
	)
	err := row.Scan(&v.ID, &v.RoomID, &v.RoomTitle, &v.CustomerID, &v.CustomerName,
		&guests, &v.OrderID, &bookedOn, &showDate, &timeslot)
	if err != nil {
		return queries.BookingView{}, err
	}
	v.GuestCount = int(guests)
	v.ShowTimeslot = int(timeslot)
	v.BookingDate = bookedOn.Time
	v.ShowDate = showDate.Time
	return v, nil
}
