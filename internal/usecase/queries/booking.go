package queries

import (
	"context"
	"time"

	"room-booking/internal/domain/availability"
	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

type BookingReadStore interface {
	List(ctx context.Context, db db.DBTX) ([]BookingView, error)
	FindByID(ctx context.Context, db db.DBTX, id int64) (*BookingView, error)
	BookedSlots(ctx context.Context, db db.DBTX, roomID int64, from, to time.Time) (availability.Booked, error)
}

type BookingQueries interface {
	ListBookings(ctx context.Context) ([]BookingView, error)
	GetBooking(ctx context.Context, id int64) (*BookingView, error)
}

type bookingQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore BookingReadStore
}

func NewBookingQueries(uow shared.UnitOfWork, readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{uow: uow, readStore: readStore}
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context) ([]BookingView, error) {
	var list []BookingView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		list, err = q.readStore.List(ctx, db)
		return err
	})
	return list, err
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id int64) (*BookingView, error) {
	var b *BookingView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		b, err = q.readStore.FindByID(ctx, db, id)
		return notFoundAs(err, errs.ErrBookingNotFound)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}
