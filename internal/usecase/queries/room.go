package queries

import (
	"context"

	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

type RoomReadStore interface {
	List(ctx context.Context, db db.DBTX) ([]RoomView, error)
	FindByID(ctx context.Context, db db.DBTX, id int64) (*RoomView, error)
	HasAssociations(ctx context.Context, db db.DBTX, id int64) (bool, error)
}

type RoomQueries interface {
	ListRooms(ctx context.Context) ([]RoomView, error)
	GetRoom(ctx context.Context, id int64) (*RoomView, error)
	HasAssociations(ctx context.Context, id int64) (bool, error)
}

type roomQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore RoomReadStore
}

func NewRoomQueries(uow shared.UnitOfWork, readStore RoomReadStore) RoomQueries {
	return &roomQueriesImpl{uow: uow, readStore: readStore}
}

func (q *roomQueriesImpl) ListRooms(ctx context.Context) ([]RoomView, error) {
	var rooms []RoomView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		rooms, err = q.readStore.List(ctx, db)
		return err
	})
	return rooms, err
}

func (q *roomQueriesImpl) GetRoom(ctx context.Context, id int64) (*RoomView, error) {
	var room *RoomView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		room, err = q.readStore.FindByID(ctx, db, id)
		return notFoundAs(err, errs.ErrRoomNotFound)
	})
	if err != nil {
		return nil, err
	}
	return room, nil
}

// HasAssociations reports whether costs, showtimes or bookings block deleting the room.
func (q *roomQueriesImpl) HasAssociations(ctx context.Context, id int64) (bool, error) {
	var has bool
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		has, err = q.readStore.HasAssociations(ctx, db, id)
		return notFoundAs(err, errs.ErrRoomNotFound)
	})
	return has, err
}
