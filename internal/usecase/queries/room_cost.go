package queries

import (
	"context"

	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

type RoomCostReadStore interface {
	ListByRoom(ctx context.Context, db db.DBTX, roomID int64) ([]RoomCostView, error)
	FindByID(ctx context.Context, db db.DBTX, id int64) (*RoomCostView, error)
}

type RoomCostQueries interface {
	ListRoomCosts(ctx context.Context, roomID int64) ([]RoomCostView, error)
	GetRoomCost(ctx context.Context, id int64) (*RoomCostView, error)
}

type roomCostQueriesImpl struct {
	uow       shared.UnitOfWork
	rooms     RoomReadStore
	readStore RoomCostReadStore
}

func NewRoomCostQueries(uow shared.UnitOfWork, rooms RoomReadStore, readStore RoomCostReadStore) RoomCostQueries {
	return &roomCostQueriesImpl{uow: uow, rooms: rooms, readStore: readStore}
}

// ListRoomCosts fails with ErrRoomNotFound for an unknown room instead of returning an empty list.
func (q *roomCostQueriesImpl) ListRoomCosts(ctx context.Context, roomID int64) ([]RoomCostView, error) {
	var costs []RoomCostView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db db.DBTX) error {
		if _, err := q.rooms.FindByID(ctx, db, roomID); err != nil {
			return notFoundAs(err, errs.ErrRoomNotFound)
		}
		var err error
		costs, err = q.readStore.ListByRoom(ctx, db, roomID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return costs, nil
}

func (q *roomCostQueriesImpl) GetRoomCost(ctx context.Context, id int64) (*RoomCostView, error) {
	var cost *RoomCostView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		cost, err = q.readStore.FindByID(ctx, db, id)
		return notFoundAs(err, errs.ErrRoomCostNotFound)
	})
	if err != nil {
		return nil, err
	}
	return cost, nil
}
