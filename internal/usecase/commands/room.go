package commands

import (
	"context"

	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

type RoomCommands interface {
	CreateRoom(ctx context.Context, p room.Params) (int64, error)
	UpdateRoom(ctx context.Context, id int64, p room.Params) error
	DeleteRoom(ctx context.Context, id int64) error
}

type roomCommandsImpl struct {
	uow   shared.UnitOfWork
	cache AvailabilityInvalidator
}

func NewRoomCommands(uow shared.UnitOfWork, cache AvailabilityInvalidator) RoomCommands {
	return &roomCommandsImpl{uow: uow, cache: cache}
}

func (uc *roomCommandsImpl) CreateRoom(ctx context.Context, p room.Params) (int64, error) {
	r, err := room.NewRoom(p)
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		newID, cerr := tx.Rooms().Create(ctx, tx.DB(), r)
		id = newID
		return cerr
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (uc *roomCommandsImpl) UpdateRoom(ctx context.Context, id int64, p room.Params) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Rooms().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, errs.ErrRoomNotFound)
		}
		if err := r.Update(p); err != nil {
			return err
		}
		return tx.Rooms().Update(ctx, tx.DB(), r)
	})
	if err != nil {
		return err
	}
	// launch/sunset dates bound the availability window
	uc.cache.InvalidateRoom(context.WithoutCancel(ctx), id)
	return nil
}

func (uc *roomCommandsImpl) DeleteRoom(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Rooms().FindByID(ctx, tx.DB(), id); err != nil {
			return notFoundAs(err, errs.ErrRoomNotFound)
		}
		has, err := tx.Rooms().HasAssociations(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if has {
			return errs.ErrRoomHasAssociations
		}
		err = tx.Rooms().Delete(ctx, tx.DB(), id)
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return errs.Mark(err, errs.ErrRoomHasAssociations)
		}
		return notFoundAs(err, errs.ErrRoomNotFound)
	})
}
