package commands

import (
	"context"

	"room-booking/internal/domain/roomcost"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

type RoomCostCommands interface {
	CreateRoomCost(ctx context.Context, roomID int64, p roomcost.Params) (int64, error)
	UpdateRoomCost(ctx context.Context, id int64, p roomcost.Params) error
	DeleteRoomCost(ctx context.Context, id int64) error
}

type roomCostCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRoomCostCommands(uow shared.UnitOfWork) RoomCostCommands {
	return &roomCostCommandsImpl{uow: uow}
}

func (uc *roomCostCommandsImpl) CreateRoomCost(ctx context.Context, roomID int64, p roomcost.Params) (int64, error) {
	c, err := roomcost.NewRoomCost(roomID, p)
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		newID, cerr := tx.RoomCosts().Create(ctx, tx.DB(), c)
		id = newID
		if infra.IsKind(cerr, infra.KindForeignKeyViolated) {
			return errs.Mark(cerr, errs.ErrRoomNotFound)
		}
		return cerr
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (uc *roomCostCommandsImpl) UpdateRoomCost(ctx context.Context, id int64, p roomcost.Params) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.RoomCosts().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, errs.ErrRoomCostNotFound)
		}
		if err := c.Update(p); err != nil {
			return err
		}
		return tx.RoomCosts().Update(ctx, tx.DB(), c)
	})
}

func (uc *roomCostCommandsImpl) DeleteRoomCost(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return notFoundAs(tx.RoomCosts().Delete(ctx, tx.DB(), id), errs.ErrRoomCostNotFound)
	})
}
