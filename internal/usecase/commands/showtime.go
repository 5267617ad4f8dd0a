package commands

import (
	"context"

	"room-booking/internal/domain/showtime"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

type ShowtimeCommands interface {
	CreateShowtime(ctx context.Context, roomID int64, p showtime.Params) (int64, error)
	UpdateShowtime(ctx context.Context, id int64, p showtime.Params) error
	DeleteShowtime(ctx context.Context, id int64) error
}

type showtimeCommandsImpl struct {
	uow   shared.UnitOfWork
	cache AvailabilityInvalidator
}

func NewShowtimeCommands(uow shared.UnitOfWork, cache AvailabilityInvalidator) ShowtimeCommands {
	return &showtimeCommandsImpl{uow: uow, cache: cache}
}

func (uc *showtimeCommandsImpl) CreateShowtime(ctx context.Context, roomID int64, p showtime.Params) (int64, error) {
	s, err := showtime.NewShowtime(roomID, p)
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		newID, cerr := tx.Showtimes().Create(ctx, tx.DB(), s)
		id = newID
		return showtimeWriteErr(cerr)
	})
	if err != nil {
		return 0, err
	}
	uc.cache.InvalidateRoom(context.WithoutCancel(ctx), roomID)
	return id, nil
}

func (uc *showtimeCommandsImpl) UpdateShowtime(ctx context.Context, id int64, p showtime.Params) error {
	var roomID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Showtimes().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, errs.ErrShowtimeNotFound)
		}
		if err := s.Update(p); err != nil {
			return err
		}
		roomID = s.RoomID()
		return showtimeWriteErr(tx.Showtimes().Update(ctx, tx.DB(), s))
	})
	if err != nil {
		return err
	}
	uc.cache.InvalidateRoom(context.WithoutCancel(ctx), roomID)
	return nil
}

func (uc *showtimeCommandsImpl) DeleteShowtime(ctx context.Context, id int64) error {
	var roomID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Showtimes().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, errs.ErrShowtimeNotFound)
		}
		roomID = s.RoomID()
		return notFoundAs(tx.Showtimes().Delete(ctx, tx.DB(), id), errs.ErrShowtimeNotFound)
	})
	if err != nil {
		return err
	}
	uc.cache.InvalidateRoom(context.WithoutCancel(ctx), roomID)
	return nil
}

func showtimeWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrDuplicateShowtime)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrRoomNotFound)
	default:
		return err
	}
}
