package queries

import (
	"context"

	"room-booking/internal/domain/showtime"
	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

type ShowtimeReadStore interface {
	ListByRoom(ctx context.Context, db db.DBTX, roomID int64) ([]*showtime.Showtime, error)
	FindByID(ctx context.Context, db db.DBTX, id int64) (*showtime.Showtime, error)
}

type ShowtimeQueries interface {
	ListShowtimes(ctx context.Context, roomID int64) ([]ShowtimeView, error)
	GetShowtime(ctx context.Context, id int64) (*ShowtimeView, error)
}

type showtimeQueriesImpl struct {
	uow       shared.UnitOfWork
	rooms     RoomReadStore
	readStore ShowtimeReadStore
}

func NewShowtimeQueries(uow shared.UnitOfWork, rooms RoomReadStore, readStore ShowtimeReadStore) ShowtimeQueries {
	return &showtimeQueriesImpl{uow: uow, rooms: rooms, readStore: readStore}
}

// ListShowtimes orders the weekly schedule Monday first, then by timeslot.
func (q *showtimeQueriesImpl) ListShowtimes(ctx context.Context, roomID int64) ([]ShowtimeView, error) {
	var list []*showtime.Showtime
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db db.DBTX) error {
		if _, err := q.rooms.FindByID(ctx, db, roomID); err != nil {
			return notFoundAs(err, errs.ErrRoomNotFound)
		}
		var err error
		list, err = q.readStore.ListByRoom(ctx, db, roomID)
		return err
	})
	if err != nil {
		return nil, err
	}

	showtime.SortByWeek(list)
	views := make([]ShowtimeView, 0, len(list))
	for _, s := range list {
		views = append(views, toShowtimeView(s))
	}
	return views, nil
}

func (q *showtimeQueriesImpl) GetShowtime(ctx context.Context, id int64) (*ShowtimeView, error) {
	var s *showtime.Showtime
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		s, err = q.readStore.FindByID(ctx, db, id)
		return notFoundAs(err, errs.ErrShowtimeNotFound)
	})
	if err != nil {
		return nil, err
	}
	view := toShowtimeView(s)
	return &view, nil
}

func toShowtimeView(s *showtime.Showtime) ShowtimeView {
	return ShowtimeView{
		ID:        s.ID(),
		RoomID:    s.RoomID(),
		DayOfWeek: s.DayOfWeek().Int(),
		DayName:   s.DayOfWeek().String(),
		Timeslot:  s.Timeslot(),
		StartTime: s.StartTime().String(),
		EndTime:   s.EndTime().String(),
	}
}
