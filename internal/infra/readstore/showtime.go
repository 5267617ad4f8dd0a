package readstore

import (
	"context"

	"room-booking/internal/domain/showtime"
	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/infra/repository"
)

const (
	showtimeColumns = `id, room_id, day_of_week, timeslot, start_time, end_time`

	listShowtimesSQL = `SELECT ` + showtimeColumns + ` FROM showtimes WHERE room_id = $1 ORDER BY day_of_week, timeslot`

	findShowtimeSQL = `SELECT ` + showtimeColumns + ` FROM showtimes WHERE id = $1`
)

// ShowtimeReadStore returns domain showtimes so availability can be computed from them directly.
type ShowtimeReadStore struct{}

func NewShowtimeReadStore() *ShowtimeReadStore {
	return &ShowtimeReadStore{}
}

func (r *ShowtimeReadStore) ListByRoom(ctx context.Context, db db.DBTX, roomID int64) ([]*showtime.Showtime, error) {
	rows, err := db.Query(ctx, listShowtimesSQL, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list showtimes", err)
	}
	list, err := collect(rows, repository.ScanShowtime)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan showtimes", err)
	}
	return list, nil
}

func (r *ShowtimeReadStore) FindByID(ctx context.Context, db db.DBTX, id int64) (*showtime.Showtime, error) {
	s, err := repository.ScanShowtime(db.QueryRow(ctx, findShowtimeSQL, id))
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find showtime", err)
	}
	return s, nil
}
