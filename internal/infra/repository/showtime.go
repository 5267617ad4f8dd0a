package repository

import (
	"context"

	"room-booking/internal/domain/showtime"
	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	showtimeColumns = `id, room_id, day_of_week, timeslot, start_time, end_time`

	findShowtimeSQL = `SELECT ` + showtimeColumns + ` FROM showtimes WHERE id = $1 FOR UPDATE`

	listShowtimesByRoomSQL = `
SELECT ` + showtimeColumns + ` FROM showtimes
WHERE room_id = $1
ORDER BY day_of_week, timeslot`

	insertShowtimeSQL = `
INSERT INTO showtimes (room_id, day_of_week, timeslot, start_time, end_time)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

	updateShowtimeSQL = `
UPDATE showtimes
SET day_of_week = $2, timeslot = $3, start_time = $4, end_time = $5, updated_at = now()
WHERE id = $1`

	deleteShowtimeSQL = `DELETE FROM showtimes WHERE id = $1`
)

type ShowtimeRepository struct{}

func NewShowtimeRepository() *ShowtimeRepository {
	return &ShowtimeRepository{}
}

func (r *ShowtimeRepository) FindByID(ctx context.Context, tx db.DBTX, id int64) (*showtime.Showtime, error) {
	s, err := ScanShowtime(tx.QueryRow(ctx, findShowtimeSQL, id))
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find showtime", err)
	}
	return s, nil
}

func (r *ShowtimeRepository) ListByRoom(ctx context.Context, tx db.DBTX, roomID int64) ([]*showtime.Showtime, error) {
	rows, err := tx.Query(ctx, listShowtimesByRoomSQL, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list showtimes", err)
	}
	defer rows.Close()

	var list []*showtime.Showtime
	for rows.Next() {
		s, err := ScanShowtime(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan showtime", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate showtimes", err)
	}
	return list, nil
}

func (r *ShowtimeRepository) Create(ctx context.Context, tx db.DBTX, s *showtime.Showtime) (int64, error) {
	start, end, err := clockArgs(s)
	if err != nil {
		return 0, err
	}
	var id int64
	err = tx.QueryRow(ctx, insertShowtimeSQL, s.RoomID(), s.DayOfWeek().Int(), s.Timeslot(), start, end).Scan(&id)
	if err != nil {
		return 0, infra.ClassifyPgErr("failed to create showtime", err)
	}
	return id, nil
}

func (r *ShowtimeRepository) Update(ctx context.Context, tx db.DBTX, s *showtime.Showtime) error {
	start, end, err := clockArgs(s)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, updateShowtimeSQL, s.ID(), s.DayOfWeek().Int(), s.Timeslot(), start, end)
	if err != nil {
		return infra.ClassifyPgErr("failed to update showtime", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("showtime not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ShowtimeRepository) Delete(ctx context.Context, tx db.DBTX, id int64) error {
	return execDelete(ctx, tx, deleteShowtimeSQL, id, "showtime")
}

// ScanShowtime reads a row selected with the showtime column list.
func ScanShowtime(row pgx.Row) (*showtime.Showtime, error) {
	var (
		id, roomID int64
		day        int16
		timeslot   int32
		start, end pgtype.Time
	)
	if err := row.Scan(&id, &roomID, &day, &timeslot, &start, &end); err != nil {
		return nil, err
	}
	dow, err := showtime.NewDayOfWeek(int(day))
	if err != nil {
		return nil, err
	}
	startTime, err := showtime.ParseClockTime(pgconv.ClockFromPgtype(start))
	if err != nil {
		return nil, err
	}
	endTime, err := showtime.ParseClockTime(pgconv.ClockFromPgtype(end))
	if err != nil {
		return nil, err
	}
	return showtime.ReconstructShowtime(id, roomID, dow, int(timeslot), startTime, endTime), nil
}

func clockArgs(s *showtime.Showtime) (pgtype.Time, pgtype.Time, error) {
	start, err := pgconv.ClockToPgtype(s.StartTime().String())
	if err != nil {
		return pgtype.Time{}, pgtype.Time{}, infra.WrapRepoErr("invalid start time", err)
	}
	end, err := pgconv.ClockToPgtype(s.EndTime().String())
	if err != nil {
		return pgtype.Time{}, pgtype.Time{}, infra.WrapRepoErr("invalid end time", err)
	}
	return start, end, nil
}
