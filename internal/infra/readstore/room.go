package readstore

import (
	"context"

	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	roomColumns = `id, title, max_capacity, min_capacity, duration, reset_buffer, launch_date, sunset_date, description`

	listRoomsSQL = `SELECT ` + roomColumns + ` FROM rooms ORDER BY id`

	findRoomSQL = `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	roomAssociationsSQL = `
SELECT EXISTS (SELECT 1 FROM rooms WHERE id = $1),
       EXISTS (SELECT 1 FROM room_costs WHERE room_id = $1)
    OR EXISTS (SELECT 1 FROM showtimes WHERE room_id = $1)
    OR EXISTS (SELECT 1 FROM bookings WHERE room_id = $1)`
)

type RoomReadStore struct{}

func NewRoomReadStore() *RoomReadStore {
	return &RoomReadStore{}
}

func (r *RoomReadStore) List(ctx context.Context, db db.DBTX) ([]queries.RoomView, error) {
	rows, err := db.Query(ctx, listRoomsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	list, err := collect(rows, scanRoom)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan rooms", err)
	}
	return list, nil
}

func (r *RoomReadStore) FindByID(ctx context.Context, db db.DBTX, id int64) (*queries.RoomView, error) {
	view, err := scanRoom(db.QueryRow(ctx, findRoomSQL, id))
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find room", err)
	}
	return &view, nil
}

// HasAssociations returns NOT_FOUND when the room itself is missing.
func (r *RoomReadStore) HasAssociations(ctx context.Context, db db.DBTX, id int64) (bool, error) {
	var exists, has bool
	if err := db.QueryRow(ctx, roomAssociationsSQL, id).Scan(&exists, &has); err != nil {
		return false, infra.WrapRepoErr("failed to check room associations", err)
	}
	if !exists {
		return false, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return has, nil
}

func scanRoom(row pgx.Row) (queries.RoomView, error) {
	var (
		v                     queries.RoomView
		maxCap, minCap        int32
		duration, resetBuffer int32
		launch, sunset        pgtype.Date
		description           pgtype.Text
	)
	if err := row.Scan(&v.ID, &v.Title, &maxCap, &minCap, &duration, &resetBuffer, &launch, &sunset, &description); err != nil {
		return queries.RoomView{}, err
	}
	v.MaxCapacity = int(maxCap)
	v.MinCapacity = int(minCap)
	v.Duration = int(duration)
	v.ResetBuffer = int(resetBuffer)
	v.LaunchDate = pgconv.DatePtrFromPgtype(launch)
	v.SunsetDate = pgconv.DatePtrFromPgtype(sunset)
	v.Description = pgconv.StringPtrFromPgtype(description)
	return v, nil
}
