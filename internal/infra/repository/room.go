package repository

import (
	"context"

	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	findRoomForUpdateSQL = `
SELECT id, title, max_capacity, min_capacity, duration, reset_buffer, launch_date, sunset_date, description
FROM rooms WHERE id = $1 FOR UPDATE`

	insertRoomSQL = `
INSERT INTO rooms (title, max_capacity, min_capacity, duration, reset_buffer, launch_date, sunset_date, description)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

	updateRoomSQL = `
UPDATE rooms
SET title = $2, max_capacity = $3, min_capacity = $4, duration = $5, reset_buffer = $6,
    launch_date = $7, sunset_date = $8, description = $9, updated_at = now()
WHERE id = $1`

	deleteRoomSQL = `DELETE FROM rooms WHERE id = $1`

	roomHasAssociationsSQL = `
SELECT EXISTS (SELECT 1 FROM room_costs WHERE room_id = $1)
    OR EXISTS (SELECT 1 FROM showtimes WHERE room_id = $1)
    OR EXISTS (SELECT 1 FROM bookings WHERE room_id = $1)`
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

// FindByID locks the row for the rest of the transaction.
func (r *RoomRepository) FindByID(ctx context.Context, tx db.DBTX, id int64) (*room.Room, error) {
	var (
		roomID                int64
		p                     room.Params
		launchDate, sunset    pgtype.Date
		description           pgtype.Text
		maxCap, minCap        int32
		duration, resetBuffer int32
	)
	err := tx.QueryRow(ctx, findRoomForUpdateSQL, id).Scan(
		&roomID, &p.Title, &maxCap, &minCap, &duration, &resetBuffer, &launchDate, &sunset, &description,
	)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find room", err)
	}
	p.MaxCapacity = int(maxCap)
	p.MinCapacity = int(minCap)
	p.Duration = int(duration)
	p.ResetBuffer = int(resetBuffer)
	p.LaunchDate = pgconv.DatePtrFromPgtype(launchDate)
	p.SunsetDate = pgconv.DatePtrFromPgtype(sunset)
	p.Description = pgconv.StringPtrFromPgtype(description)
	return room.ReconstructRoom(roomID, p), nil
}

func (r *RoomRepository) Create(ctx context.Context, tx db.DBTX, rm *room.Room) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, insertRoomSQL,
		rm.Title(),
		rm.MaxCapacity(),
		rm.MinCapacity(),
		rm.Duration(),
		rm.ResetBuffer(),
		pgconv.DatePtrToPgtype(rm.LaunchDate()),
		pgconv.DatePtrToPgtype(rm.SunsetDate()),
		pgconv.StringPtrToPgtype(rm.Description()),
	).Scan(&id)
	if err != nil {
		return 0, infra.ClassifyPgErr("failed to create room", err)
	}
	return id, nil
}

func (r *RoomRepository) Update(ctx context.Context, tx db.DBTX, rm *room.Room) error {
	tag, err := tx.Exec(ctx, updateRoomSQL,
		rm.ID(),
		rm.Title(),
		rm.MaxCapacity(),
		rm.MinCapacity(),
		rm.Duration(),
		rm.ResetBuffer(),
		pgconv.DatePtrToPgtype(rm.LaunchDate()),
		pgconv.DatePtrToPgtype(rm.SunsetDate()),
		pgconv.StringPtrToPgtype(rm.Description()),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, tx db.DBTX, id int64) error {
	return execDelete(ctx, tx, deleteRoomSQL, id, "room")
}

// HasAssociations reports whether costs, showtimes or bookings still reference the room.
func (r *RoomRepository) HasAssociations(ctx context.Context, tx db.DBTX, id int64) (bool, error) {
	var has bool
	if err := tx.QueryRow(ctx, roomHasAssociationsSQL, id).Scan(&has); err != nil {
		return false, infra.WrapRepoErr("failed to check room associations", err)
	}
	return has, nil
}

func execDelete(ctx context.Context, tx db.DBTX, sql string, id int64, entity string) error {
	tag, err := tx.Exec(ctx, sql, id)
	if err != nil {
		return infra.ClassifyPgErr("failed to delete "+entity, err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(entity+" not found", nil, infra.KindNotFound)
	}
	return nil
}
