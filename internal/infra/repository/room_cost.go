package repository

import (
	"context"

	"room-booking/internal/domain/roomcost"
	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const (
	findRoomCostSQL = `
SELECT id, room_id, guests_count, total_cost::text, start_date, end_date
FROM room_costs WHERE id = $1 FOR UPDATE`

	insertRoomCostSQL = `
INSERT INTO room_costs (room_id, guests_count, total_cost, start_date, end_date)
VALUES ($1, $2, $3::numeric, $4, $5)
RETURNING id`

	updateRoomCostSQL = `
UPDATE room_costs
SET guests_count = $2, total_cost = $3::numeric, start_date = $4, end_date = $5, updated_at = now()
WHERE id = $1`

	deleteRoomCostSQL = `DELETE FROM room_costs WHERE id = $1`
)

type RoomCostRepository struct{}

func NewRoomCostRepository() *RoomCostRepository {
	return &RoomCostRepository{}
}

func (r *RoomCostRepository) FindByID(ctx context.Context, tx db.DBTX, id int64) (*roomcost.RoomCost, error) {
	var (
		costID, roomID int64
		guests         int32
		total          string
		start, end     pgtype.Date
	)
	err := tx.QueryRow(ctx, findRoomCostSQL, id).Scan(&costID, &roomID, &guests, &total, &start, &end)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find room cost", err)
	}
	amount, err := decimal.NewFromString(total)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to parse total cost", errs.Wrap(err, total))
	}
	return roomcost.ReconstructRoomCost(costID, roomID, roomcost.Params{
		GuestsCount: int(guests),
		TotalCost:   amount,
		StartDate:   pgconv.DatePtrFromPgtype(start),
		EndDate:     pgconv.DatePtrFromPgtype(end),
	}), nil
}

func (r *RoomCostRepository) Create(ctx context.Context, tx db.DBTX, c *roomcost.RoomCost) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, insertRoomCostSQL,
		c.RoomID(),
		c.GuestsCount(),
		c.TotalCost().StringFixed(roomcost.CostScale),
		pgconv.DatePtrToPgtype(c.StartDate()),
		pgconv.DatePtrToPgtype(c.EndDate()),
	).Scan(&id)
	if err != nil {
		return 0, infra.ClassifyPgErr("failed to create room cost", err)
	}
	return id, nil
}

func (r *RoomCostRepository) Update(ctx context.Context, tx db.DBTX, c *roomcost.RoomCost) error {
	tag, err := tx.Exec(ctx, updateRoomCostSQL,
		c.ID(),
		c.GuestsCount(),
		c.TotalCost().StringFixed(roomcost.CostScale),
		pgconv.DatePtrToPgtype(c.StartDate()),
		pgconv.DatePtrToPgtype(c.EndDate()),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to update room cost", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room cost not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomCostRepository) Delete(ctx context.Context, tx db.DBTX, id int64) error {
	return execDelete(ctx, tx, deleteRoomCostSQL, id, "room cost")
}
