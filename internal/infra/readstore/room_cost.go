package readstore

import (
	"context"

	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const (
	roomCostColumns = `id, room_id, guests_count, total_cost::text, start_date, end_date`

	listRoomCostsSQL = `SELECT ` + roomCostColumns + ` FROM room_costs WHERE room_id = $1 ORDER BY guests_count, id`

	findRoomCostSQL = `SELECT ` + roomCostColumns + ` FROM room_costs WHERE id = $1`
)

type RoomCostReadStore struct{}

func NewRoomCostReadStore() *RoomCostReadStore {
	return &RoomCostReadStore{}
}

func (r *RoomCostReadStore) ListByRoom(ctx context.Context, db db.DBTX, roomID int64) ([]queries.RoomCostView, error) {
	rows, err := db.Query(ctx, listRoomCostsSQL, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room costs", err)
	}
	list, err := collect(rows, scanRoomCost)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan room costs", err)
	}
	return list, nil
}

func (r *RoomCostReadStore) FindByID(ctx context.Context, db db.DBTX, id int64) (*queries.RoomCostView, error) {
	view, err := scanRoomCost(db.QueryRow(ctx, findRoomCostSQL, id))
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find room cost", err)
	}
	return &view, nil
}

func scanRoomCost(row pgx.Row) (queries.RoomCostView, error) {
	var (
		v          queries.RoomCostView
		guests     int32
		total      string
		start, end pgtype.Date
	)
	if err := row.Scan(&v.ID, &v.RoomID, &guests, &total, &start, &end); err != nil {
		return queries.RoomCostView{}, err
	}
	amount, err := decimal.NewFromString(total)
	if err != nil {
		return queries.RoomCostView{}, err
	}
	v.GuestsCount = int(guests)
	v.TotalCost = amount
	v.StartDate = pgconv.DatePtrFromPgtype(start)
	v.EndDate = pgconv.DatePtrFromPgtype(end)
	return v, nil
}
