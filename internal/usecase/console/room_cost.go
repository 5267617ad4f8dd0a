package console

import (
	"context"
	"strconv"

	"room-booking/internal/domain/form"
	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/pkg/ptr"
)

type RoomCostList struct {
	Room  resdto.RoomResponse
	Costs []resdto.RoomCostResponse
}

type RoomCostConsole interface {
	ListRoomCosts(ctx context.Context, roomID int64) (*RoomCostList, error)
	LoadRoomCost(ctx context.Context, id int64) (form.RoomCost, error)
	SaveRoomCost(ctx context.Context, roomID, id int64, f form.RoomCost) Outcome
	DeleteRoomCost(ctx context.Context, id int64) error
}

type roomCostConsoleImpl struct {
	api API
}

func NewRoomCostConsole(api API) RoomCostConsole {
	return &roomCostConsoleImpl{api: api}
}

func (uc *roomCostConsoleImpl) ListRoomCosts(ctx context.Context, roomID int64) (*RoomCostList, error) {
	room, err := uc.api.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	costs, err := uc.api.ListRoomCosts(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return &RoomCostList{Room: *room, Costs: costs}, nil
}

func (uc *roomCostConsoleImpl) LoadRoomCost(ctx context.Context, id int64) (form.RoomCost, error) {
	c, err := uc.api.GetRoomCost(ctx, id)
	if err != nil {
		return form.RoomCost{}, err
	}
	return form.RoomCost{
		GuestsCount: strconv.Itoa(c.GuestsCount),
		TotalCost:   c.TotalCost,
		StartDate:   ptr.Deref(c.StartDate),
		EndDate:     ptr.Deref(c.EndDate),
	}, nil
}

// SaveRoomCost creates under roomID when id is 0.
func (uc *roomCostConsoleImpl) SaveRoomCost(ctx context.Context, roomID, id int64, f form.RoomCost) Outcome {
	v, fe := f.Validate()
	if fe.Any() {
		return invalid(fe)
	}
	req := reqdto.RoomCostRequest{
		GuestsCount: ptr.To(v.GuestsCount),
		TotalCost:   ptr.To(v.TotalCost),
		StartDate:   v.StartDate,
		EndDate:     v.EndDate,
	}

	if id == 0 {
		res, err := uc.api.CreateRoomCost(ctx, roomID, req)
		if err != nil {
			return failed(err)
		}
		return Outcome{Message: res.Message, ID: res.ID}
	}
	msg, err := uc.api.UpdateRoomCost(ctx, id, req)
	if err != nil {
		return failed(err)
	}
	return Outcome{Message: msg}
}

func (uc *roomCostConsoleImpl) DeleteRoomCost(ctx context.Context, id int64) error {
	return uc.api.DeleteRoomCost(ctx, id)
}
