package apiclient

import (
	"context"
	"net/http"
	"strconv"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
)

func costPath(id int64) string {
	return "/api/rooms/costs/" + strconv.FormatInt(id, 10)
}

func (c *Client) ListRoomCosts(ctx context.Context, roomID int64) ([]resdto.RoomCostResponse, error) {
	var costs []resdto.RoomCostResponse
	err := c.get(ctx, roomPath(roomID)+"/costs", nil, &costs)
	return costs, err
}

func (c *Client) GetRoomCost(ctx context.Context, id int64) (*resdto.RoomCostResponse, error) {
	var cost resdto.RoomCostResponse
	if err := c.get(ctx, costPath(id), nil, &cost); err != nil {
		return nil, err
	}
	return &cost, nil
}

func (c *Client) CreateRoomCost(ctx context.Context, roomID int64, req reqdto.RoomCostRequest) (*resdto.CreatedResponse, error) {
	var res resdto.CreatedResponse
	if err := c.do(ctx, http.MethodPost, roomPath(roomID)+"/costs", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateRoomCost(ctx context.Context, id int64, req reqdto.RoomCostRequest) (string, error) {
	var res resdto.MessageResponse
	err := c.do(ctx, http.MethodPut, costPath(id), nil, req, &res)
	return res.Message, err
}

func (c *Client) DeleteRoomCost(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, costPath(id), nil, nil, nil)
}
