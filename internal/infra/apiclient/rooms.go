package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
)

func roomPath(id int64) string {
	return "/api/rooms/" + strconv.FormatInt(id, 10)
}

func (c *Client) ListRooms(ctx context.Context) ([]resdto.RoomResponse, error) {
	var rooms []resdto.RoomResponse
	err := c.get(ctx, "/api/rooms", nil, &rooms)
	return rooms, err
}

func (c *Client) GetRoom(ctx context.Context, id int64) (*resdto.RoomResponse, error) {
	var room resdto.RoomResponse
	if err := c.get(ctx, roomPath(id), nil, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (c *Client) CreateRoom(ctx context.Context, req reqdto.RoomRequest) (*resdto.CreatedResponse, error) {
	var res resdto.CreatedResponse
	if err := c.do(ctx, http.MethodPost, "/api/rooms", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateRoom(ctx context.Context, id int64, req reqdto.RoomRequest) (string, error) {
	var res resdto.MessageResponse
	err := c.do(ctx, http.MethodPut, roomPath(id), nil, req, &res)
	return res.Message, err
}

func (c *Client) DeleteRoom(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, roomPath(id), nil, nil, nil)
}

func (c *Client) RoomAssociations(ctx context.Context, id int64) (bool, error) {
	var res resdto.AssociationsResponse
	err := c.get(ctx, roomPath(id)+"/associations", nil, &res)
	return res.HasAssociations, err
}

// AvailableDates returns YYYY-MM-DD strings; month (YYYY-MM) may be empty for the default window.
func (c *Client) AvailableDates(ctx context.Context, roomID int64, month string) ([]string, error) {
	var query url.Values
	if month != "" {
		query = url.Values{"month": {month}}
	}
	var dates []string
	err := c.get(ctx, roomPath(roomID)+"/availability", query, &dates)
	return dates, err
}

func (c *Client) Timeslots(ctx context.Context, roomID int64, date string) ([]resdto.TimeslotResponse, error) {
	var slots []resdto.TimeslotResponse
	err := c.get(ctx, roomPath(roomID)+"/timeslots", url.Values{"date": {date}}, &slots)
	return slots, err
}
