package apiclient

import (
	"context"
	"net/http"
	"strconv"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
)

func showtimePath(id int64) string {
	return "/api/showtimes/" + strconv.FormatInt(id, 10)
}

func (c *Client) ListShowtimes(ctx context.Context, roomID int64) ([]resdto.ShowtimeResponse, error) {
	var list []resdto.ShowtimeResponse
	err := c.get(ctx, roomPath(roomID)+"/showtimes", nil, &list)
	return list, err
}

func (c *Client) GetShowtime(ctx context.Context, id int64) (*resdto.ShowtimeResponse, error) {
	var st resdto.ShowtimeResponse
	if err := c.get(ctx, showtimePath(id), nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *Client) CreateShowtime(ctx context.Context, roomID int64, req reqdto.ShowtimeRequest) (*resdto.CreatedResponse, error) {
	var res resdto.CreatedResponse
	if err := c.do(ctx, http.MethodPost, roomPath(roomID)+"/showtimes", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateShowtime(ctx context.Context, id int64, req reqdto.ShowtimeRequest) (string, error) {
	var res resdto.MessageResponse
	err := c.do(ctx, http.MethodPut, showtimePath(id), nil, req, &res)
	return res.Message, err
}

func (c *Client) DeleteShowtime(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, showtimePath(id), nil, nil, nil)
}
