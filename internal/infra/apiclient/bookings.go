package apiclient

import (
	"context"
	"net/http"
	"strconv"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
)

func bookingPath(id int64) string {
	return "/api/bookings/" + strconv.FormatInt(id, 10)
}

func (c *Client) ListBookings(ctx context.Context) ([]resdto.BookingResponse, error) {
	var list []resdto.BookingResponse
	err := c.get(ctx, "/api/bookings", nil, &list)
	return list, err
}

func (c *Client) GetBooking(ctx context.Context, id int64) (*resdto.BookingResponse, error) {
	var found resdto.BookingResponse
	if err := c.get(ctx, bookingPath(id), nil, &found); err != nil {
		return nil, err
	}
	return &found, nil
}

func (c *Client) CreateBooking(ctx context.Context, req reqdto.BookingRequest) (*resdto.BookingCreatedResponse, error) {
	var res resdto.BookingCreatedResponse
	if err := c.do(ctx, http.MethodPost, "/api/bookings", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateBooking(ctx context.Context, id int64, req reqdto.BookingRequest) (string, error) {
	var res resdto.MessageResponse
	err := c.do(ctx, http.MethodPut, bookingPath(id), nil, req, &res)
	return res.Message, err
}

func (c *Client) DeleteBooking(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, bookingPath(id), nil, nil, nil)
}
