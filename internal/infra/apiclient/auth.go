package apiclient

import (
	"context"
	"net/http"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
)

func (c *Client) Login(ctx context.Context, req reqdto.LoginRequest) (string, error) {
	var res resdto.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, req, &res); err != nil {
		return "", err
	}
	return res.AccessToken, nil
}

func (c *Client) Register(ctx context.Context, req reqdto.RegisterRequest) (string, error) {
	var res resdto.MessageResponse
	err := c.do(ctx, http.MethodPost, "/register", nil, req, &res)
	return res.Message, err
}
