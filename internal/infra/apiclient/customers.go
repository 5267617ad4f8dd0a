package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
)

func customerPath(id int64) string {
	return "/api/customers/" + strconv.FormatInt(id, 10)
}

func (c *Client) ListCustomers(ctx context.Context) ([]resdto.CustomerResponse, error) {
	var list []resdto.CustomerResponse
	err := c.get(ctx, "/api/customers", nil, &list)
	return list, err
}

// FindCustomerByEmail fails with a 404 APIError when nobody uses the address.
func (c *Client) FindCustomerByEmail(ctx context.Context, email string) (*resdto.CustomerResponse, error) {
	var found resdto.CustomerResponse
	if err := c.get(ctx, "/api/customers", url.Values{"email": {email}}, &found); err != nil {
		return nil, err
	}
	return &found, nil
}

func (c *Client) GetCustomer(ctx context.Context, id int64) (*resdto.CustomerResponse, error) {
	var found resdto.CustomerResponse
	if err := c.get(ctx, customerPath(id), nil, &found); err != nil {
		return nil, err
	}
	return &found, nil
}

func (c *Client) CreateCustomer(ctx context.Context, req reqdto.CustomerRequest) (*resdto.CustomerResponse, error) {
	var created resdto.CustomerResponse
	if err := c.do(ctx, http.MethodPost, "/api/customers", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id int64, req reqdto.CustomerRequest) (string, error) {
	var res resdto.MessageResponse
	err := c.do(ctx, http.MethodPut, customerPath(id), nil, req, &res)
	return res.Message, err
}

func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, customerPath(id), nil, nil, nil)
}
