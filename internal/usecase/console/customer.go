package console

import (
	"context"

	"room-booking/internal/domain/form"
	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/pkg/ptr"
)

type CustomerConsole interface {
	ListCustomers(ctx context.Context) ([]resdto.CustomerResponse, error)
	LoadCustomer(ctx context.Context, id int64) (form.Customer, error)
	SaveCustomer(ctx context.Context, id int64, f form.Customer) Outcome
	DeleteCustomer(ctx context.Context, id int64) error
}

type customerConsoleImpl struct {
	api API
}

func NewCustomerConsole(api API) CustomerConsole {
	return &customerConsoleImpl{api: api}
}

func (uc *customerConsoleImpl) ListCustomers(ctx context.Context) ([]resdto.CustomerResponse, error) {
	return uc.api.ListCustomers(ctx)
}

func (uc *customerConsoleImpl) LoadCustomer(ctx context.Context, id int64) (form.Customer, error) {
	c, err := uc.api.GetCustomer(ctx, id)
	if err != nil {
		return form.Customer{}, err
	}
	return form.Customer{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		IsMinor:   checkbox(c.IsMinor),
		IsBanned:  checkbox(c.IsBanned),
		Notes:     ptr.Deref(c.CustomerNotes),
	}, nil
}

func (uc *customerConsoleImpl) SaveCustomer(ctx context.Context, id int64, f form.Customer) Outcome {
	v, fe := f.Validate()
	if fe.Any() {
		return invalid(fe)
	}
	req := reqdto.CustomerRequest{
		FirstName:     v.FirstName,
		LastName:      v.LastName,
		Email:         v.Email,
		IsMinor:       v.IsMinor,
		IsBanned:      v.IsBanned,
		CustomerNotes: v.Notes,
	}

	if id == 0 {
		created, err := uc.api.CreateCustomer(ctx, req)
		if err != nil {
			return failed(err)
		}
		return Outcome{Message: "Customer created successfully!", ID: created.ID}
	}
	msg, err := uc.api.UpdateCustomer(ctx, id, req)
	if err != nil {
		return failed(err)
	}
	return Outcome{Message: msg}
}

func (uc *customerConsoleImpl) DeleteCustomer(ctx context.Context, id int64) error {
	return uc.api.DeleteCustomer(ctx, id)
}

func checkbox(on bool) string {
	if on {
		return "on"
	}
	return ""
}
