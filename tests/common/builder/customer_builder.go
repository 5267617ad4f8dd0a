//go:build unit || e2e

package builder

import (
	"room-booking/internal/domain/customer"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/usecase/queries"
)

type CustomerBuilder struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	IsMinor   bool
	IsBanned  bool
	Notes     *string
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:        1,
		FirstName: "Hanako",
		LastName:  "Yamada",
		Email:     "hanako@example.com",
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

func (b *CustomerBuilder) Params() customer.Params {
	return customer.Params{
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Email:     b.Email,
		IsMinor:   b.IsMinor,
		IsBanned:  b.IsBanned,
		Notes:     b.Notes,
	}
}

func (b *CustomerBuilder) BuildDomain() (*customer.Customer, error) {
	return customer.NewCustomer(b.Params())
}

func (b *CustomerBuilder) BuildStored() *customer.Customer {
	return customer.ReconstructCustomer(b.ID, b.Params())
}

func (b *CustomerBuilder) BuildView() queries.CustomerView {
	return queries.CustomerView{
		ID:            b.ID,
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		Email:         b.Email,
		IsMinor:       b.IsMinor,
		IsBanned:      b.IsBanned,
		CustomerNotes: b.Notes,
	}
}

func (b *CustomerBuilder) BuildDTO() reqdto.CustomerRequest {
	return reqdto.CustomerRequest{
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		Email:         b.Email,
		IsMinor:       b.IsMinor,
		IsBanned:      b.IsBanned,
		CustomerNotes: b.Notes,
	}
}

func (b *CustomerBuilder) WithEmail(email string) *CustomerBuilder {
	b.Email = email
	return b
}

func (b *CustomerBuilder) AsBanned() *CustomerBuilder {
	b.IsBanned = true
	return b
}
