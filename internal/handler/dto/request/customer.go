package request

import (
	"room-booking/internal/domain/customer"
)

type CustomerRequest struct {
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	IsMinor       bool    `json:"is_minor"`
	IsBanned      bool    `json:"is_banned"`
	CustomerNotes *string `json:"customer_notes,omitempty"`
}

func (r CustomerRequest) ToParams() customer.Params {
	return customer.Params{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		IsMinor:   r.IsMinor,
		IsBanned:  r.IsBanned,
		Notes:     r.CustomerNotes,
	}
}
