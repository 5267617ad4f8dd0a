package response

import "room-booking/internal/usecase/queries"

type CustomerResponse struct {
	ID            int64   `json:"id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	IsMinor       bool    `json:"is_minor"`
	IsBanned      bool    `json:"is_banned"`
	CustomerNotes *string `json:"customer_notes"`
}

func FromCustomerViews(views []queries.CustomerView) ([]CustomerResponse, error) {
	list := make([]CustomerResponse, 0, len(views))
	if err := copyInto(&list, views); err != nil {
		return nil, err
	}
	return list, nil
}

func FromCustomerView(v *queries.CustomerView) (CustomerResponse, error) {
	var res CustomerResponse
	if err := copyInto(&res, v); err != nil {
		return CustomerResponse{}, err
	}
	return res, nil
}
