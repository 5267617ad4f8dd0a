package request

import (
	"room-booking/internal/domain/roomcost"
	"room-booking/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type RoomCostRequest struct {
	GuestsCount *int             `json:"guests_count"`
	TotalCost   *decimal.Decimal `json:"total_cost" swaggertype:"string" example:"120.00"`
	StartDate   *string          `json:"start_date,omitempty"`
	EndDate     *string          `json:"end_date,omitempty"`
}

func (r RoomCostRequest) ToParams() (roomcost.Params, error) {
	var (
		p   roomcost.Params
		err error
	)
	if p.GuestsCount, err = requiredInt(r.GuestsCount, "Guest count"); err != nil {
		return roomcost.Params{}, err
	}
	if r.TotalCost == nil {
		return roomcost.Params{}, errs.Validation("Total cost is required")
	}
	p.TotalCost = *r.TotalCost
	if p.StartDate, err = optionalDate(r.StartDate, "Start date"); err != nil {
		return roomcost.Params{}, err
	}
	if p.EndDate, err = optionalDate(r.EndDate, "End date"); err != nil {
		return roomcost.Params{}, err
	}
	return p, nil
}
