package roomcost

import (
	"time"

	"room-booking/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingRoom        = errs.Validation("Room is required")
	ErrInvalidGuestsCount = errs.Validation("Guest count must be a positive integer")
	ErrNegativeTotalCost  = errs.Validation("Total cost must not be negative")
	ErrEndBeforeStart     = errs.Validation("End date must not be before start date")
)

// CostScale is the number of decimal places stored for total_cost.
const CostScale = 2

type Params struct {
	GuestsCount int
	TotalCost   decimal.Decimal
	StartDate   *time.Time
	EndDate     *time.Time
}

type RoomCost struct {
	id          int64
	roomID      int64
	guestsCount int
	totalCost   decimal.Decimal
	startDate   *time.Time
	endDate     *time.Time
}

func NewRoomCost(roomID int64, p Params) (*RoomCost, error) {
	if roomID <= 0 {
		return nil, ErrMissingRoom
	}
	c := &RoomCost{roomID: roomID}
	if err := c.apply(p); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructRoomCost(id, roomID int64, p Params) *RoomCost {
	return &RoomCost{
		id:          id,
		roomID:      roomID,
		guestsCount: p.GuestsCount,
		totalCost:   p.TotalCost,
		startDate:   p.StartDate,
		endDate:     p.EndDate,
	}
}

func (c *RoomCost) Update(p Params) error {
	next := *c
	if err := next.apply(p); err != nil {
		return err
	}
	*c = next
	return nil
}

func (c *RoomCost) apply(p Params) error {
	if p.GuestsCount <= 0 {
		return ErrInvalidGuestsCount
	}
	if p.TotalCost.IsNegative() {
		return ErrNegativeTotalCost
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return ErrEndBeforeStart
	}
	c.guestsCount = p.GuestsCount
	c.totalCost = p.TotalCost.Round(CostScale)
	c.startDate = p.StartDate
	c.endDate = p.EndDate
	return nil
}

func (c *RoomCost) ID() int64                  { return c.id }
func (c *RoomCost) RoomID() int64              { return c.roomID }
func (c *RoomCost) GuestsCount() int           { return c.guestsCount }
func (c *RoomCost) TotalCost() decimal.Decimal { return c.totalCost }
func (c *RoomCost) StartDate() *time.Time      { return c.startDate }
func (c *RoomCost) EndDate() *time.Time        { return c.endDate }
