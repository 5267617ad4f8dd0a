package request

import (
	"room-booking/internal/domain/room"
)

type RoomRequest struct {
	Title       string  `json:"title"`
	MaxCapacity *int    `json:"max_capacity"`
	MinCapacity *int    `json:"min_capacity"`
	Duration    *int    `json:"duration"`
	ResetBuffer *int    `json:"reset_buffer"`
	LaunchDate  *string `json:"launch_date,omitempty"`
	SunsetDate  *string `json:"sunset_date,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r RoomRequest) ToParams() (room.Params, error) {
	var (
		p   room.Params
		err error
	)
	p.Title = r.Title
	if p.MaxCapacity, err = requiredInt(r.MaxCapacity, "Max Capacity"); err != nil {
		return room.Params{}, err
	}
	if p.MinCapacity, err = requiredInt(r.MinCapacity, "Min Capacity"); err != nil {
		return room.Params{}, err
	}
	if p.Duration, err = requiredInt(r.Duration, "Duration"); err != nil {
		return room.Params{}, err
	}
	if p.ResetBuffer, err = requiredInt(r.ResetBuffer, "Reset Buffer"); err != nil {
		return room.Params{}, err
	}
	if p.LaunchDate, err = optionalDate(r.LaunchDate, "Launch Date"); err != nil {
		return room.Params{}, err
	}
	if p.SunsetDate, err = optionalDate(r.SunsetDate, "Sunset Date"); err != nil {
		return room.Params{}, err
	}
	p.Description = r.Description
	return p, nil
}
