package request

import (
	"room-booking/internal/domain/showtime"
	"room-booking/internal/pkg/errs"
)

type ShowtimeRequest struct {
	DayOfWeek *int   `json:"day_of_week" example:"0"`
	Timeslot  *int   `json:"timeslot" example:"1"`
	StartTime string `json:"start_time" example:"10:00"`
	EndTime   string `json:"end_time" example:"11:00"`
}

func (r ShowtimeRequest) ToParams() (showtime.Params, error) {
	var (
		p   showtime.Params
		err error
	)
	if p.DayOfWeek, err = requiredInt(r.DayOfWeek, "Day of week"); err != nil {
		return showtime.Params{}, err
	}
	if p.Timeslot, err = requiredInt(r.Timeslot, "Timeslot"); err != nil {
		return showtime.Params{}, err
	}
	if r.StartTime == "" {
		return showtime.Params{}, errs.Validation("Start time is required")
	}
	if r.EndTime == "" {
		return showtime.Params{}, errs.Validation("End time is required")
	}
	p.StartTime = r.StartTime
	p.EndTime = r.EndTime
	return p, nil
}
