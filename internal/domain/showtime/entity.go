package showtime

import (
	"sort"

	"room-booking/internal/pkg/errs"
)

var (
	ErrMissingRoom     = errs.Validation("Room is required")
	ErrInvalidTimeslot = errs.Validation("Timeslot must be a positive integer")
	ErrEndBeforeStart  = errs.Validation("End time must be after start time")
)

type Params struct {
	DayOfWeek int
	Timeslot  int
	StartTime string
	EndTime   string
}

// Showtime is a weekly schedule entry of a room. Timeslot numbers are unique per room and weekday.
type Showtime struct {
	id        int64
	roomID    int64
	dayOfWeek DayOfWeek
	timeslot  int
	startTime ClockTime
	endTime   ClockTime
}

func NewShowtime(roomID int64, p Params) (*Showtime, error) {
	if roomID <= 0 {
		return nil, ErrMissingRoom
	}
	s := &Showtime{roomID: roomID}
	if err := s.apply(p); err != nil {
		return nil, err
	}
	return s, nil
}

func ReconstructShowtime(id, roomID int64, day DayOfWeek, timeslot int, start, end ClockTime) *Showtime {
	return &Showtime{
		id:        id,
		roomID:    roomID,
		dayOfWeek: day,
		timeslot:  timeslot,
		startTime: start,
		endTime:   end,
	}
}

func (s *Showtime) Update(p Params) error {
	next := *s
	if err := next.apply(p); err != nil {
		return err
	}
	*s = next
	return nil
}

func (s *Showtime) apply(p Params) error {
	day, err := NewDayOfWeek(p.DayOfWeek)
	if err != nil {
		return err
	}
	if p.Timeslot <= 0 {
		return ErrInvalidTimeslot
	}
	start, err := ParseClockTime(p.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseClockTime(p.EndTime)
	if err != nil {
		return err
	}
	if !start.Before(end) {
		return ErrEndBeforeStart
	}
	s.dayOfWeek = day
	s.timeslot = p.Timeslot
	s.startTime = start
	s.endTime = end
	return nil
}

func (s *Showtime) ID() int64            { return s.id }
func (s *Showtime) RoomID() int64        { return s.roomID }
func (s *Showtime) DayOfWeek() DayOfWeek { return s.dayOfWeek }
func (s *Showtime) Timeslot() int        { return s.timeslot }
func (s *Showtime) StartTime() ClockTime { return s.startTime }
func (s *Showtime) EndTime() ClockTime   { return s.endTime }

// SortByWeek orders showtimes by weekday, then timeslot.
func SortByWeek(list []*Showtime) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].dayOfWeek != list[j].dayOfWeek {
			return list[i].dayOfWeek < list[j].dayOfWeek
		}
		return list[i].timeslot < list[j].timeslot
	})
}
