//go:build unit || e2e

package builder

import (
	"room-booking/internal/domain/showtime"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/pkg/ptr"
)

type ShowtimeBuilder struct {
	ID        int64
	RoomID    int64
	DayOfWeek int
	Timeslot  int
	StartTime string
	EndTime   string
}

func NewShowtimeBuilder() *ShowtimeBuilder {
	return &ShowtimeBuilder{
		ID:        1,
		RoomID:    1,
		DayOfWeek: int(showtime.Monday),
		Timeslot:  1,
		StartTime: "10:00",
		EndTime:   "11:00",
	}
}

func (b *ShowtimeBuilder) With(mutate func(*ShowtimeBuilder)) *ShowtimeBuilder {
	mutate(b)
	return b
}

func (b *ShowtimeBuilder) Params() showtime.Params {
	return showtime.Params{
		DayOfWeek: b.DayOfWeek,
		Timeslot:  b.Timeslot,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}
}

func (b *ShowtimeBuilder) BuildDomain() (*showtime.Showtime, error) {
	return showtime.NewShowtime(b.RoomID, b.Params())
}

// BuildStored panics on invalid builder state; use BuildDomain to test validation.
func (b *ShowtimeBuilder) BuildStored() *showtime.Showtime {
	start, err := showtime.ParseClockTime(b.StartTime)
	if err != nil {
		panic(err)
	}
	end, err := showtime.ParseClockTime(b.EndTime)
	if err != nil {
		panic(err)
	}
	return showtime.ReconstructShowtime(b.ID, b.RoomID, showtime.DayOfWeek(b.DayOfWeek), b.Timeslot, start, end)
}

func (b *ShowtimeBuilder) BuildDTO() reqdto.ShowtimeRequest {
	return reqdto.ShowtimeRequest{
		DayOfWeek: ptr.To(b.DayOfWeek),
		Timeslot:  ptr.To(b.Timeslot),
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}
}

func (b *ShowtimeBuilder) On(day showtime.DayOfWeek, timeslot int) *ShowtimeBuilder {
	b.DayOfWeek = int(day)
	b.Timeslot = timeslot
	return b
}

func (b *ShowtimeBuilder) At(start, end string) *ShowtimeBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}
