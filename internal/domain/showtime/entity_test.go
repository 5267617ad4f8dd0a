//go:build unit

package showtime_test

import (
	"testing"
	"time"

	"room-booking/internal/domain/showtime"
	"room-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShowtime(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*builder.ShowtimeBuilder)
		errIs  error
	}{
		{name: "success", mutate: func(b *builder.ShowtimeBuilder) {}},
		{name: "success: Sunday", mutate: func(b *builder.ShowtimeBuilder) { b.On(showtime.Sunday, 3) }},
		{name: "success: seconds accepted", mutate: func(b *builder.ShowtimeBuilder) { b.At("10:00:00", "11:30:00") }},
		{name: "error: day 7", mutate: func(b *builder.ShowtimeBuilder) { b.DayOfWeek = 7 }, errIs: showtime.ErrInvalidDayOfWeek},
		{name: "error: day -1", mutate: func(b *builder.ShowtimeBuilder) { b.DayOfWeek = -1 }, errIs: showtime.ErrInvalidDayOfWeek},
		{name: "error: timeslot 0", mutate: func(b *builder.ShowtimeBuilder) { b.Timeslot = 0 }, errIs: showtime.ErrInvalidTimeslot},
		{name: "error: bad clock", mutate: func(b *builder.ShowtimeBuilder) { b.At("25:00", "26:00") }, errIs: showtime.ErrInvalidClockTime},
		{name: "error: end equals start", mutate: func(b *builder.ShowtimeBuilder) { b.At("10:00", "10:00") }, errIs: showtime.ErrEndBeforeStart},
		{name: "error: no room", mutate: func(b *builder.ShowtimeBuilder) { b.RoomID = 0 }, errIs: showtime.ErrMissingRoom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := builder.NewShowtimeBuilder().With(tt.mutate).BuildDomain()
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, s.StartTime().Before(s.EndTime()))
		})
	}
}

func TestDayOf(t *testing.T) {
	// 2025-01-20 is a Monday
	monday := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	for i, want := range []showtime.DayOfWeek{
		showtime.Monday, showtime.Tuesday, showtime.Wednesday, showtime.Thursday,
		showtime.Friday, showtime.Saturday, showtime.Sunday,
	} {
		assert.Equal(t, want, showtime.DayOf(monday.AddDate(0, 0, i)))
	}
	assert.Equal(t, "Sunday", showtime.Sunday.String())
	assert.Equal(t, "Unknown", showtime.DayOfWeek(9).String())
}

func TestClockTimeString(t *testing.T) {
	c, err := showtime.ParseClockTime("09:05:00")
	require.NoError(t, err)
	assert.Equal(t, "09:05", c.String())
	assert.Equal(t, 9*60+5, c.Minutes())
}

func TestSortByWeek(t *testing.T) {
	list := []*showtime.Showtime{
		builder.NewShowtimeBuilder().On(showtime.Friday, 1).BuildStored(),
		builder.NewShowtimeBuilder().On(showtime.Monday, 2).BuildStored(),
		builder.NewShowtimeBuilder().On(showtime.Monday, 1).BuildStored(),
	}
	showtime.SortByWeek(list)

	got := make([][2]int, 0, len(list))
	for _, s := range list {
		got = append(got, [2]int{s.DayOfWeek().Int(), s.Timeslot()})
	}
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {4, 1}}, got)
}
