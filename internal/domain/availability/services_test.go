//go:build unit

package availability_test

import (
	"testing"
	"time"

	"room-booking/internal/domain/availability"
	"room-booking/internal/domain/showtime"
	"room-booking/internal/pkg/ptr"
	"room-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

func weeklySchedule() []*showtime.Showtime {
	return []*showtime.Showtime{
		builder.NewShowtimeBuilder().On(showtime.Monday, 2).At("12:00", "13:00").BuildStored(),
		builder.NewShowtimeBuilder().On(showtime.Monday, 1).BuildStored(),
		builder.NewShowtimeBuilder().On(showtime.Wednesday, 1).BuildStored(),
	}
}

func TestAvailableDates(t *testing.T) {
	window := availability.Window{From: day(1, 20), To: day(1, 22)}

	t.Run("no bookings", func(t *testing.T) {
		got := availability.AvailableDates(weeklySchedule(), availability.Booked{}, window)
		assert.Equal(t, []string{"2025-01-20", "2025-01-22"}, got)
	})

	t.Run("partly booked day is available", func(t *testing.T) {
		booked := availability.Booked{}
		booked.Add(day(1, 20), 1)
		booked.Add(day(1, 22), 1)

		got := availability.AvailableDates(weeklySchedule(), booked, window)
		assert.Equal(t, []string{"2025-01-20"}, got)
	})

	t.Run("no schedule", func(t *testing.T) {
		got := availability.AvailableDates(nil, availability.Booked{}, window)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestTimeslotsOn(t *testing.T) {
	booked := availability.Booked{}
	booked.Add(day(1, 20), 1)

	slots := availability.TimeslotsOn(weeklySchedule(), booked, day(1, 20))
	require.Len(t, slots, 2)

	assert.Equal(t, 1, slots[0].Showtime.Timeslot())
	assert.True(t, slots[0].IsBooked)
	assert.Equal(t, 2, slots[1].Showtime.Timeslot())
	assert.False(t, slots[1].IsBooked)

	// the same weekday one week later is unaffected
	next := availability.TimeslotsOn(weeklySchedule(), booked, day(1, 27))
	require.Len(t, next, 2)
	assert.False(t, next[0].IsBooked)

	assert.Empty(t, availability.TimeslotsOn(weeklySchedule(), booked, day(1, 21)))
}

func TestOffers(t *testing.T) {
	assert.True(t, availability.Offers(weeklySchedule(), day(1, 22), 1))
	assert.False(t, availability.Offers(weeklySchedule(), day(1, 22), 2))
	assert.False(t, availability.Offers(weeklySchedule(), day(1, 21), 1))
}

func TestWindows(t *testing.T) {
	today := day(1, 15)

	t.Run("NextDays", func(t *testing.T) {
		w := availability.NextDays(today, 30)
		assert.Equal(t, today, w.From)
		assert.Equal(t, day(2, 14), w.To)
		assert.Len(t, w.Days(), 31)
	})

	t.Run("current month runs from today to month end", func(t *testing.T) {
		w, ok := availability.MonthOf(day(1, 1), today)
		require.True(t, ok)
		assert.Equal(t, today, w.From)
		assert.Equal(t, day(1, 31), w.To)
	})

	t.Run("past month is out of range", func(t *testing.T) {
		_, ok := availability.MonthOf(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), today)
		assert.False(t, ok)
	})

	t.Run("clipped to the open period", func(t *testing.T) {
		w := availability.Window{From: day(1, 1), To: day(1, 31)}

		clipped, ok := w.Clip(ptr.To(day(1, 10)), ptr.To(day(1, 20)))
		require.True(t, ok)
		assert.Equal(t, day(1, 10), clipped.From)
		assert.Equal(t, day(1, 20), clipped.To)

		_, ok = w.Clip(ptr.To(day(2, 1)), nil)
		assert.False(t, ok)
	})
}

func TestOpenOn(t *testing.T) {
	launch := ptr.To(day(1, 10))
	sunset := ptr.To(day(1, 20))

	assert.True(t, availability.OpenOn(day(1, 10), launch, sunset))
	assert.True(t, availability.OpenOn(day(1, 20), launch, sunset))
	assert.False(t, availability.OpenOn(day(1, 9), launch, sunset))
	assert.False(t, availability.OpenOn(day(1, 21), launch, sunset))
	assert.True(t, availability.OpenOn(day(6, 1), nil, nil))
}

func TestParseDate(t *testing.T) {
	d, err := availability.ParseDate("2025-01-20", nil)
	require.NoError(t, err)
	assert.Equal(t, day(1, 20), d)

	_, err = availability.ParseDate("2025/01/20", time.UTC)
	assert.Error(t, err)
}
