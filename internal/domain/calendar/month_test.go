//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"room-booking/internal/domain/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	today := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	month := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	m := calendar.Build(month, today, []string{"2025-01-14", "2025-01-20", "2025-02-03"}, "2025-01-20")

	t.Run("Monday-first weeks cover the whole month", func(t *testing.T) {
		require.Len(t, m.Weeks, 5)
		for _, w := range m.Weeks {
			require.Len(t, w, 7)
			assert.Equal(t, time.Monday, w[0].Date.Weekday())
		}
		assert.Equal(t, "2024-12-30", m.Weeks[0][0].Key())
		assert.Equal(t, "2025-02-02", m.Weeks[4][6].Key())
	})

	t.Run("selectable days", func(t *testing.T) {
		assert.True(t, m.IsSelectable("2025-01-20"))
		// past
		assert.False(t, m.IsSelectable("2025-01-14"))
		// no free timeslot
		assert.False(t, m.IsSelectable("2025-01-21"))
		// outside the grid
		assert.False(t, m.IsSelectable("2025-02-03"))
	})

	t.Run("day state", func(t *testing.T) {
		// 2025-01-15 sits in the third row on Wednesday
		d := m.Weeks[2][2]
		assert.Equal(t, "2025-01-15", d.Key())
		assert.True(t, d.IsToday)
		assert.False(t, d.IsPast)

		sel := m.Weeks[3][0]
		assert.Equal(t, "2025-01-20", sel.Key())
		assert.True(t, sel.Selected)
		assert.False(t, sel.Disabled())

		padding := m.Weeks[0][0]
		assert.False(t, padding.InMonth)
		assert.True(t, padding.Disabled())
	})

	t.Run("navigation", func(t *testing.T) {
		assert.Equal(t, "January 2025", m.Title())
		assert.Equal(t, "2025-01", m.Param())
		assert.Equal(t, "2024-12", m.Prev())
		assert.Equal(t, "2025-02", m.Next())
	})
}

func TestBuildMonthEndingOnSunday(t *testing.T) {
	// 2026-02-01 and 2026-03-01 are both Sundays
	today := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	m := calendar.Build(today, today, nil, "")

	require.Len(t, m.Weeks, 5)
	assert.Equal(t, "2026-01-26", m.Weeks[0][0].Key())
	assert.Equal(t, "2026-03-01", m.Weeks[4][6].Key())
}

func TestParseMonth(t *testing.T) {
	today := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{name: "valid", in: "2025-03", want: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{name: "empty falls back", in: "", want: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "malformed falls back", in: "2025-13", want: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calendar.ParseMonth(tt.in, today))
		})
	}
}
