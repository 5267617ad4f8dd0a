package calendar

import (
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// Day is one cell of the month grid.
type Day struct {
	Date      time.Time
	InMonth   bool
	IsToday   bool
	IsPast    bool
	Available bool
	Selected  bool
}

// Disabled days cannot be picked: padding cells, past dates and dates without a free timeslot.
func (d Day) Disabled() bool {
	return !d.InMonth || d.IsPast || !d.Available
}

func (d Day) Key() string { return d.Date.Format(DateLayout) }

// Month is a Monday-first grid of whole weeks covering one month.
type Month struct {
	First time.Time
	Weeks [][]Day
}

// Build lays out the month containing month. available holds YYYY-MM-DD strings.
func Build(month, today time.Time, available []string, selected string) Month {
	loc := today.Location()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, loc)

	free := make(map[string]struct{}, len(available))
	for _, s := range available {
		free[s] = struct{}{}
	}

	// Monday = 0
	offset := (int(first.Weekday()) + 6) % 7
	cursor := first.AddDate(0, 0, -offset)

	var weeks [][]Day
	for {
		week := make([]Day, 7)
		for i := range week {
			key := cursor.Format(DateLayout)
			_, ok := free[key]
			week[i] = Day{
				Date:      cursor,
				InMonth:   cursor.Month() == first.Month(),
				IsToday:   cursor.Equal(today),
				IsPast:    cursor.Before(today),
				Available: ok,
				Selected:  key == selected,
			}
			cursor = cursor.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
		if cursor.Month() != first.Month() {
			break
		}
	}
	return Month{First: first, Weeks: weeks}
}

func (m Month) Title() string { return m.First.Format("January 2006") }
func (m Month) Param() string { return m.First.Format(MonthLayout) }
func (m Month) Prev() string  { return m.First.AddDate(0, -1, 0).Format(MonthLayout) }
func (m Month) Next() string  { return m.First.AddDate(0, 1, 0).Format(MonthLayout) }

// IsSelectable reports whether date is a pickable day of the grid.
func (m Month) IsSelectable(date string) bool {
	for _, w := range m.Weeks {
		for _, d := range w {
			if d.Key() == date {
				return !d.Disabled()
			}
		}
	}
	return false
}

// ParseMonth reads YYYY-MM; an empty or malformed value falls back to today's month.
func ParseMonth(s string, today time.Time) time.Time {
	if t, err := time.ParseInLocation(MonthLayout, s, today.Location()); err == nil {
		return t
	}
	return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
}
