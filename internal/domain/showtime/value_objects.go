package showtime

import (
	"time"

	"room-booking/internal/pkg/errs"
)

var (
	ErrInvalidDayOfWeek = errs.Validation("Day of week must be between 0 and 6")
	ErrInvalidClockTime = errs.Validation("Time must be HH:MM")
)

// DayOfWeek counts from Monday (0) to Sunday (6).
type DayOfWeek int

const (
	Monday DayOfWeek = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func NewDayOfWeek(v int) (DayOfWeek, error) {
	if v < int(Monday) || v > int(Sunday) {
		return 0, ErrInvalidDayOfWeek
	}
	return DayOfWeek(v), nil
}

// DayOf maps a calendar date onto the Monday-based week.
func DayOf(t time.Time) DayOfWeek {
	return DayOfWeek((int(t.Weekday()) + 6) % 7)
}

func (d DayOfWeek) Int() int { return int(d) }

func (d DayOfWeek) String() string {
	if d < Monday || d > Sunday {
		return "Unknown"
	}
	return dayNames[d]
}

// ClockTime is a wall-clock time of day with minute precision.
type ClockTime struct {
	minutes int
}

const clockLayout = "15:04"

func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		// Postgres renders TIME with seconds
		t, err = time.Parse("15:04:05", s)
		if err != nil {
			return ClockTime{}, ErrInvalidClockTime
		}
	}
	return ClockTime{minutes: t.Hour()*60 + t.Minute()}, nil
}

func (c ClockTime) Minutes() int { return c.minutes }

func (c ClockTime) String() string {
	return time.Date(0, 1, 1, c.minutes/60, c.minutes%60, 0, 0, time.UTC).Format(clockLayout)
}

func (c ClockTime) Before(o ClockTime) bool { return c.minutes < o.minutes }
