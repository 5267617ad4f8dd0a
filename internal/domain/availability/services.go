package availability

import (
	"sort"
	"time"

	"room-booking/internal/domain/showtime"
)

const DateLayout = "2006-01-02"

// Booked records the timeslots already taken per show date.
type Booked map[string]map[int]struct{}

func (b Booked) Add(date time.Time, timeslot int) {
	key := date.Format(DateLayout)
	if b[key] == nil {
		b[key] = make(map[int]struct{})
	}
	b[key][timeslot] = struct{}{}
}

func (b Booked) Has(date time.Time, timeslot int) bool {
	_, ok := b[date.Format(DateLayout)][timeslot]
	return ok
}

// Window is an inclusive range of calendar dates.
type Window struct {
	From time.Time
	To   time.Time
}

// NextDays covers today and the following days.
func NextDays(today time.Time, days int) Window {
	if days < 0 {
		days = 0
	}
	return Window{From: today, To: today.AddDate(0, 0, days)}
}

// MonthOf covers the month containing month, starting no earlier than today.
// ok is false when the whole month lies in the past.
func MonthOf(month, today time.Time) (w Window, ok bool) {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, today.Location())
	last := first.AddDate(0, 1, -1)
	if last.Before(today) {
		return Window{}, false
	}
	if first.Before(today) {
		first = today
	}
	return Window{From: first, To: last}, true
}

// Clip narrows the window to a room's launch/sunset dates. Nil bounds are open.
func (w Window) Clip(launch, sunset *time.Time) (Window, bool) {
	if launch != nil && launch.After(w.From) {
		w.From = dateOnly(*launch, w.From.Location())
	}
	if sunset != nil && sunset.Before(w.To) {
		w.To = dateOnly(*sunset, w.To.Location())
	}
	return w, !w.To.Before(w.From)
}

func (w Window) Days() []time.Time {
	var days []time.Time
	for d := w.From; !d.After(w.To); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// AvailableDates lists, in ascending order, the dates of w on which at least one
// showtime of that weekday has no booking for its timeslot.
func AvailableDates(showtimes []*showtime.Showtime, booked Booked, w Window) []string {
	byDay := make(map[showtime.DayOfWeek][]*showtime.Showtime)
	for _, s := range showtimes {
		byDay[s.DayOfWeek()] = append(byDay[s.DayOfWeek()], s)
	}

	dates := make([]string, 0)
	for _, day := range w.Days() {
		for _, s := range byDay[showtime.DayOf(day)] {
			if !booked.Has(day, s.Timeslot()) {
				dates = append(dates, day.Format(DateLayout))
				break
			}
		}
	}
	return dates
}

type Timeslot struct {
	Showtime *showtime.Showtime
	IsBooked bool
}

// TimeslotsOn returns the showtimes of date's weekday ordered by timeslot, flagged when booked.
func TimeslotsOn(showtimes []*showtime.Showtime, booked Booked, date time.Time) []Timeslot {
	day := showtime.DayOf(date)
	slots := make([]Timeslot, 0)
	for _, s := range showtimes {
		if s.DayOfWeek() != day {
			continue
		}
		slots = append(slots, Timeslot{Showtime: s, IsBooked: booked.Has(date, s.Timeslot())})
	}
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Showtime.Timeslot() < slots[j].Showtime.Timeslot()
	})
	return slots
}

// Offers reports whether a room schedules timeslot on date's weekday.
func Offers(showtimes []*showtime.Showtime, date time.Time, timeslot int) bool {
	day := showtime.DayOf(date)
	for _, s := range showtimes {
		if s.DayOfWeek() == day && s.Timeslot() == timeslot {
			return true
		}
	}
	return false
}

// ParseDate reads a YYYY-MM-DD date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, s, loc)
}

func dateOnly(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// OpenOn reports whether date lies within the launch/sunset bounds. Nil bounds are open.
func OpenOn(date time.Time, launch, sunset *time.Time) bool {
	key := date.Format(DateLayout)
	if launch != nil && key < launch.Format(DateLayout) {
		return false
	}
	if sunset != nil && key > sunset.Format(DateLayout) {
		return false
	}
	return true
}
