package form

import (
	"time"

	"github.com/shopspring/decimal"
)

// Room is the raw room form as posted by the browser.
type Room struct {
	Title       string `form:"title"`
	MaxCapacity string `form:"max_capacity"`
	MinCapacity string `form:"min_capacity"`
	Duration    string `form:"duration"`
	ResetBuffer string `form:"reset_buffer"`
	LaunchDate  string `form:"launch_date"`
	SunsetDate  string `form:"sunset_date"`
	Description string `form:"description"`
}

type RoomValues struct {
	Title       string
	MaxCapacity int
	MinCapacity int
	Duration    int
	ResetBuffer int
	LaunchDate  *string
	SunsetDate  *string
	Description *string
}

func (f Room) Validate() (RoomValues, FieldErrors) {
	fe := FieldErrors{}
	v := RoomValues{
		Title:       requiredText(fe, "title", "Room Title", f.Title),
		MaxCapacity: requiredInt(fe, "max_capacity", "Max Capacity", f.MaxCapacity),
		MinCapacity: requiredInt(fe, "min_capacity", "Min Capacity", f.MinCapacity),
		Duration:    requiredInt(fe, "duration", "Duration", f.Duration),
		ResetBuffer: requiredInt(fe, "reset_buffer", "Reset Buffer", f.ResetBuffer),
		LaunchDate:  optionalDate(fe, "launch_date", "Launch Date", f.LaunchDate),
		SunsetDate:  optionalDate(fe, "sunset_date", "Sunset Date", f.SunsetDate),
		Description: optionalText(f.Description),
	}
	return v, fe
}

type RoomCost struct {
	GuestsCount string `form:"guests_count"`
	TotalCost   string `form:"total_cost"`
	StartDate   string `form:"start_date"`
	EndDate     string `form:"end_date"`
}

type RoomCostValues struct {
	GuestsCount int
	TotalCost   decimal.Decimal
	StartDate   *string
	EndDate     *string
}

func (f RoomCost) Validate() (RoomCostValues, FieldErrors) {
	fe := FieldErrors{}
	v := RoomCostValues{
		GuestsCount: requiredInt(fe, "guests_count", "Guest count", f.GuestsCount),
		TotalCost:   requiredNumber(fe, "total_cost", "Total cost", f.TotalCost),
		StartDate:   optionalDate(fe, "start_date", "Start date", f.StartDate),
		EndDate:     optionalDate(fe, "end_date", "End date", f.EndDate),
	}
	return v, fe
}

type Showtime struct {
	DayOfWeek string `form:"day_of_week"`
	Timeslot  string `form:"timeslot"`
	StartTime string `form:"start_time"`
	EndTime   string `form:"end_time"`
}

type ShowtimeValues struct {
	DayOfWeek int
	Timeslot  int
	StartTime string
	EndTime   string
}

func (f Showtime) Validate() (ShowtimeValues, FieldErrors) {
	fe := FieldErrors{}
	v := ShowtimeValues{
		DayOfWeek: requiredInt(fe, "day_of_week", "Day of week", f.DayOfWeek),
		Timeslot:  requiredInt(fe, "timeslot", "Timeslot", f.Timeslot),
		StartTime: clockTime(fe, "start_time", "Start time", f.StartTime),
		EndTime:   clockTime(fe, "end_time", "End time", f.EndTime),
	}
	if _, bad := fe["day_of_week"]; !bad && (v.DayOfWeek < 0 || v.DayOfWeek > 6) {
		fe.add("day_of_week", "Day of week must be between 0 and 6")
	}
	return v, fe
}

func clockTime(fe FieldErrors, field, label, raw string) string {
	v := requiredText(fe, field, label, raw)
	if v == "" {
		return ""
	}
	if _, err := time.Parse("15:04", v); err != nil {
		fe.add(field, label+" must be HH:MM")
		return ""
	}
	return v
}

type Customer struct {
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
	Email     string `form:"email"`
	IsMinor   string `form:"is_minor"`
	IsBanned  string `form:"is_banned"`
	Notes     string `form:"customer_notes"`
}

type CustomerValues struct {
	FirstName string
	LastName  string
	Email     string
	IsMinor   bool
	IsBanned  bool
	Notes     *string
}

func (f Customer) Validate() (CustomerValues, FieldErrors) {
	fe := FieldErrors{}
	v := CustomerValues{
		FirstName: requiredText(fe, "first_name", "First Name", f.FirstName),
		LastName:  requiredText(fe, "last_name", "Last Name", f.LastName),
		Email:     requiredText(fe, "email", "Email", f.Email),
		IsMinor:   checked(f.IsMinor),
		IsBanned:  checked(f.IsBanned),
		Notes:     optionalText(f.Notes),
	}
	return v, fe
}

type Booking struct {
	RoomID       string `form:"room_id"`
	CustomerID   string `form:"customer_id"`
	GuestCount   string `form:"guest_count"`
	OrderID      string `form:"order_id"`
	ShowDate     string `form:"show_date"`
	ShowTimeslot string `form:"show_timeslot"`
}

type BookingValues struct {
	RoomID       int64
	CustomerID   int64
	GuestCount   int
	OrderID      string
	ShowDate     string
	ShowTimeslot int
}

func (f Booking) Validate() (BookingValues, FieldErrors) {
	fe := FieldErrors{}
	v := BookingValues{
		RoomID:       int64(requiredInt(fe, "room_id", "Room", f.RoomID)),
		CustomerID:   int64(requiredInt(fe, "customer_id", "Customer", f.CustomerID)),
		GuestCount:   requiredInt(fe, "guest_count", "Guest count", f.GuestCount),
		OrderID:      optionalValue(f.OrderID),
		ShowDate:     requiredDate(fe, "show_date", "Show date", f.ShowDate),
		ShowTimeslot: requiredInt(fe, "show_timeslot", "Timeslot", f.ShowTimeslot),
	}
	return v, fe
}

// Confirm is the booking confirmation dialog of the public flow.
type Confirm struct {
	CustomerID string `form:"customer_id"`
	Email      string `form:"email"`
	FirstName  string `form:"first_name"`
	LastName   string `form:"last_name"`
	GuestCount string `form:"guest_count"`
}

type ConfirmValues struct {
	CustomerID int64
	Email      string
	FirstName  string
	LastName   string
	GuestCount int
}

func (f Confirm) Validate() (ConfirmValues, FieldErrors) {
	fe := FieldErrors{}
	v := ConfirmValues{
		Email:      requiredText(fe, "email", "Email", f.Email),
		FirstName:  requiredText(fe, "first_name", "First Name", f.FirstName),
		LastName:   requiredText(fe, "last_name", "Last Name", f.LastName),
		GuestCount: requiredInt(fe, "guest_count", "Guest count", f.GuestCount),
	}
	if _, bad := fe["guest_count"]; !bad && v.GuestCount <= 0 {
		fe.add("guest_count", "Guest count must be a positive integer")
	}
	// a hint only: the booking flow checks it against the email lookup
	if id, err := parseID(f.CustomerID); err == nil {
		v.CustomerID = id
	}
	return v, fe
}

// Ready mirrors the enabled state of the confirm button.
func (f Confirm) Ready() bool {
	_, fe := f.Validate()
	return !fe.Any()
}

type Login struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (f Login) Validate() FieldErrors {
	fe := FieldErrors{}
	requiredText(fe, "username", "Username", f.Username)
	if f.Password == "" {
		fe.add("password", "Password is required")
	}
	return fe
}

type Register struct {
	Username string `form:"username"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (f Register) Validate() FieldErrors {
	fe := FieldErrors{}
	requiredText(fe, "username", "Username", f.Username)
	requiredText(fe, "email", "Email", f.Email)
	if f.Password == "" {
		fe.add("password", "Password is required")
	}
	return fe
}
