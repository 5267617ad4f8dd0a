package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomView represents read-optimized room data
type RoomView struct {
	ID          int64
	Title       string
	MaxCapacity int
	MinCapacity int
	Duration    int
	ResetBuffer int
	LaunchDate  *time.Time
	SunsetDate  *time.Time
	Description *string
}

type RoomCostView struct {
	ID          int64
	RoomID      int64
	GuestsCount int
	TotalCost   decimal.Decimal
	StartDate   *time.Time
	EndDate     *time.Time
}

type ShowtimeView struct {
	ID        int64
	RoomID    int64
	DayOfWeek int
	DayName   string
	Timeslot  int
	StartTime string
	EndTime   string
}

type CustomerView struct {
	ID            int64
	FirstName     string
	LastName      string
	Email         string
	IsMinor       bool
	IsBanned      bool
	CustomerNotes *string
}

// BookingView joins the booking with the names shown in the console list.
type BookingView struct {
	ID           int64
	RoomID       int64
	RoomTitle    string
	CustomerID   int64
	CustomerName string
	GuestCount   int
	OrderID      string
	BookingDate  time.Time
	ShowDate     time.Time
	ShowTimeslot int
}

// TimeslotView is one showtime of a room on a concrete date.
type TimeslotView struct {
	ID        int64  `json:"id"`
	Timeslot  int    `json:"timeslot"`
	RoomName  string `json:"roomName"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBooked  bool   `json:"isBooked"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       int64
	Username string
	Email    string
	Role     string
}
