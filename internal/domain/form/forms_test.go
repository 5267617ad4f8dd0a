//go:build unit

package form_test

import (
	"testing"

	"room-booking/internal/domain/form"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomForm(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		v, fe := form.Room{
			Title: " Theater A ", MaxCapacity: "8", MinCapacity: "2",
			Duration: "60", ResetBuffer: "15", LaunchDate: "2025-01-01",
		}.Validate()

		require.False(t, fe.Any())
		assert.Equal(t, "Theater A", v.Title)
		assert.Equal(t, 8, v.MaxCapacity)
		require.NotNil(t, v.LaunchDate)
		assert.Equal(t, "2025-01-01", *v.LaunchDate)
		assert.Nil(t, v.SunsetDate)
		assert.Nil(t, v.Description)
	})

	t.Run("field errors", func(t *testing.T) {
		_, fe := form.Room{
			MaxCapacity: "eight", MinCapacity: "2", Duration: "60", ResetBuffer: "0", SunsetDate: "01/31/2025",
		}.Validate()

		assert.Equal(t, form.FieldErrors{
			"title":        "Room Title is required",
			"max_capacity": "Max Capacity must be an integer",
			"sunset_date":  "Sunset Date must be YYYY-MM-DD",
		}, fe)
	})
}

func TestRoomCostForm(t *testing.T) {
	v, fe := form.RoomCost{GuestsCount: "4", TotalCost: "120.50"}.Validate()
	require.False(t, fe.Any())
	assert.Equal(t, "120.5", v.TotalCost.String())

	_, fe = form.RoomCost{GuestsCount: "4", TotalCost: "cheap"}.Validate()
	assert.Equal(t, "Total cost must be a number", fe["total_cost"])
}

func TestShowtimeForm(t *testing.T) {
	tests := []struct {
		name  string
		form  form.Showtime
		field string
		msg   string
	}{
		{name: "success", form: form.Showtime{DayOfWeek: "6", Timeslot: "1", StartTime: "10:00", EndTime: "11:00"}},
		{name: "day out of range", form: form.Showtime{DayOfWeek: "7", Timeslot: "1", StartTime: "10:00", EndTime: "11:00"}, field: "day_of_week", msg: "Day of week must be between 0 and 6"},
		{name: "bad time", form: form.Showtime{DayOfWeek: "0", Timeslot: "1", StartTime: "10am", EndTime: "11:00"}, field: "start_time", msg: "Start time must be HH:MM"},
		{name: "missing timeslot", form: form.Showtime{DayOfWeek: "0", StartTime: "10:00", EndTime: "11:00"}, field: "timeslot", msg: "Timeslot is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fe := tt.form.Validate()
			if tt.field == "" {
				assert.False(t, fe.Any())
				return
			}
			assert.Equal(t, tt.msg, fe[tt.field])
		})
	}
}

func TestCustomerFormCheckboxes(t *testing.T) {
	v, fe := form.Customer{FirstName: "Hanako", LastName: "Yamada", Email: "hanako@example.com", IsMinor: "on"}.Validate()
	require.False(t, fe.Any())
	assert.True(t, v.IsMinor)
	assert.False(t, v.IsBanned)
}

func TestBookingForm(t *testing.T) {
	v, fe := form.Booking{
		RoomID: "1", CustomerID: "2", GuestCount: "4", ShowDate: "2025-01-20", ShowTimeslot: "1",
	}.Validate()
	require.False(t, fe.Any())
	assert.Equal(t, int64(1), v.RoomID)
	assert.Equal(t, "", v.OrderID)

	_, fe = form.Booking{RoomID: "1", CustomerID: "2", GuestCount: "4", ShowTimeslot: "1"}.Validate()
	assert.Equal(t, form.FieldErrors{"show_date": "Show date is required"}, fe)
}

func TestConfirm(t *testing.T) {
	valid := form.Confirm{Email: "hanako@example.com", FirstName: "Hanako", LastName: "Yamada", GuestCount: "4"}

	t.Run("ready when every field is filled", func(t *testing.T) {
		assert.True(t, valid.Ready())
	})

	t.Run("zero guests is not ready", func(t *testing.T) {
		f := valid
		f.GuestCount = "0"
		assert.False(t, f.Ready())
		_, fe := f.Validate()
		assert.Equal(t, "Guest count must be a positive integer", fe["guest_count"])
	})

	t.Run("missing names is not ready", func(t *testing.T) {
		f := valid
		f.LastName = " "
		assert.False(t, f.Ready())
	})

	t.Run("invalid customer id is ignored", func(t *testing.T) {
		f := valid
		f.CustomerID = "-3"
		v, fe := f.Validate()
		assert.False(t, fe.Any())
		assert.Zero(t, v.CustomerID)

		f.CustomerID = "12"
		v, _ = f.Validate()
		assert.Equal(t, int64(12), v.CustomerID)
	})
}

func TestLoginAndRegister(t *testing.T) {
	assert.Equal(t, form.FieldErrors{"password": "Password is required"}, form.Login{Username: "frontdesk"}.Validate())
	assert.False(t, form.Register{Username: "u", Email: "u@example.com", Password: "x"}.Validate().Any())
}
