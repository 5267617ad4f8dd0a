//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"room-booking/internal/domain/user"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/tests/common/authtest"
	"room-booking/tests/common/dbtest"
	"room-booking/tests/common/httptest"
	"room-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type bookingSuite struct {
	e2e.FullStackSuite
	roomID int64
	date   string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

// nextMonday is the first Monday after today in the configured zone.
func nextMonday(loc *time.Location) time.Time {
	now := time.Now().In(loc)
	days := (8 - int(now.Weekday())) % 7
	if days == 0 {
		days = 7
	}
	d := now.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

func (s *bookingSuite) SetupSubTest() {
	s.FullStackSuite.SetupSubTest()

	s.roomID = dbtest.CreateTestRoom(s.T(), s.DB, "Theater A", 2, 8)
	dbtest.CreateTestShowtime(s.T(), s.DB, s.roomID, 0, 1, "10:00", "11:00")
	dbtest.CreateTestShowtime(s.T(), s.DB, s.roomID, 0, 2, "13:00", "14:00")
	dbtest.CreateTestUser(s.T(), s.DB, "frontdesk", string(user.RoleStaff))
	s.date = nextMonday(s.Config.Booking.Location()).Format("2006-01-02")
}

func (s *bookingSuite) timeslots() []resdto.TimeslotResponse {
	path := fmt.Sprintf("/api/rooms/%d/timeslots?date=%s", s.roomID, s.date)
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, "")

	var slots []resdto.TimeslotResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &slots)
	require.Len(s.T(), slots, 2)
	return slots
}

func (s *bookingSuite) confirmForm(timeslot int, email string) url.Values {
	return url.Values{
		"room_id":     {fmt.Sprint(s.roomID)},
		"date":        {s.date},
		"timeslot":    {fmt.Sprint(timeslot)},
		"email":       {email},
		"first_name":  {"Nia"},
		"last_name":   {"Park"},
		"guest_count": {"4"},
	}
}

func (s *bookingSuite) TestPublicBookingFlow() {
	s.Run("Normal case: new customer books a free timeslot", func() {
		home := httptest.PerformPage(s.T(), s.WebRouter, http.MethodGet,
			fmt.Sprintf("/?room_id=%d&month=%s&date=%s", s.roomID, s.date[:7], s.date), "")
		s.Require().Equal(http.StatusOK, home.Code, home.Body.String())
		s.Contains(home.Body.String(), "timeslot=1")

		w := httptest.PerformForm(s.T(), s.WebRouter, "/book", s.confirmForm(1, "nia@example.com"), "")

		s.Require().Equal(http.StatusSeeOther, w.Code, w.Body.String())
		location, err := url.Parse(w.Header().Get("Location"))
		s.Require().NoError(err)
		orderID := location.Query().Get("booked")
		_, err = uuid.Parse(orderID)
		s.NoError(err, "注文IDはサーバーが発行したUUID")

		var customerID, bookedCustomer int64
		var storedOrder string
		ctx := context.Background()
		s.Require().NoError(s.DB.QueryRow(ctx, "SELECT id FROM customers WHERE email = 'nia@example.com'").Scan(&customerID))
		s.Require().NoError(s.DB.QueryRow(ctx, "SELECT customer_id, order_id FROM bookings WHERE room_id = $1", s.roomID).
			Scan(&bookedCustomer, &storedOrder))
		s.Equal(customerID, bookedCustomer)
		s.Equal(orderID, storedOrder)

		slots := s.timeslots()
		s.True(slots[0].IsBooked)
		s.False(slots[1].IsBooked)
		s.Equal("Theater A", slots[0].RoomName)
	})

	s.Run("Normal case: known email books as the same customer", func() {
		existing := dbtest.CreateTestCustomer(s.T(), s.DB, "Ann", "Lee", "ann@example.com")

		w := httptest.PerformForm(s.T(), s.WebRouter, "/book", s.confirmForm(2, "ANN@example.com"), "")
		s.Require().Equal(http.StatusSeeOther, w.Code, w.Body.String())

		var count int
		var bookedCustomer int64
		ctx := context.Background()
		s.Require().NoError(s.DB.QueryRow(ctx, "SELECT count(*) FROM customers").Scan(&count))
		s.Equal(1, count)
		s.Require().NoError(s.DB.QueryRow(ctx, "SELECT customer_id FROM bookings").Scan(&bookedCustomer))
		s.Equal(existing, bookedCustomer)
	})

	s.Run("Error case: booked timeslot cannot open the dialog", func() {
		first := httptest.PerformForm(s.T(), s.WebRouter, "/book", s.confirmForm(1, "first@example.com"), "")
		s.Require().Equal(http.StatusSeeOther, first.Code, first.Body.String())

		w := httptest.PerformPage(s.T(), s.WebRouter, http.MethodGet,
			fmt.Sprintf("/book?room_id=%d&date=%s&timeslot=1", s.roomID, s.date), "")

		s.Equal(http.StatusConflict, w.Code)
		s.Contains(w.Body.String(), "Timeslot already booked")
	})

	s.Run("Error case: no timeslots on Tuesday", func() {
		tuesday := shiftDate(s.date, 1)
		w := httptest.PerformPage(s.T(), s.WebRouter, http.MethodGet,
			fmt.Sprintf("/book?room_id=%d&date=%s&timeslot=1", s.roomID, tuesday), "")

		s.Equal(http.StatusConflict, w.Code)
		s.Contains(w.Body.String(), "Timeslot is not available on that date")
	})
}

func shiftDate(date string, days int) string {
	d, _ := time.Parse("2006-01-02", date)
	return d.AddDate(0, 0, days).Format("2006-01-02")
}

func (s *bookingSuite) TestConsole() {
	s.Run("Normal case: deleting a booking after login frees the timeslot", func() {
		booked := httptest.PerformForm(s.T(), s.WebRouter, "/book", s.confirmForm(1, "nia@example.com"), "")
		s.Require().Equal(http.StatusSeeOther, booked.Code, booked.Body.String())

		login := httptest.PerformForm(s.T(), s.WebRouter, "/login",
			url.Values{"username": {"frontdesk"}, "password": {authtest.TestPassword}, "next": {"/bookings"}}, "")
		httptest.AssertRedirect(s.T(), login, "/bookings")
		session := httptest.SessionCookie(login)
		s.Require().NotNil(session)

		list := httptest.PerformPage(s.T(), s.WebRouter, http.MethodGet, "/bookings", session.Value)
		s.Require().Equal(http.StatusOK, list.Code)
		s.Contains(list.Body.String(), "Theater A")

		var bookingID int64
		s.Require().NoError(s.DB.QueryRow(context.Background(), "SELECT id FROM bookings").Scan(&bookingID))

		w := httptest.Perform(s.T(), s.WebRouter, http.MethodDelete,
			fmt.Sprintf("/bookings/%d", bookingID), nil, httptest.WithCookiesFrom(login))
		s.Equal(http.StatusOK, w.Code, w.Body.String())

		slots := s.timeslots()
		s.False(slots[0].IsBooked)
	})

	s.Run("Error case: room with showtimes cannot be deleted", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "manager", string(user.RoleAdmin))

		w := httptest.PerformPage(s.T(), s.WebRouter, http.MethodDelete, fmt.Sprintf("/rooms/%d", s.roomID), token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Remove costs and/or showtimes before deleting")
	})

	s.Run("Auth test - console redirects to login when not logged in", func() {
		w := httptest.PerformPage(s.T(), s.WebRouter, http.MethodGet, "/customers", "")
		httptest.AssertRedirect(s.T(), w, "/login?next=%2Fcustomers")
	})
}
