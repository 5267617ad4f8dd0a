//go:build unit

package bookingflow_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"room-booking/internal/domain/form"
	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/infra/apiclient"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/bookingflow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type slotKey struct {
	roomID   int64
	date     string
	timeslot int
}

// fakeAPI answers like the booking service for a single room offering two Monday timeslots.
type fakeAPI struct {
	rooms     []resdto.RoomResponse
	customers map[string]resdto.CustomerResponse
	booked    map[slotKey]bool
	nextID    int64

	createdCustomers []reqdto.CustomerRequest
	createdBookings  []reqdto.BookingRequest
	failRooms        error
	failDates        error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		rooms:     []resdto.RoomResponse{{ID: 1, Title: "Theater A", MaxCapacity: 8, MinCapacity: 2, Duration: 60}},
		customers: map[string]resdto.CustomerResponse{},
		booked:    map[slotKey]bool{},
		nextID:    100,
	}
}

func (f *fakeAPI) ListRooms(context.Context) ([]resdto.RoomResponse, error) {
	if f.failRooms != nil {
		return nil, f.failRooms
	}
	return f.rooms, nil
}

func (f *fakeAPI) AvailableDates(_ context.Context, roomID int64, month string) ([]string, error) {
	if f.failDates != nil {
		return nil, f.failDates
	}
	if roomID != 1 || month != "2025-01" {
		return []string{}, nil
	}
	var out []string
	for _, d := range []string{"2025-01-20", "2025-01-27"} {
		if !f.booked[slotKey{roomID, d, 1}] || !f.booked[slotKey{roomID, d, 2}] {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeAPI) Timeslots(_ context.Context, roomID int64, date string) ([]resdto.TimeslotResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, &apiclient.APIError{Status: http.StatusBadRequest, Message: "Invalid date"}
	}
	if roomID != 1 || day.Weekday() != time.Monday {
		return []resdto.TimeslotResponse{}, nil
	}
	return []resdto.TimeslotResponse{
		{ID: 11, Timeslot: 1, RoomName: "Theater A", StartTime: "10:00", EndTime: "11:00", IsBooked: f.booked[slotKey{roomID, date, 1}]},
		{ID: 12, Timeslot: 2, RoomName: "Theater A", StartTime: "13:00", EndTime: "14:00", IsBooked: f.booked[slotKey{roomID, date, 2}]},
	}, nil
}

func (f *fakeAPI) FindCustomerByEmail(_ context.Context, email string) (*resdto.CustomerResponse, error) {
	c, ok := f.customers[strings.ToLower(email)]
	if !ok {
		return nil, &apiclient.APIError{Status: http.StatusNotFound, Message: "Customer not found"}
	}
	return &c, nil
}

func (f *fakeAPI) CreateCustomer(_ context.Context, req reqdto.CustomerRequest) (*resdto.CustomerResponse, error) {
	f.createdCustomers = append(f.createdCustomers, req)
	f.nextID++
	c := resdto.CustomerResponse{ID: f.nextID, FirstName: req.FirstName, LastName: req.LastName, Email: strings.ToLower(req.Email)}
	f.customers[c.Email] = c
	return &c, nil
}

func (f *fakeAPI) CreateBooking(_ context.Context, req reqdto.BookingRequest) (*resdto.BookingCreatedResponse, error) {
	key := slotKey{req.RoomID, req.ShowDate, *req.ShowTimeslot}
	if f.booked[key] {
		return nil, &apiclient.APIError{Status: http.StatusConflict, Message: "Timeslot already booked"}
	}
	f.createdBookings = append(f.createdBookings, req)
	f.booked[key] = true
	f.nextID++
	return &resdto.BookingCreatedResponse{Message: "Booking created", ID: f.nextID, OrderID: uuid.NewString()}, nil
}

type FlowTestSuite struct {
	suite.Suite
	api  *fakeAPI
	flow bookingflow.Flow
	ctx  context.Context
}

func (s *FlowTestSuite) SetupTest() {
	s.api = newFakeAPI()
	clk := clock.NewMockClock(time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC))
	s.flow = bookingflow.NewFlow(s.api, clk, config.BookingConfig{AvailabilityDays: 7, TimeZone: "UTC"})
	s.ctx = context.Background()
}

func TestFlowTestSuite(t *testing.T) {
	suite.Run(t, new(FlowTestSuite))
}

func (s *FlowTestSuite) TestHome() {
	s.Run("success: no room selected shows rooms and this month only", func() {
		view := s.flow.Home(s.ctx, bookingflow.Selection{})

		s.Empty(view.Error)
		s.Len(view.Rooms, 1)
		s.Nil(view.Room)
		s.Equal("2025-01", view.Calendar.Param())
		s.Empty(view.Timeslots)
	})

	s.Run("success: room and date show timeslots", func() {
		view := s.flow.Home(s.ctx, bookingflow.Selection{RoomID: 1, Month: "2025-01", Date: "2025-01-20"})

		s.Empty(view.Error)
		s.Require().NotNil(view.Room)
		s.Equal("Theater A", view.Room.Title)
		s.True(view.Calendar.IsSelectable("2025-01-20"))
		s.False(view.Calendar.IsSelectable("2025-01-21"))
		s.Equal("2025-01-20", view.Date)
		s.Len(view.Timeslots, 2)
	})

	s.Run("success: unselectable date skips the timeslot fetch", func() {
		view := s.flow.Home(s.ctx, bookingflow.Selection{RoomID: 1, Month: "2025-01", Date: "2025-01-21"})

		s.Empty(view.Date)
		s.Empty(view.Timeslots)
	})

	s.Run("success: unknown room id counts as no selection", func() {
		view := s.flow.Home(s.ctx, bookingflow.Selection{RoomID: 99})

		s.Nil(view.Room)
		s.Empty(view.Error)
	})

	s.Run("error: room list failure becomes a message", func() {
		s.api.failRooms = &apiclient.TransportError{Op: "GET /api/rooms", Err: context.DeadlineExceeded}
		defer func() { s.api.failRooms = nil }()

		view := s.flow.Home(s.ctx, bookingflow.Selection{RoomID: 1})

		s.NotEmpty(view.Error)
		s.Empty(view.Rooms)
		s.Equal("2025-01", view.Calendar.Param())
	})

	s.Run("error: availability failure keeps the room list", func() {
		s.api.failDates = &apiclient.APIError{Status: http.StatusInternalServerError, Message: "Internal server error"}
		defer func() { s.api.failDates = nil }()

		view := s.flow.Home(s.ctx, bookingflow.Selection{RoomID: 1})

		s.Equal("Internal server error", view.Error)
		s.Len(view.Rooms, 1)
		s.NotNil(view.Room)
	})
}

func (s *FlowTestSuite) TestConfirmation() {
	s.Run("success: free timeslot", func() {
		view, err := s.flow.Confirmation(s.ctx, 1, "2025-01-20", 1)

		s.Require().NoError(err)
		s.Equal("Theater A", view.Room.Title)
		s.Equal("10:00", view.Timeslot.StartTime)
	})

	s.Run("error: booked timeslot", func() {
		s.api.booked[slotKey{1, "2025-01-20", 2}] = true

		_, err := s.flow.Confirmation(s.ctx, 1, "2025-01-20", 2)

		s.ErrorIs(err, bookingflow.ErrSlotBooked)
	})

	s.Run("error: timeslot not offered", func() {
		_, err := s.flow.Confirmation(s.ctx, 1, "2025-01-21", 1)
		s.ErrorIs(err, bookingflow.ErrSlotUnavailable)

		_, err = s.flow.Confirmation(s.ctx, 1, "2025-01-20", 9)
		s.ErrorIs(err, bookingflow.ErrSlotUnavailable)
	})

	s.Run("error: unknown room", func() {
		_, err := s.flow.Confirmation(s.ctx, 42, "2025-01-20", 1)
		s.ErrorIs(err, bookingflow.ErrSlotUnavailable)
	})
}

func (s *FlowTestSuite) TestLookupCustomer() {
	s.api.customers["ann@example.com"] = resdto.CustomerResponse{ID: 7, FirstName: "Ann", LastName: "Lee", Email: "ann@example.com"}

	found, err := s.flow.LookupCustomer(s.ctx, " ann@example.com ")
	s.Require().NoError(err)
	s.Equal(int64(7), found.ID)

	missing, err := s.flow.LookupCustomer(s.ctx, "nobody@example.com")
	s.NoError(err)
	s.Nil(missing)

	blank, err := s.flow.LookupCustomer(s.ctx, "  ")
	s.NoError(err)
	s.Nil(blank)
}

// A new visitor books the first Monday slot: the customer is registered, the booking
// is created and the slot then reads as booked.
func (s *FlowTestSuite) TestConfirmRegistersNewCustomer() {
	view, err := s.flow.Confirmation(s.ctx, 1, "2025-01-20", 1)
	s.Require().NoError(err)

	res, fe, err := s.flow.Confirm(s.ctx, view, form.Confirm{
		Email: "new@example.com", FirstName: "Nia", LastName: "Park", GuestCount: "4",
	})

	s.Require().NoError(err)
	s.Empty(fe)
	s.Require().Len(s.api.createdCustomers, 1)
	s.Equal("new@example.com", s.api.createdCustomers[0].Email)
	s.Require().Len(s.api.createdBookings, 1)

	req := s.api.createdBookings[0]
	s.Equal(res.CustomerID, req.CustomerID)
	s.Equal(int64(1), req.RoomID)
	s.Equal("2025-01-20", req.ShowDate)
	s.Equal("2025-01-15", req.BookingDate)
	s.Equal(1, *req.ShowTimeslot)
	s.Equal(4, *req.GuestCount)
	s.Empty(req.OrderID)
	s.NotEmpty(res.OrderID)

	slots, err := s.api.Timeslots(s.ctx, 1, "2025-01-20")
	s.Require().NoError(err)
	s.True(slots[0].IsBooked)
	s.False(slots[1].IsBooked)

	_, err = s.flow.Confirmation(s.ctx, 1, "2025-01-20", 1)
	s.ErrorIs(err, bookingflow.ErrSlotBooked)
}

func (s *FlowTestSuite) TestConfirmReusesKnownCustomer() {
	s.api.customers["ann@example.com"] = resdto.CustomerResponse{ID: 7, Email: "ann@example.com"}
	view, err := s.flow.Confirmation(s.ctx, 1, "2025-01-20", 2)
	s.Require().NoError(err)

	res, _, err := s.flow.Confirm(s.ctx, view, form.Confirm{
		Email: "ann@example.com", FirstName: "Ann", LastName: "Lee", GuestCount: "2",
	})

	s.Require().NoError(err)
	s.Equal(int64(7), res.CustomerID)
	s.Empty(s.api.createdCustomers)
}

func (s *FlowTestSuite) TestConfirmWithCustomerID() {
	confirm := func(date, customerID, email string) *bookingflow.ConfirmResult {
		view, err := s.flow.Confirmation(s.ctx, 1, date, 1)
		s.Require().NoError(err)
		res, fe, err := s.flow.Confirm(s.ctx, view, form.Confirm{
			CustomerID: customerID, Email: email, FirstName: "X", LastName: "Y", GuestCount: "1",
		})
		s.Require().NoError(err)
		s.Require().Empty(fe)
		return res
	}

	s.Run("success: id matching the email is kept", func() {
		s.api.customers["ann@example.com"] = resdto.CustomerResponse{ID: 7, Email: "ann@example.com"}

		res := confirm("2025-01-20", "7", "ann@example.com")

		s.Equal(int64(7), res.CustomerID)
		s.Empty(s.api.createdCustomers)
	})

	s.Run("success: id of another customer is replaced by the email owner", func() {
		s.api.customers["ann@example.com"] = resdto.CustomerResponse{ID: 7, Email: "ann@example.com"}

		res := confirm("2025-01-27", "55", "ann@example.com")

		s.Equal(int64(7), res.CustomerID)
		s.Require().NotEmpty(s.api.createdBookings)
		s.Equal(int64(7), s.api.createdBookings[len(s.api.createdBookings)-1].CustomerID)
	})

	s.Run("success: id with an unknown email registers the customer", func() {
		res := confirm("2025-02-03", "55", "x@example.com")

		s.NotEqual(int64(55), res.CustomerID)
		s.Require().Len(s.api.createdCustomers, 1)
		s.Equal("x@example.com", s.api.createdCustomers[0].Email)
	})
}

func (s *FlowTestSuite) TestConfirmRejectsInvalidForm() {
	view, err := s.flow.Confirmation(s.ctx, 1, "2025-01-20", 1)
	s.Require().NoError(err)

	res, fe, err := s.flow.Confirm(s.ctx, view, form.Confirm{Email: "a@example.com", GuestCount: "0"})

	s.NoError(err)
	s.Nil(res)
	s.Contains(fe, "first_name")
	s.Contains(fe, "last_name")
	s.Equal("Guest count must be a positive integer", fe["guest_count"])
	s.Empty(s.api.createdBookings)
}

func TestConfirmSurfacesConflict(t *testing.T) {
	api := newFakeAPI()
	flow := bookingflow.NewFlow(api, clock.NewMockClock(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)), config.BookingConfig{TimeZone: "UTC"})
	view, err := flow.Confirmation(context.Background(), 1, "2025-01-27", 1)
	require.NoError(t, err)

	// someone else takes the slot while the dialog is open
	api.booked[slotKey{1, "2025-01-27", 1}] = true

	_, _, err = flow.Confirm(context.Background(), view, form.Confirm{
		Email: "late@example.com", FirstName: "L", LastName: "T", GuestCount: "2",
	})

	require.Error(t, err)
	assert.True(t, apiclient.IsStatus(err, http.StatusConflict))
	assert.Equal(t, "Timeslot already booked", apiclient.Message(err))
}
