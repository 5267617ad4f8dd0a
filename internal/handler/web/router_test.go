//go:build unit

package web_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/handler/web"
	"room-booking/internal/infra/apiclient"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/bookingflow"
	"room-booking/internal/usecase/console"
	"room-booking/tests/common/httptest"
	webmock "room-booking/tests/mock/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const sessionToken = "session-token"

type WebRouterTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	api    *webmock.MockAPI
	router *gin.Engine
}

func (s *WebRouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.api = webmock.NewMockAPI(s.ctrl)

	cfg := config.NewTestWebConfig("http://api.invalid")
	cfg.Booking = config.BookingConfig{AvailabilityDays: 7, TimeZone: "UTC"}
	clk := clock.NewMockClock(time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC))

	s.router = gin.New()
	err := web.NewRouter(s.router, middleware.NewLogger(cfg.Log), web.Handlers{
		Home: web.NewHomeHandler(bookingflow.NewFlow(s.api, clk, cfg.Booking)),
		Room: web.NewRoomHandler(
			console.NewRoomConsole(s.api),
			console.NewRoomCostConsole(s.api),
			console.NewShowtimeConsole(s.api),
		),
		Customer: web.NewCustomerHandler(console.NewCustomerConsole(s.api)),
		Booking:  web.NewBookingHandler(console.NewBookingConsole(s.api, clk, cfg.Booking)),
		Auth:     web.NewAuthHandler(console.NewAuthConsole(s.api), cfg.Cookie),
	})
	s.Require().NoError(err)
}

func (s *WebRouterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestWebRouterTestSuite(t *testing.T) {
	suite.Run(t, new(WebRouterTestSuite))
}

func theaterA() resdto.RoomResponse {
	return resdto.RoomResponse{ID: 1, Title: "Theater A", MaxCapacity: 8, MinCapacity: 2, Duration: 60}
}

func mondaySlots(firstBooked bool) []resdto.TimeslotResponse {
	return []resdto.TimeslotResponse{
		{ID: 11, Timeslot: 1, RoomName: "Theater A", StartTime: "10:00", EndTime: "11:00", IsBooked: firstBooked},
		{ID: 12, Timeslot: 2, RoomName: "Theater A", StartTime: "13:00", EndTime: "14:00"},
	}
}

func (s *WebRouterTestSuite) TestConsoleRequiresLogin() {
	for _, path := range []string{"/rooms", "/customers", "/bookings/add-booking", "/rooms/1/showtimes"} {
		s.Run(path, func() {
			w := httptest.PerformPage(s.T(), s.router, http.MethodGet, path, "")
			httptest.AssertRedirect(s.T(), w, "/login?next="+url.QueryEscape(path))
		})
	}
}

func (s *WebRouterTestSuite) TestHome() {
	s.Run("success: room and date show links to free timeslots", func() {
		s.api.EXPECT().ListRooms(gomock.Any()).Return([]resdto.RoomResponse{theaterA()}, nil)
		s.api.EXPECT().AvailableDates(gomock.Any(), int64(1), "2025-01").Return([]string{"2025-01-20", "2025-01-27"}, nil)
		s.api.EXPECT().Timeslots(gomock.Any(), int64(1), "2025-01-20").Return(mondaySlots(true), nil)

		w := httptest.PerformPage(s.T(), s.router, http.MethodGet, "/?room_id=1&month=2025-01&date=2025-01-20", "")

		s.Equal(http.StatusOK, w.Code)
		body := w.Body.String()
		s.Contains(body, "January 2025")
		s.Contains(body, "10:00 - 11:00 (booked)")
		s.Contains(body, `href="/book?room_id=1&date=2025-01-20&timeslot=2"`)
		s.NotContains(body, "timeslot=1")
	})

	s.Run("error: page still renders when the api is down", func() {
		s.api.EXPECT().ListRooms(gomock.Any()).Return(nil, &apiclient.TransportError{Op: "GET /api/rooms", Err: http.ErrHandlerTimeout})

		w := httptest.PerformPage(s.T(), s.router, http.MethodGet, "/", "")

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "Could not reach the booking service")
	})
}

func (s *WebRouterTestSuite) TestBookForm() {
	s.Run("error: 409 Conflict for a booked timeslot", func() {
		s.api.EXPECT().ListRooms(gomock.Any()).Return([]resdto.RoomResponse{theaterA()}, nil)
		s.api.EXPECT().Timeslots(gomock.Any(), int64(1), "2025-01-20").Return(mondaySlots(true), nil)

		w := httptest.PerformPage(s.T(), s.router, http.MethodGet, "/book?room_id=1&date=2025-01-20&timeslot=1", "")

		s.Equal(http.StatusConflict, w.Code)
		s.Contains(w.Body.String(), "Timeslot already booked")
	})

	s.Run("error: 404 Not Found for a malformed query", func() {
		w := httptest.PerformPage(s.T(), s.router, http.MethodGet, "/book?room_id=x&date=2025-01-20&timeslot=1", "")
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *WebRouterTestSuite) TestBook() {
	s.Run("success: new email registers the customer before booking", func() {
		s.api.EXPECT().ListRooms(gomock.Any()).Return([]resdto.RoomResponse{theaterA()}, nil)
		s.api.EXPECT().Timeslots(gomock.Any(), int64(1), "2025-01-20").Return(mondaySlots(false), nil)
		gomock.InOrder(
			s.api.EXPECT().FindCustomerByEmail(gomock.Any(), "new@example.com").
				Return(nil, &apiclient.APIError{Status: http.StatusNotFound, Message: "Customer not found"}),
			s.api.EXPECT().CreateCustomer(gomock.Any(), reqdto.CustomerRequest{FirstName: "Nia", LastName: "Park", Email: "new@example.com"}).
				Return(&resdto.CustomerResponse{ID: 5}, nil),
			s.api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, req reqdto.BookingRequest) (*resdto.BookingCreatedResponse, error) {
					s.Equal(int64(5), req.CustomerID)
					s.Equal("2025-01-20", req.ShowDate)
					s.Equal(1, *req.ShowTimeslot)
					return &resdto.BookingCreatedResponse{Message: "Booking created successfully!", ID: 40, OrderID: "ord-40"}, nil
				}),
		)

		w := httptest.PerformForm(s.T(), s.router, "/book", url.Values{
			"room_id": {"1"}, "date": {"2025-01-20"}, "timeslot": {"1"},
			"email": {"new@example.com"}, "first_name": {"Nia"}, "last_name": {"Park"}, "guest_count": {"3"},
		}, "")

		httptest.AssertRedirect(s.T(), w, "/?date=2025-01-20&month=2025-01&room_id=1&booked=ord-40")
	})

	s.Run("error: 422 re-renders the dialog on invalid input", func() {
		s.api.EXPECT().ListRooms(gomock.Any()).Return([]resdto.RoomResponse{theaterA()}, nil)
		s.api.EXPECT().Timeslots(gomock.Any(), int64(1), "2025-01-20").Return(mondaySlots(false), nil)

		w := httptest.PerformForm(s.T(), s.router, "/book", url.Values{
			"room_id": {"1"}, "date": {"2025-01-20"}, "timeslot": {"2"}, "email": {"a@example.com"},
		}, "")

		s.Equal(http.StatusUnprocessableEntity, w.Code)
		s.Contains(w.Body.String(), "First Name is required")
		s.Contains(w.Body.String(), `id="confirm-button" disabled`)
	})
}

func (s *WebRouterTestSuite) TestLookupCustomer() {
	s.api.EXPECT().FindCustomerByEmail(gomock.Any(), "ann@example.com").Return(&resdto.CustomerResponse{ID: 7, FirstName: "Ann"}, nil)

	w := httptest.PerformPage(s.T(), s.router, http.MethodGet, "/customers/lookup?email=ann%40example.com", "")

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"found":true,"customer":{"id":7,"first_name":"Ann","last_name":"","email":"","is_minor":false,"is_banned":false,"customer_notes":null}}`, w.Body.String())
}

func (s *WebRouterTestSuite) TestLogin() {
	s.Run("success: sets the cookie and redirects to next", func() {
		s.api.EXPECT().Login(gomock.Any(), reqdto.LoginRequest{Username: "admin", Password: "pw"}).Return(sessionToken, nil)

		w := httptest.PerformForm(s.T(), s.router, "/login", url.Values{"username": {"admin"}, "password": {"pw"}, "next": {"/bookings"}}, "")

		httptest.AssertRedirect(s.T(), w, "/bookings")
		session := httptest.SessionCookie(w)
		s.Require().NotNil(session)
		s.Equal(sessionToken, session.Value)
		s.True(session.HttpOnly)
	})

	s.Run("success: ignores an external next", func() {
		s.api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(sessionToken, nil)

		w := httptest.PerformForm(s.T(), s.router, "/login", url.Values{"username": {"admin"}, "password": {"pw"}, "next": {"//evil.example"}}, "")

		httptest.AssertRedirect(s.T(), w, "/rooms")
	})

	s.Run("error: 401 re-renders the form", func() {
		s.api.EXPECT().Login(gomock.Any(), gomock.Any()).Return("", &apiclient.APIError{Status: http.StatusUnauthorized, Message: "Invalid credentials"})

		w := httptest.PerformForm(s.T(), s.router, "/login", url.Values{"username": {"admin"}, "password": {"bad"}}, "")

		s.Equal(http.StatusUnauthorized, w.Code)
		s.Contains(w.Body.String(), "Invalid credentials")
	})
}

func (s *WebRouterTestSuite) TestRooms() {
	s.Run("error: expired session returns to login", func() {
		s.api.EXPECT().ListRooms(gomock.Any()).Return(nil, &apiclient.APIError{Status: http.StatusUnauthorized, Message: "Invalid or expired token"})

		w := httptest.PerformPage(s.T(), s.router, http.MethodGet, "/rooms", sessionToken)

		httptest.AssertRedirect(s.T(), w, "/login?next=%2Frooms")
	})

	s.Run("success: creates a room", func() {
		s.api.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).Return(&resdto.CreatedResponse{Message: "Room created successfully!", ID: 3}, nil)

		w := httptest.PerformForm(s.T(), s.router, "/rooms/add-room", url.Values{
			"title": {"Attic"}, "max_capacity": {"6"}, "min_capacity": {"1"}, "duration": {"45"}, "reset_buffer": {"10"},
		}, sessionToken)

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "Room created successfully!")
	})

	s.Run("error: 422 on invalid input", func() {
		w := httptest.PerformForm(s.T(), s.router, "/rooms/add-room", url.Values{"title": {""}}, sessionToken)

		s.Equal(http.StatusUnprocessableEntity, w.Code)
		s.Contains(w.Body.String(), "Room Title is required")
	})
}

func (s *WebRouterTestSuite) TestDeleteEndpoints() {
	s.Run("success: returns 200 OK on delete", func() {
		s.api.EXPECT().DeleteBooking(gomock.Any(), int64(4)).Return(nil)

		w := httptest.PerformPage(s.T(), s.router, http.MethodDelete, "/bookings/4", sessionToken)

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"message":"Deleted"}`, w.Body.String())
	})

	s.Run("error: 409 Conflict for a room with associations", func() {
		s.api.EXPECT().DeleteRoom(gomock.Any(), int64(1)).
			Return(&apiclient.APIError{Status: http.StatusConflict, Message: console.RoomDeleteBlockedTitle})

		w := httptest.PerformPage(s.T(), s.router, http.MethodDelete, "/rooms/1", sessionToken)

		s.Equal(http.StatusConflict, w.Code)
		s.JSONEq(`{"error":"Remove costs and/or showtimes before deleting"}`, w.Body.String())
	})

	s.Run("error: 502 Bad Gateway when the api is unreachable", func() {
		s.api.EXPECT().DeleteCustomer(gomock.Any(), int64(2)).Return(&apiclient.TransportError{Op: "DELETE", Err: http.ErrServerClosed})

		w := httptest.PerformPage(s.T(), s.router, http.MethodDelete, "/customers/2", sessionToken)

		s.Equal(http.StatusBadGateway, w.Code)
	})

	s.Run("error: 404 Not Found for an invalid id", func() {
		w := httptest.PerformPage(s.T(), s.router, http.MethodDelete, "/bookings/abc", sessionToken)
		s.Equal(http.StatusNotFound, w.Code)
	})
}
