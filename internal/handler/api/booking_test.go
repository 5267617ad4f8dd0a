//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"room-booking/internal/handler/api"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"
	"room-booking/tests/common/builder"
	"room-booking/tests/common/httptest"
	"room-booking/tests/common/testutil"
	commandsmock "room-booking/tests/mock/commands"
	queriesmock "room-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	handler := api.NewBookingHandler(s.mockCommands, s.mockQueries, config.BookingConfig{TimeZone: "UTC"})

	s.router.GET("/api/bookings", handler.ListBookings)
	s.router.GET("/api/bookings/:id", handler.GetBooking)
	s.router.POST("/api/bookings", handler.CreateBooking)
	s.router.PUT("/api/bookings/:id", handler.UpdateBooking)
	s.router.DELETE("/api/bookings/:id", handler.DeleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/api/bookings"

	s.Run("success: server issues the order id", func() {
		b := builder.NewBookingBuilder().WithoutOrderID()
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), b.Params()).
			Return(&commands.CreateBookingResult{ID: 10, OrderID: "3f2b8c1e-0000-4000-8000-000000000001"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildDTO(), "")

		var response resdto.BookingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		want := resdto.BookingCreatedResponse{
			Message: "Booking created successfully!",
			ID:      10,
			OrderID: "3f2b8c1e-0000-4000-8000-000000000001",
		}
		s.Empty(cmp.Diff(want, response))
	})

	s.Run("error: 409 when the timeslot is taken", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrTimeslotTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, builder.NewBookingBuilder().BuildDTO(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Timeslot already booked")
	})

	s.Run("error: 400 when the timeslot is not offered", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrUnknownTimeslot).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, builder.NewBookingBuilder().BuildDTO(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Timeslot is not offered on that date")
	})

	s.Run("error: 400 on request errors", func() {
		reqBody := builder.NewBookingBuilder().BuildDTO()
		cases := []struct {
			name   string
			mutate testutil.Edit
			msg    string
		}{
			{name: "missing guest_count", mutate: testutil.Without("guest_count"), msg: "Guest count is required"},
			{name: "missing show_date", mutate: testutil.Without("show_date"), msg: "Show date is required"},
			{name: "malformed show_date", mutate: testutil.With("show_date", "20/01/2025"), msg: "Show date must be YYYY-MM-DD"},
			{name: "missing show_timeslot", mutate: testutil.Without("show_timeslot"), msg: "Timeslot is required"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.PayloadOf(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})

	s.Run("error: banned customer", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, errs.Validation("Customer is not allowed to book")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, builder.NewBookingBuilder().BuildDTO(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Customer is not allowed to book")
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	view := builder.NewBookingBuilder().BuildView()
	s.mockQueries.EXPECT().ListBookings(gomock.Any()).Return([]queries.BookingView{view}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings", nil, "")

	var response []resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response, 1)
	s.Equal("2025-01-15", response[0].BookingDate)
	s.Equal("2025-01-20", response[0].ShowDate)
	s.Equal("order-0001", response[0].OrderID)
}

func (s *BookingHandlerTestSuite) TestUpdateBooking() {
	s.Run("success: keeps order id when omitted", func() {
		b := builder.NewBookingBuilder().WithoutOrderID().WithGuests(6)
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), int64(1), b.Params()).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/bookings/1", b.BuildDTO(), "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404", func() {
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), int64(2), gomock.Any()).Return(errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/bookings/2", builder.NewBookingBuilder().BuildDTO(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestDeleteBooking() {
	s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), int64(1)).Return(nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/bookings/1", nil, "")

	var response resdto.MessageResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal("Booking deleted successfully!", response.Message)
}
