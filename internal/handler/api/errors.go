package api

import (
	"net/http"
	"strconv"

	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidID      = errs.New("invalid id")
	errInvalidRequest = errs.New("invalid request format")
)

type errorStatus struct {
	target error
	status int
	msg    string
}

// conflicts and lookups shared by every resource; validation errors carry their own message.
var errorStatuses = []errorStatus{
	{errs.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{errs.ErrRoomCostNotFound, http.StatusNotFound, "Room cost not found"},
	{errs.ErrShowtimeNotFound, http.StatusNotFound, "Showtime not found"},
	{errs.ErrCustomerNotFound, http.StatusNotFound, "Customer not found"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{errs.ErrRoomHasAssociations, http.StatusConflict, "Remove costs and/or showtimes before deleting"},
	{errs.ErrCustomerHasBookings, http.StatusConflict, "Remove the customer's bookings before deleting"},
	{errs.ErrTimeslotTaken, http.StatusConflict, "Timeslot already booked"},
	{errs.ErrDuplicateShowtime, http.StatusConflict, "Timeslot already exists for that day"},
	{errs.ErrDuplicateEmail, http.StatusConflict, "Email already registered"},
	{errs.ErrDuplicateUser, http.StatusConflict, "Username or email already registered"},
	{errs.ErrDuplicateOrderID, http.StatusConflict, "Order id already used"},
	{errs.ErrUnknownTimeslot, http.StatusBadRequest, "Timeslot is not offered on that date"},
}

func statusOf(err error) (int, string) {
	if errs.Is(err, errs.ErrDomainValidation) {
		return http.StatusBadRequest, errs.Message(err)
	}
	for _, s := range errorStatuses {
		if errs.Is(err, s.target) {
			return s.status, s.msg
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

func abortWithError(c *gin.Context, err error) {
	status, msg := statusOf(err)
	httperr.AbortWithError(c, status, err, msg, nil)
}

func abortInvalidRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidRequest), "Invalid request format", nil)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidID), "Invalid id", nil)
		return 0, false
	}
	return id, true
}
