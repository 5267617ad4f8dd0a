package web

import (
	"net/http"
	"net/url"
	"strconv"

	"room-booking/internal/domain/form"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/infra/apiclient"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/bookingflow"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	flow bookingflow.Flow
}

func NewHomeHandler(flow bookingflow.Flow) *HomeHandler {
	return &HomeHandler{flow: flow}
}

type homeView struct {
	*bookingflow.HomeView
	Booked string
}

type bookView struct {
	*bookingflow.ConfirmView
	Form   form.Confirm
	Ready  bool
	Errors form.FieldErrors
	Error  string
}

func selectionFrom(c *gin.Context) bookingflow.Selection {
	roomID, _ := strconv.ParseInt(c.Query("room_id"), 10, 64)
	return bookingflow.Selection{
		RoomID: roomID,
		Month:  c.Query("month"),
		Date:   c.Query("date"),
	}
}

func homeURL(roomID int64, date string) string {
	q := url.Values{}
	q.Set("room_id", strconv.FormatInt(roomID, 10))
	if len(date) >= 7 {
		q.Set("month", date[:7])
	}
	q.Set("date", date)
	return "/?" + q.Encode()
}

// Home is the room select, calendar and timeslot list of the public flow.
func (h *HomeHandler) Home(c *gin.Context) {
	view := h.flow.Home(c.Request.Context(), selectionFrom(c))
	render(c, http.StatusOK, "home.html", "Book a room", "home", homeView{HomeView: view, Booked: c.Query("booked")})
}

// BookForm opens the confirmation dialog for a free timeslot.
func (h *HomeHandler) BookForm(c *gin.Context) {
	view, ok := h.confirmation(c, c.Query("room_id"), c.Query("date"), c.Query("timeslot"))
	if !ok {
		return
	}
	render(c, http.StatusOK, "book.html", "Confirm booking", "home", bookView{ConfirmView: view})
}

// Book confirms the booking; on success the home view re-reads the timeslots from the api.
func (h *HomeHandler) Book(c *gin.Context) {
	view, ok := h.confirmation(c, c.PostForm("room_id"), c.PostForm("date"), c.PostForm("timeslot"))
	if !ok {
		return
	}

	var f form.Confirm
	if err := c.ShouldBind(&f); err != nil {
		notFound(c)
		return
	}

	res, fe, err := h.flow.Confirm(c.Request.Context(), view, f)
	if fe.Any() || err != nil {
		status := http.StatusUnprocessableEntity
		if err != nil {
			_ = c.Error(err)
			status = apiStatus(err)
		}
		render(c, status, "book.html", "Confirm booking", "home", bookView{
			ConfirmView: view,
			Form:        f,
			Ready:       f.Ready(),
			Errors:      fe,
			Error:       apiclient.Message(err),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, homeURL(view.Room.ID, view.Date)+"&booked="+url.QueryEscape(res.OrderID))
}

func (h *HomeHandler) confirmation(c *gin.Context, rawRoom, date, rawSlot string) (*bookingflow.ConfirmView, bool) {
	roomID, err1 := strconv.ParseInt(rawRoom, 10, 64)
	timeslot, err2 := strconv.Atoi(rawSlot)
	if err1 != nil || err2 != nil || date == "" {
		notFound(c)
		return nil, false
	}

	view, err := h.flow.Confirmation(c.Request.Context(), roomID, date, timeslot)
	if err != nil {
		if errs.IsAny(err, bookingflow.ErrSlotBooked, bookingflow.ErrSlotUnavailable) {
			render(c, http.StatusConflict, "error.html", "Not available", "home", errorView{Message: err.Error()})
			c.Abort()
			return nil, false
		}
		fail(c, err)
		return nil, false
	}
	return view, true
}

type lookupResponse struct {
	Found    bool                     `json:"found"`
	Customer *resdto.CustomerResponse `json:"customer,omitempty"`
}

// LookupCustomer backs the email blur handler of the confirmation dialog.
func (h *HomeHandler) LookupCustomer(c *gin.Context) {
	found, err := h.flow.LookupCustomer(c.Request.Context(), c.Query("email"))
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, lookupResponse{Found: found != nil, Customer: found})
}
