package web

import (
	"net/http"

	"room-booking/internal/domain/form"
	"room-booking/internal/usecase/console"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookings console.BookingConsole
}

func NewBookingHandler(bookings console.BookingConsole) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	list, err := h.bookings.ListBookings(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "bookings.html", "Bookings", "bookings", list)
}

func (h *BookingHandler) NewBooking(c *gin.Context) {
	h.renderForm(c, http.StatusOK, formView{Action: "/bookings/add-booking", Back: "/bookings", Form: form.Booking{}})
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var f form.Booking
	_ = c.ShouldBind(&f)
	o := h.bookings.SaveBooking(c.Request.Context(), 0, f)
	view := formView{Action: "/bookings/add-booking", Back: "/bookings", Form: f}
	h.renderForm(c, outcomeStatus(o), view.withOutcome(o))
}

func (h *BookingHandler) EditBooking(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	f, err := h.bookings.LoadBooking(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	h.renderForm(c, http.StatusOK, formView{Edit: true, Action: c.Request.URL.Path, Back: "/bookings", Form: f})
}

func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var f form.Booking
	_ = c.ShouldBind(&f)
	o := h.bookings.SaveBooking(c.Request.Context(), id, f)
	view := formView{Edit: true, Action: c.Request.URL.Path, Back: "/bookings", Form: f}
	h.renderForm(c, outcomeStatus(o), view.withOutcome(o))
}

func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	deleted(c, h.bookings.DeleteBooking(c.Request.Context(), id))
}

// renderForm adds the room and customer options the selects need.
func (h *BookingHandler) renderForm(c *gin.Context, status int, view formView) {
	opts, err := h.bookings.Options(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	view.Extra = opts
	title := "Add booking"
	if view.Edit {
		title = "Edit booking"
	}
	render(c, status, "booking_form.html", title, "bookings", view)
}
