package web

import (
	"net/http"
	"strconv"

	"room-booking/internal/domain/form"
	"room-booking/internal/usecase/console"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	rooms     console.RoomConsole
	costs     console.RoomCostConsole
	showtimes console.ShowtimeConsole
}

func NewRoomHandler(rooms console.RoomConsole, costs console.RoomCostConsole, showtimes console.ShowtimeConsole) *RoomHandler {
	return &RoomHandler{rooms: rooms, costs: costs, showtimes: showtimes}
}

// formView is shared by every entity form; Form holds the raw field values.
type formView struct {
	Edit    bool
	Action  string
	Back    string
	Form    any
	Errors  form.FieldErrors
	Message string
	Error   string
	Extra   any
}

func (v formView) withOutcome(o console.Outcome) formView {
	v.Errors = o.Fields
	v.Message = o.Message
	v.Error = o.Error
	return v
}

func outcomeStatus(o console.Outcome) int {
	if o.Fields.Any() {
		return http.StatusUnprocessableEntity
	}
	return http.StatusOK
}

type roomListView struct {
	Rooms        []console.RoomRow
	BlockedTitle string
}

func (h *RoomHandler) ListRooms(c *gin.Context) {
	rows, err := h.rooms.ListRooms(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "rooms.html", "Rooms", "rooms", roomListView{Rooms: rows, BlockedTitle: console.RoomDeleteBlockedTitle})
}

func (h *RoomHandler) NewRoom(c *gin.Context) {
	render(c, http.StatusOK, "room_form.html", "Add room", "rooms", formView{Action: "/rooms/add-room", Back: "/rooms", Form: form.Room{}})
}

func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var f form.Room
	_ = c.ShouldBind(&f)
	o := h.rooms.SaveRoom(c.Request.Context(), 0, f)
	view := formView{Action: "/rooms/add-room", Back: "/rooms", Form: f}
	render(c, outcomeStatus(o), "room_form.html", "Add room", "rooms", view.withOutcome(o))
}

func (h *RoomHandler) EditRoom(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	f, err := h.rooms.LoadRoom(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "room_form.html", "Edit room", "rooms", formView{Edit: true, Action: c.Request.URL.Path, Back: "/rooms", Form: f})
}

func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var f form.Room
	_ = c.ShouldBind(&f)
	o := h.rooms.SaveRoom(c.Request.Context(), id, f)
	view := formView{Edit: true, Action: c.Request.URL.Path, Back: "/rooms", Form: f}
	render(c, outcomeStatus(o), "room_form.html", "Edit room", "rooms", view.withOutcome(o))
}

func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	deleted(c, h.rooms.DeleteRoom(c.Request.Context(), id))
}

func roomBase(roomID int64) string {
	return "/rooms/" + strconv.FormatInt(roomID, 10)
}

func (h *RoomHandler) ListRoomCosts(c *gin.Context) {
	roomID, ok := paramID(c, "id")
	if !ok {
		return
	}
	list, err := h.costs.ListRoomCosts(c.Request.Context(), roomID)
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "room_costs.html", "Room costs", "rooms", list)
}

func (h *RoomHandler) NewRoomCost(c *gin.Context) {
	roomID, ok := paramID(c, "id")
	if !ok {
		return
	}
	render(c, http.StatusOK, "room_cost_form.html", "Add room cost", "rooms", formView{
		Action: c.Request.URL.Path, Back: roomBase(roomID) + "/room-costs", Form: form.RoomCost{},
	})
}

func (h *RoomHandler) CreateRoomCost(c *gin.Context) {
	roomID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var f form.RoomCost
	_ = c.ShouldBind(&f)
	o := h.costs.SaveRoomCost(c.Request.Context(), roomID, 0, f)
	view := formView{Action: c.Request.URL.Path, Back: roomBase(roomID) + "/room-costs", Form: f}
	render(c, outcomeStatus(o), "room_cost_form.html", "Add room cost", "rooms", view.withOutcome(o))
}

func (h *RoomHandler) EditRoomCost(c *gin.Context) {
	roomID, ok := paramID(c, "id")
	if !ok {
		return
	}
	id, ok := paramID(c, "cid")
	if !ok {
		return
	}
	f, err := h.costs.LoadRoomCost(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "room_cost_form.html", "Edit room cost", "rooms", formView{
		Edit: true, Action: c.Request.URL.Path, Back: roomBase(roomID) + "/room-costs", Form: f,
	})
}

func (h *RoomHandler) UpdateRoomCost(c *gin.Context) {
	roomID, ok := paramID(c, "id")
	if !ok {
		return
	}
	id, ok := paramID(c, "cid")
	if !ok {
		return
	}
	var f form.RoomCost
	_ = c.ShouldBind(&f)
	o := h.costs.SaveRoomCost(c.Request.Context(), roomID, id, f)
	view := formView{Edit: true, Action: c.Request.URL.Path, Back: roomBase(roomID) + "/room-costs", Form: f}
	render(c, outcomeStatus(o), "room_cost_form.html", "Edit room cost", "rooms", view.withOutcome(o))
}

func (h *RoomHandler) DeleteRoomCost(c *gin.Context) {
	id, ok := paramID(c, "cid")
	if !ok {
		return
	}
	deleted(c, h.costs.DeleteRoomCost(c.Request.Context(), id))
}

func (h *RoomHandler) ListShowtimes(c *gin.Context) {
	roomID, ok := paramID(c, "id")
	if !ok {
		return
	}
	list, err := h.showtimes.ListShowtimes(c.Request.Context(), roomID)
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "showtimes.html", "Showtimes", "rooms", list)
}

func (h *RoomHandler) NewShowtime(c *gin.Context) {
	roomID, ok := paramID(c, "id")
	if !ok {
		return
	}
	render(c, http.StatusOK, "showtime_form.html", "Add showtime", "rooms", formView{
		Action: c.Request.URL.Path, Back: roomBase(roomID) + "/showtimes", Form: form.Showtime{},
	})
}

func (h *RoomHandler) CreateShowtime(c *gin.Context) {
	roomID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var f form.Showtime
	_ = c.ShouldBind(&f)
	o := h.showtimes.SaveShowtime(c.Request.Context(), roomID, 0, f)
	view := formView{Action: c.Request.URL.Path, Back: roomBase(roomID) + "/showtimes", Form: f}
	render(c, outcomeStatus(o), "showtime_form.html", "Add showtime", "rooms", view.withOutcome(o))
}

func (h *RoomHandler) EditShowtime(c *gin.Context) {
	roomID, ok := paramID(c, "id")
	if !ok {
		return
	}
	id, ok := paramID(c, "sid")
	if !ok {
		return
	}
	f, err := h.showtimes.LoadShowtime(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "showtime_form.html", "Edit showtime", "rooms", formView{
		Edit: true, Action: c.Request.URL.Path, Back: roomBase(roomID) + "/showtimes", Form: f,
	})
}

func (h *RoomHandler) UpdateShowtime(c *gin.Context) {
	roomID, ok := paramID(c, "id")
	if !ok {
		return
	}
	id, ok := paramID(c, "sid")
	if !ok {
		return
	}
	var f form.Showtime
	_ = c.ShouldBind(&f)
	o := h.showtimes.SaveShowtime(c.Request.Context(), roomID, id, f)
	view := formView{Edit: true, Action: c.Request.URL.Path, Back: roomBase(roomID) + "/showtimes", Form: f}
	render(c, outcomeStatus(o), "showtime_form.html", "Edit showtime", "rooms", view.withOutcome(o))
}

func (h *RoomHandler) DeleteShowtime(c *gin.Context) {
	id, ok := paramID(c, "sid")
	if !ok {
		return
	}
	deleted(c, h.showtimes.DeleteShowtime(c.Request.Context(), id))
}
