package api

import (
	"net/http"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	commands     commands.RoomCommands
	queries      queries.RoomQueries
	availability queries.AvailabilityQueries
}

func NewRoomHandler(cmd commands.RoomCommands, q queries.RoomQueries, availability queries.AvailabilityQueries) *RoomHandler {
	return &RoomHandler{commands: cmd, queries: q, availability: availability}
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Failure 500 {object} httperr.Response
// @Router /api/rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.queries.ListRooms(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	res, err := resdto.FromRoomViews(rooms)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	room, err := h.queries.GetRoom(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	res, err := resdto.FromRoomView(room)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RoomRequest true "Room"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req reqdto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		abortWithError(c, err)
		return
	}
	id, err := h.commands.CreateRoom(c.Request.Context(), params)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{Message: "Room created successfully!", ID: id})
}

// @Summary Update room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param request body reqdto.RoomRequest true "Room"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		abortWithError(c, err)
		return
	}
	if err := h.commands.UpdateRoom(c.Request.Context(), id, params); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Room updated successfully!"})
}

// @Summary Delete room
// @Description Fails with 409 while costs, showtimes or bookings reference the room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.commands.DeleteRoom(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Room deleted successfully!"})
}

// @Summary Room associations
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} resdto.AssociationsResponse
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id}/associations [get]
func (h *RoomHandler) GetAssociations(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	has, err := h.queries.HasAssociations(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AssociationsResponse{HasAssociations: has})
}

// @Summary Available dates
// @Description Dates with at least one free timeslot, for the next days or for the given month
// @Tags availability
// @Produce json
// @Param id path int true "Room ID"
// @Param month query string false "YYYY-MM"
// @Success 200 {array} string
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id}/availability [get]
func (h *RoomHandler) GetAvailability(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	dates, err := h.availability.AvailableDates(c.Request.Context(), id, c.Query("month"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dates)
}

// @Summary Timeslots of a date
// @Tags availability
// @Produce json
// @Param id path int true "Room ID"
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {array} queries.TimeslotView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id}/timeslots [get]
func (h *RoomHandler) GetTimeslots(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	slots, err := h.availability.Timeslots(c.Request.Context(), id, c.Query("date"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}
