package api

import (
	"net/http"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ShowtimeHandler struct {
	commands commands.ShowtimeCommands
	queries  queries.ShowtimeQueries
}

func NewShowtimeHandler(cmd commands.ShowtimeCommands, q queries.ShowtimeQueries) *ShowtimeHandler {
	return &ShowtimeHandler{commands: cmd, queries: q}
}

// @Summary List showtimes
// @Description Sorted by day of week then timeslot
// @Tags showtimes
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {array} resdto.ShowtimeResponse
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id}/showtimes [get]
func (h *ShowtimeHandler) ListShowtimes(c *gin.Context) {
	roomID, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := h.queries.ListShowtimes(c.Request.Context(), roomID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	res, err := resdto.FromShowtimeViews(list)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get showtime
// @Tags showtimes
// @Produce json
// @Param id path int true "Showtime ID"
// @Success 200 {object} resdto.ShowtimeResponse
// @Failure 404 {object} httperr.Response
// @Router /api/showtimes/{id} [get]
func (h *ShowtimeHandler) GetShowtime(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	st, err := h.queries.GetShowtime(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	res, err := resdto.FromShowtimeView(st)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create showtime
// @Tags showtimes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param request body reqdto.ShowtimeRequest true "Showtime"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/rooms/{id}/showtimes [post]
func (h *ShowtimeHandler) CreateShowtime(c *gin.Context) {
	roomID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ShowtimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		abortWithError(c, err)
		return
	}
	id, err := h.commands.CreateShowtime(c.Request.Context(), roomID, params)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{Message: "Showtime created successfully!", ID: id})
}

// @Summary Update showtime
// @Tags showtimes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Showtime ID"
// @Param request body reqdto.ShowtimeRequest true "Showtime"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/showtimes/{id} [put]
func (h *ShowtimeHandler) UpdateShowtime(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ShowtimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		abortWithError(c, err)
		return
	}
	if err := h.commands.UpdateShowtime(c.Request.Context(), id, params); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Showtime updated successfully!"})
}

// @Summary Delete showtime
// @Tags showtimes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Showtime ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Router /api/showtimes/{id} [delete]
func (h *ShowtimeHandler) DeleteShowtime(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.commands.DeleteShowtime(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Showtime deleted successfully!"})
}
