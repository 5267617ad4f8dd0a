package api

import (
	"net/http"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomCostHandler struct {
	commands commands.RoomCostCommands
	queries  queries.RoomCostQueries
}

func NewRoomCostHandler(cmd commands.RoomCostCommands, q queries.RoomCostQueries) *RoomCostHandler {
	return &RoomCostHandler{commands: cmd, queries: q}
}

// @Summary List room costs
// @Tags room-costs
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {array} resdto.RoomCostResponse
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id}/costs [get]
func (h *RoomCostHandler) ListRoomCosts(c *gin.Context) {
	roomID, ok := pathID(c, "id")
	if !ok {
		return
	}
	costs, err := h.queries.ListRoomCosts(c.Request.Context(), roomID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	res, err := resdto.FromRoomCostViews(costs)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get room cost
// @Tags room-costs
// @Produce json
// @Param id path int true "Room cost ID"
// @Success 200 {object} resdto.RoomCostResponse
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/costs/{id} [get]
func (h *RoomCostHandler) GetRoomCost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cost, err := h.queries.GetRoomCost(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	res, err := resdto.FromRoomCostView(cost)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create room cost
// @Tags room-costs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param request body reqdto.RoomCostRequest true "Room cost"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id}/costs [post]
func (h *RoomCostHandler) CreateRoomCost(c *gin.Context) {
	roomID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RoomCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		abortWithError(c, err)
		return
	}
	id, err := h.commands.CreateRoomCost(c.Request.Context(), roomID, params)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{Message: "Room cost created successfully!", ID: id})
}

// @Summary Update room cost
// @Tags room-costs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room cost ID"
// @Param request body reqdto.RoomCostRequest true "Room cost"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/costs/{id} [put]
func (h *RoomCostHandler) UpdateRoomCost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RoomCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		abortWithError(c, err)
		return
	}
	if err := h.commands.UpdateRoomCost(c.Request.Context(), id, params); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Room cost updated successfully!"})
}

// @Summary Delete room cost
// @Tags room-costs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room cost ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/costs/{id} [delete]
func (h *RoomCostHandler) DeleteRoomCost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.commands.DeleteRoomCost(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Room cost deleted successfully!"})
}
