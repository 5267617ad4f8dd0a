package api

import (
	"net/http"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	commands commands.CustomerCommands
	queries  queries.CustomerQueries
}

func NewCustomerHandler(cmd commands.CustomerCommands, q queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{commands: cmd, queries: q}
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CustomerResponse
// @Failure 401 {object} httperr.Response
// @Router /api/customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	list, err := h.queries.ListCustomers(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	res, err := resdto.FromCustomerViews(list)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Find customer by email
// @Description Served by GET /api/customers when the email query is present
// @Tags customers
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 404 {object} httperr.Response
// @Router /api/customers [get]
func (h *CustomerHandler) FindCustomerByEmail(c *gin.Context) {
	found, err := h.queries.FindCustomerByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	res, err := resdto.FromCustomerView(found)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 404 {object} httperr.Response
// @Router /api/customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	found, err := h.queries.GetCustomer(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	res, err := resdto.FromCustomerView(found)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create customer
// @Description Returns the stored record
// @Tags customers
// @Accept json
// @Produce json
// @Param request body reqdto.CustomerRequest true "Customer"
// @Success 201 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req reqdto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	ctx := c.Request.Context()
	id, err := h.commands.CreateCustomer(ctx, req.ToParams())
	if err != nil {
		abortWithError(c, err)
		return
	}
	created, err := h.queries.GetCustomer(ctx, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	res, err := resdto.FromCustomerView(created)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Update customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Param request body reqdto.CustomerRequest true "Customer"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	if err := h.commands.UpdateCustomer(c.Request.Context(), id, req.ToParams()); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Customer updated successfully!"})
}

// @Summary Delete customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.commands.DeleteCustomer(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Customer deleted successfully!"})
}
