package web

import (
	"net/http"

	"room-booking/internal/domain/form"
	"room-booking/internal/usecase/console"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customers console.CustomerConsole
}

func NewCustomerHandler(customers console.CustomerConsole) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	list, err := h.customers.ListCustomers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "customers.html", "Customers", "customers", list)
}

func (h *CustomerHandler) NewCustomer(c *gin.Context) {
	render(c, http.StatusOK, "customer_form.html", "Add customer", "customers", formView{
		Action: "/customers/add-customer", Back: "/customers", Form: form.Customer{},
	})
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var f form.Customer
	_ = c.ShouldBind(&f)
	o := h.customers.SaveCustomer(c.Request.Context(), 0, f)
	view := formView{Action: "/customers/add-customer", Back: "/customers", Form: f}
	render(c, outcomeStatus(o), "customer_form.html", "Add customer", "customers", view.withOutcome(o))
}

func (h *CustomerHandler) EditCustomer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	f, err := h.customers.LoadCustomer(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "customer_form.html", "Edit customer", "customers", formView{
		Edit: true, Action: c.Request.URL.Path, Back: "/customers", Form: f,
	})
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var f form.Customer
	_ = c.ShouldBind(&f)
	o := h.customers.SaveCustomer(c.Request.Context(), id, f)
	view := formView{Edit: true, Action: c.Request.URL.Path, Back: "/customers", Form: f}
	render(c, outcomeStatus(o), "customer_form.html", "Edit customer", "customers", view.withOutcome(o))
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	deleted(c, h.customers.DeleteCustomer(c.Request.Context(), id))
}
