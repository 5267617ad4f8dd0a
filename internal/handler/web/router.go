package web

import (
	"net/http"

	"room-booking/internal/handler"
	"room-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers groups the page handlers mounted by NewRouter.
type Handlers struct {
	Home     *HomeHandler
	Room     *RoomHandler
	Customer *CustomerHandler
	Booking  *BookingHandler
	Auth     *AuthHandler
}

func NewRouter(engine *gin.Engine, logger *middleware.Logger, h Handlers) error {
	tmpl, err := LoadTemplates()
	if err != nil {
		return err
	}
	engine.SetHTMLTemplate(tmpl)

	engine.Use(middleware.CustomRecovery())
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.Use(ForwardToken())

	engine.StaticFS("/static", StaticFiles())
	engine.NoRoute(notFound)

	handler.AddRoutes(&engine.RouterGroup, []handler.Route{
		{Method: http.MethodGet, Path: "/", Handler: h.Home.Home},
		{Method: http.MethodGet, Path: "/book", Handler: h.Home.BookForm},
		{Method: http.MethodPost, Path: "/book", Handler: h.Home.Book},
		{Method: http.MethodGet, Path: "/customers/lookup", Handler: h.Home.LookupCustomer},

		{Method: http.MethodGet, Path: "/login", Handler: h.Auth.LoginForm},
		{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
		{Method: http.MethodGet, Path: "/register", Handler: h.Auth.RegisterForm},
		{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
		{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
		{Method: http.MethodGet, Path: "/logout", Handler: h.Auth.Logout},
	})

	console := engine.Group("")
	console.Use(RequireLogin())
	handler.AddRoutes(console, []handler.Route{
		{Method: http.MethodGet, Path: "/rooms", Handler: h.Room.ListRooms},
		{Method: http.MethodGet, Path: "/rooms/add-room", Handler: h.Room.NewRoom},
		{Method: http.MethodPost, Path: "/rooms/add-room", Handler: h.Room.CreateRoom},
		{Method: http.MethodGet, Path: "/rooms/edit-room/:id", Handler: h.Room.EditRoom},
		{Method: http.MethodPost, Path: "/rooms/edit-room/:id", Handler: h.Room.UpdateRoom},
		{Method: http.MethodDelete, Path: "/rooms/:id", Handler: h.Room.DeleteRoom},

		{Method: http.MethodGet, Path: "/rooms/:id/room-costs", Handler: h.Room.ListRoomCosts},
		{Method: http.MethodGet, Path: "/rooms/:id/add-room-cost", Handler: h.Room.NewRoomCost},
		{Method: http.MethodPost, Path: "/rooms/:id/add-room-cost", Handler: h.Room.CreateRoomCost},
		{Method: http.MethodGet, Path: "/rooms/:id/edit-room-cost/:cid", Handler: h.Room.EditRoomCost},
		{Method: http.MethodPost, Path: "/rooms/:id/edit-room-cost/:cid", Handler: h.Room.UpdateRoomCost},
		{Method: http.MethodDelete, Path: "/rooms/:id/room-costs/:cid", Handler: h.Room.DeleteRoomCost},

		{Method: http.MethodGet, Path: "/rooms/:id/showtimes", Handler: h.Room.ListShowtimes},
		{Method: http.MethodGet, Path: "/rooms/:id/add-showtime", Handler: h.Room.NewShowtime},
		{Method: http.MethodPost, Path: "/rooms/:id/add-showtime", Handler: h.Room.CreateShowtime},
		{Method: http.MethodGet, Path: "/rooms/:id/edit-showtime/:sid", Handler: h.Room.EditShowtime},
		{Method: http.MethodPost, Path: "/rooms/:id/edit-showtime/:sid", Handler: h.Room.UpdateShowtime},
		{Method: http.MethodDelete, Path: "/rooms/:id/showtimes/:sid", Handler: h.Room.DeleteShowtime},

		{Method: http.MethodGet, Path: "/customers", Handler: h.Customer.ListCustomers},
		{Method: http.MethodGet, Path: "/customers/add-customer", Handler: h.Customer.NewCustomer},
		{Method: http.MethodPost, Path: "/customers/add-customer", Handler: h.Customer.CreateCustomer},
		{Method: http.MethodGet, Path: "/customers/edit-customer/:id", Handler: h.Customer.EditCustomer},
		{Method: http.MethodPost, Path: "/customers/edit-customer/:id", Handler: h.Customer.UpdateCustomer},
		{Method: http.MethodDelete, Path: "/customers/:id", Handler: h.Customer.DeleteCustomer},

		{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListBookings},
		{Method: http.MethodGet, Path: "/bookings/add-booking", Handler: h.Booking.NewBooking},
		{Method: http.MethodPost, Path: "/bookings/add-booking", Handler: h.Booking.CreateBooking},
		{Method: http.MethodGet, Path: "/bookings/edit-booking/:id", Handler: h.Booking.EditBooking},
		{Method: http.MethodPost, Path: "/bookings/edit-booking/:id", Handler: h.Booking.UpdateBooking},
		{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Booking.DeleteBooking},
	})
	return nil
}
