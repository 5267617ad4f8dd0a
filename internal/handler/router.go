package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"room-booking/internal/domain/user"
	"room-booking/internal/handler/api"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/pkg/config"
)

type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the api handlers mounted by NewRouter.
type Handlers struct {
	Auth     *api.AuthHandler
	Room     *api.RoomHandler
	RoomCost *api.RoomCostHandler
	Showtime *api.ShowtimeHandler
	Customer *api.CustomerHandler
	Booking  *api.BookingHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staff := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleStaff)}

	AddRoutes(&engine.RouterGroup, []Route{
		{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
		{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
		{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: staff},
	})

	apiGroup := engine.Group("/api")
	{
		// public booking flow
		AddRoutes(apiGroup, []Route{
			{Method: http.MethodGet, Path: "/rooms", Handler: h.Room.ListRooms},
			{Method: http.MethodGet, Path: "/rooms/:id", Handler: h.Room.GetRoom},
			{Method: http.MethodGet, Path: "/rooms/:id/associations", Handler: h.Room.GetAssociations},
			{Method: http.MethodGet, Path: "/rooms/:id/availability", Handler: h.Room.GetAvailability},
			{Method: http.MethodGet, Path: "/rooms/:id/timeslots", Handler: h.Room.GetTimeslots},
			{Method: http.MethodGet, Path: "/rooms/:id/costs", Handler: h.RoomCost.ListRoomCosts},
			{Method: http.MethodGet, Path: "/rooms/costs/:id", Handler: h.RoomCost.GetRoomCost},
			{Method: http.MethodGet, Path: "/rooms/:id/showtimes", Handler: h.Showtime.ListShowtimes},
			{Method: http.MethodGet, Path: "/showtimes/:id", Handler: h.Showtime.GetShowtime},
			{Method: http.MethodGet, Path: "/customers", Handler: customerIndex(h.Customer, staff)},
			{Method: http.MethodPost, Path: "/customers", Handler: h.Customer.CreateCustomer},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.CreateBooking},
		})

		console := apiGroup.Group("")
		console.Use(staff...)
		AddRoutes(console, []Route{
			{Method: http.MethodPost, Path: "/rooms", Handler: h.Room.CreateRoom},
			{Method: http.MethodPut, Path: "/rooms/:id", Handler: h.Room.UpdateRoom},
			{Method: http.MethodDelete, Path: "/rooms/:id", Handler: h.Room.DeleteRoom},

			{Method: http.MethodPost, Path: "/rooms/:id/costs", Handler: h.RoomCost.CreateRoomCost},
			{Method: http.MethodPut, Path: "/rooms/costs/:id", Handler: h.RoomCost.UpdateRoomCost},
			{Method: http.MethodDelete, Path: "/rooms/costs/:id", Handler: h.RoomCost.DeleteRoomCost},
			{Method: http.MethodDelete, Path: "/room-costs/:id", Handler: h.RoomCost.DeleteRoomCost},

			{Method: http.MethodPost, Path: "/rooms/:id/showtimes", Handler: h.Showtime.CreateShowtime},
			{Method: http.MethodPut, Path: "/showtimes/:id", Handler: h.Showtime.UpdateShowtime},
			{Method: http.MethodDelete, Path: "/showtimes/:id", Handler: h.Showtime.DeleteShowtime},

			{Method: http.MethodGet, Path: "/customers/:id", Handler: h.Customer.GetCustomer},
			{Method: http.MethodPut, Path: "/customers/:id", Handler: h.Customer.UpdateCustomer},
			{Method: http.MethodDelete, Path: "/customers/:id", Handler: h.Customer.DeleteCustomer},

			{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListBookings},
			{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.GetBooking},
			{Method: http.MethodPut, Path: "/bookings/:id", Handler: h.Booking.UpdateBooking},
			{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Booking.DeleteBooking},
		})
	}
}

// customerIndex serves the open email lookup and the authenticated list on the same path.
func customerIndex(h *api.CustomerHandler, mw []gin.HandlerFunc) gin.HandlerFunc {
	list := ChainHandlers(append(append([]gin.HandlerFunc{}, mw...), h.ListCustomers)...)
	return func(c *gin.Context) {
		if _, ok := c.GetQuery("email"); ok {
			h.FindCustomerByEmail(c)
			return
		}
		list(c)
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

// AddRoutes mounts a route table; per-route middleware runs before the handler.
func AddRoutes(g *gin.RouterGroup, rs []Route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = ChainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func ChainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
