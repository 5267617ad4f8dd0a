package components

import (
	"room-booking/internal/handler"
	"room-booking/internal/handler/api"
	"room-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewRoomCostHandler,
		api.NewShowtimeHandler,
		api.NewCustomerHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	room *api.RoomHandler,
	roomCost *api.RoomCostHandler,
	showtime *api.ShowtimeHandler,
	customer *api.CustomerHandler,
	booking *api.BookingHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Room:     room,
		RoomCost: roomCost,
		Showtime: showtime,
		Customer: customer,
		Booking:  booking,
	}
}
