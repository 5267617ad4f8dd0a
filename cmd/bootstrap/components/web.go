package components

import (
	"room-booking/internal/handler/web"
	"room-booking/internal/infra/apiclient"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/usecase/bookingflow"
	"room-booking/internal/usecase/console"

	"go.uber.org/fx"
)

// WebModule wires the server-rendered front-end; all data goes through the api client.
var WebModule = fx.Module("web",
	fx.Provide(
		fx.Annotate(
			apiclient.NewClient,
			fx.As(new(console.API)),
			fx.As(new(bookingflow.API)),
		),
		clock.NewRealClock,
	),
	webUseCaseModule,
	webHandlerModule,
)

var _ web.API = (*apiclient.Client)(nil)

var webUseCaseModule = fx.Module("web/usecase",
	fx.Provide(
		bookingflow.NewFlow,
		console.NewRoomConsole,
		console.NewRoomCostConsole,
		console.NewShowtimeConsole,
		console.NewCustomerConsole,
		console.NewBookingConsole,
		console.NewAuthConsole,
	),
)

var webHandlerModule = fx.Module("web/handler",
	fx.Provide(
		web.NewHomeHandler,
		web.NewRoomHandler,
		web.NewCustomerHandler,
		web.NewBookingHandler,
		web.NewAuthHandler,
		newWebHandlers,
	),
	fx.Invoke(web.NewRouter),
)

func newWebHandlers(
	home *web.HomeHandler,
	room *web.RoomHandler,
	customer *web.CustomerHandler,
	booking *web.BookingHandler,
	auth *web.AuthHandler,
) web.Handlers {
	return web.Handlers{
		Home:     home,
		Room:     room,
		Customer: customer,
		Booking:  booking,
		Auth:     auth,
	}
}
