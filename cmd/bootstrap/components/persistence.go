package components

import (
	"room-booking/internal/infra/readstore"
	"room-booking/internal/infra/uow"
	"room-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

// Write repositories are built per transaction by the unit of work.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		uow.NewPostgresUoW,
	),
	readstoreModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			readstore.NewRoomCostReadStore,
			fx.As(new(queries.RoomCostReadStore)),
		),
		fx.Annotate(
			readstore.NewShowtimeReadStore,
			fx.As(new(queries.ShowtimeReadStore)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)
