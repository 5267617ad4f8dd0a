package bootstrap

import (
	"room-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module wires the api binary.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	CacheModule,
	MessagingModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)

// WebModule wires the web front-end binary.
var WebModule = fx.Options(
	WebConfigModule,
	LoggerModule,
	components.WebModule,
)
