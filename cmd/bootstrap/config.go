package bootstrap

import (
	"room-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.LogConfig { return cfg.Log },
		func(cfg config.Config) config.BookingConfig { return cfg.Booking },
		func(cfg config.Config) config.RedisConfig { return cfg.Redis },
		func(cfg config.Config) config.AMQPConfig { return cfg.AMQP },
	),
)

var WebConfigModule = fx.Module("config/web",
	fx.Provide(
		config.LoadWebConfig,
		func(cfg config.WebConfig) config.LogConfig { return cfg.Log },
		func(cfg config.WebConfig) config.BookingConfig { return cfg.Booking },
		func(cfg config.WebConfig) config.APIClientConfig { return cfg.API },
		func(cfg config.WebConfig) config.CookieConfig { return cfg.Cookie },
	),
)
