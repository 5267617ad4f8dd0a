package bootstrap

import (
	"context"

	"room-booking/internal/infra/cache"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

// AvailabilityCache is read by the availability queries and invalidated by the write commands.
type AvailabilityCache interface {
	queries.AvailabilityCache
	commands.AvailabilityInvalidator
}

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewAvailabilityCache,
		func(c AvailabilityCache) queries.AvailabilityCache { return c },
		func(c AvailabilityCache) commands.AvailabilityInvalidator { return c },
	),
)

func NewAvailabilityCache(lc fx.Lifecycle, cfg config.RedisConfig) AvailabilityCache {
	rdb := cache.NewRedisClient(cfg)
	if rdb == nil {
		return cache.Noop{}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return cache.NewAvailabilityCache(rdb, cfg)
}
