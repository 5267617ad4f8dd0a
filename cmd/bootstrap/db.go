package bootstrap

import (
	"log/slog"

	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool; with DB_MIGRATE_ON_START the schema is brought up to date first.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	if cfg.DB.MigrateOnStart {
		if err := db.Migrate(cfg.DB); err != nil {
			return nil, err
		}
		if version, _, err := db.MigrationVersion(cfg.DB); err == nil {
			slog.Info("起動時マイグレーションを適用しました", "version", version)
		}
	}

	pool, closePool, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(closePool))

	return pool, nil
}
