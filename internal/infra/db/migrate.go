package db

import (
	"log/slog"

	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/errs"
	"room-booking/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrate applies every pending up migration embedded in the binary.
func Migrate(cfg config.DBConfig) error {
	m, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer closeMigrator(m)

	if err := m.Up(); err != nil {
		if errs.Is(err, migrate.ErrNoChange) {
			slog.Info("マイグレーションは最新です")
			return nil
		}
		return errs.Wrap(err, "failed to apply migrations")
	}
	return nil
}

// MigrateDown rolls back the given number of migrations.
func MigrateDown(cfg config.DBConfig, steps int) error {
	m, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer closeMigrator(m)

	if err := m.Steps(-steps); err != nil && !errs.Is(err, migrate.ErrNoChange) {
		return errs.Wrap(err, "failed to roll back migrations")
	}
	return nil
}

func MigrationVersion(cfg config.DBConfig) (uint, bool, error) {
	m, err := newMigrator(cfg)
	if err != nil {
		return 0, false, err
	}
	defer closeMigrator(m)

	version, dirty, err := m.Version()
	if errs.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errs.Wrap(err, "failed to read migration version")
	}
	return version, dirty, nil
}

func newMigrator(cfg config.DBConfig) (*migrate.Migrate, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, errs.Wrap(err, "failed to open embedded migrations")
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, cfg.BuildDSN())
	if err != nil {
		return nil, errs.Wrap(err, "failed to create migrator")
	}
	return m, nil
}

func closeMigrator(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil || dbErr != nil {
		slog.Warn("マイグレーションのクローズに失敗しました", "source_error", srcErr, "db_error", dbErr)
	}
}
