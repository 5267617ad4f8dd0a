package main

import (
	"flag"
	"log/slog"
	"os"

	"room-booking/internal/handler/middleware"
	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/config"
)

func main() {
	down := flag.Int("down", 0, "roll back the given number of migrations instead of applying them")
	version := flag.Bool("version", false, "print the current schema version and exit")
	flag.Parse()

	middleware.NewLogger(config.LogConfig{Level: "info", TimeZone: "Asia/Tokyo", TimeFormat: "2006-01-02 15:04:05.000", TimeZoneOffset: 32400})

	cfg, err := config.LoadDBConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	switch {
	case *version:
		v, dirty, err := db.MigrationVersion(cfg)
		if err != nil {
			slog.Error("バージョンの取得に失敗しました", "error", err)
			os.Exit(1)
		}
		slog.Info("現在のスキーマバージョン", "version", v, "dirty", dirty)
	case *down > 0:
		if err := db.MigrateDown(cfg, *down); err != nil {
			slog.Error("マイグレーションのロールバックに失敗しました", "error", err)
			os.Exit(1)
		}
		slog.Info("マイグレーションをロールバックしました", "steps", *down)
	default:
		if err := db.Migrate(cfg); err != nil {
			slog.Error("マイグレーションに失敗しました", "error", err)
			os.Exit(1)
		}
		slog.Info("マイグレーションを適用しました")
	}
}
