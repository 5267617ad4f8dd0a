package bootstrap

import (
	"log/slog"

	"room-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

// LoggerModule also makes the request logger the slog default.
var LoggerModule = fx.Module("logger",
	fx.Provide(
		middleware.NewLogger,
		func(l *middleware.Logger) *slog.Logger { return l.GetSlogLogger() },
	),
)
