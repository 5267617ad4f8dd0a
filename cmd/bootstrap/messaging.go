package bootstrap

import (
	"context"
	"log/slog"

	"room-booking/internal/infra/messaging"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.AMQPConfig) commands.EventPublisher {
	if cfg.URL == "" {
		slog.Info("AMQP_URLが未設定のため予約イベントの送信を無効化します")
		return messaging.Noop{}
	}

	publisher := messaging.NewPublisher(cfg)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return publisher.Close(ctx)
		},
	})
	return publisher
}
