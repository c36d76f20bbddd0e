package bootstrap

import (
	"context"
	"log/slog"

	"tablestay/internal/infra/events"
	"tablestay/internal/pkg/config"
	"tablestay/internal/usecase/commands"

	"github.com/streadway/amqp"
	"go.uber.org/fx"
)

var AMQPModule = fx.Module("amqp",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher connects to the broker when AMQP_URL is set; without it
// events are dropped, which is fine for local development and tests.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (commands.EventPublisher, error) {
	if cfg.AMQP.URL == "" {
		slog.Info("AMQP URL not configured, booking events disabled")
		return events.NoopPublisher{}, nil
	}

	conn, err := amqp.Dial(cfg.AMQP.URL)
	if err != nil {
		return nil, err
	}

	publisher, err := events.NewAMQPPublisher(conn, cfg.AMQP.Exchange)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			_ = publisher.Close()
			return conn.Close()
		},
	})

	return publisher, nil
}
