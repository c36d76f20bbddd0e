package events

import (
	"context"
	"encoding/json"

	"tablestay/internal/pkg/errs"
	"tablestay/internal/usecase/commands"

	"github.com/streadway/amqp"
)

// AMQPPublisher fans booking lifecycle events out on a topic exchange with
// the event type as routing key. Callers treat publish failures as
// best-effort; downstream consumers (notifications, analytics) reconcile from
// the database if they miss a message.
type AMQPPublisher struct {
	channel  *amqp.Channel
	exchange string
}

func NewAMQPPublisher(conn *amqp.Connection, exchange string) (*AMQPPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, errs.Wrap(err, "failed to open AMQP channel")
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, errs.Wrap(err, "failed to declare exchange")
	}
	return &AMQPPublisher{channel: ch, exchange: exchange}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event commands.BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode booking event")
	}

	if err := p.channel.Publish(p.exchange, event.Type, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
		Timestamp:   event.OccurredAt,
	}); err != nil {
		return errs.Wrap(err, "failed to publish booking event")
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	return p.channel.Close()
}

// NoopPublisher is wired when no broker URL is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event commands.BookingEvent) error {
	return nil
}
