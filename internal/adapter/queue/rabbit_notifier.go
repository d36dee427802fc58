package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/UmmeHabiba1312/Kharedo-api/internal/usecase"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName = "notify.events"
	routingKey   = "notify.whatsapp"
	queueName    = "notify.whatsapp.q"
)

// RabbitNotifier publishes outbound notifications for the external
// WhatsApp gateway. Delivery itself happens downstream; a publish that
// lands on the exchange is a successful send from our side.
type RabbitNotifier struct {
	ch *amqp.Channel
}

// NewRabbitNotifier sets up the exchange, queue, and binding once at startup.
func NewRabbitNotifier(ch *amqp.Channel) (*RabbitNotifier, error) {
	if err := ch.ExchangeDeclare(
		exchangeName,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(
		q.Name,
		routingKey,
		exchangeName,
		false, // no-wait
		nil,
	); err != nil {
		return nil, fmt.Errorf("queue bind: %w", err)
	}

	if err := ch.Confirm(false); err != nil {
		return nil, fmt.Errorf("enable confirm mode: %w", err)
	}

	return &RabbitNotifier{ch: ch}, nil
}

func (p *RabbitNotifier) Send(ctx context.Context, n usecase.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // survive broker restarts
		Body:         body,
	}

	if err := p.ch.PublishWithContext(
		ctx,
		exchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		pub,
	); err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	return nil
}

var _ usecase.Notifier = (*RabbitNotifier)(nil)
