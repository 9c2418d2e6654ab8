package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"coffeeshop/internal/adapters/out/notifiers"
	"coffeeshop/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultExchange is used when no exchange name is configured.
const DefaultExchange = "coffee_orders_fanout"

// ErrConnectionClosed is returned by Notify once the broker connection is gone.
var ErrConnectionClosed = errors.New("rabbitmq connection is closed")

// Publisher is an order subscriber that sends notifiers.OrderEvent JSON to a
// durable fanout exchange. A channel is opened per event and closed after it.
// Events published after the connection dropped fail without touching the broker.
type Publisher struct {
	conn     Connection
	exchange string
	now      func() time.Time
}

func NewPublisher(conn Connection, exchange string) *Publisher {
	if exchange == "" {
		exchange = DefaultExchange
	}
	return &Publisher{conn: conn, exchange: exchange, now: time.Now}
}

func (p *Publisher) Exchange() string {
	return p.exchange
}

func (p *Publisher) Notify(ctx context.Context, o *order.Order, event order.Event) error {
	if p.conn.IsClosed() {
		return ErrConnectionClosed
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err = ch.ExchangeDeclare(p.exchange, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(notifiers.NewOrderEvent(o, event, p.now()))
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = ch.PublishWithContext(ctx, p.exchange, "", false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Type:         event.String(),
		Timestamp:    p.now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}
