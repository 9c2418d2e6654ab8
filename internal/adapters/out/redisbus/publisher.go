// Package redisbus broadcasts order events on a Redis pub/sub channel so that
// other processes (a second kitchen screen, a loyalty service) can follow the
// shop without polling.
package redisbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"coffeeshop/internal/adapters/out/notifiers"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/redis/go-redis/v9"
)

// DefaultChannel is used when no channel name is configured.
const DefaultChannel = "coffee.orders"

// Client is the part of *redis.Client the publisher uses.
type Client interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// Publisher is an order subscriber that publishes notifiers.OrderEvent JSON.
type Publisher struct {
	client  Client
	channel string
	now     func() time.Time
}

// NewClient connects lazily; the first publish reveals an unreachable server.
func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

func NewPublisher(client Client, channel string) *Publisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Publisher{client: client, channel: channel, now: time.Now}
}

func (p *Publisher) Channel() string {
	return p.channel
}

func (p *Publisher) Notify(ctx context.Context, o *order.Order, event order.Event) error {
	body, err := json.Marshal(notifiers.NewOrderEvent(o, event, p.now()))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err = p.client.Publish(ctx, p.channel, body).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.channel, err)
	}
	return nil
}
