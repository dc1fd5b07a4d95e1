package messaging

import (
	"context"
	"fmt"

	"pet-shop-api/internal/config"
	"pet-shop-api/internal/domain/order"
	"pet-shop-api/internal/infrastructure/messaging/mqtt"
	"pet-shop-api/internal/infrastructure/messaging/nats"
)

// NewPublisher picks the broker named by cfg.Driver.
func NewPublisher(cfg config.EventsConfig) (order.EventPublisher, error) {
	switch cfg.Driver {
	case "nats":
		return nats.NewPublisher(cfg)
	case "mqtt":
		return mqtt.NewPublisher(cfg)
	case "", "none":
		return NoopPublisher{}, nil
	default:
		return nil, fmt.Errorf("unknown events driver %q", cfg.Driver)
	}
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, order.Event) error { return nil }

func (NoopPublisher) Close() error { return nil }
