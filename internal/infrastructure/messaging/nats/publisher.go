package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"pet-shop-api/internal/config"
	"pet-shop-api/internal/domain/order"
	"pet-shop-api/internal/logger"
)

// Publisher sends order events to <topic>.<event name>.
type Publisher struct {
	conn  *nats.Conn
	topic string
}

func NewPublisher(cfg config.EventsConfig) (*Publisher, error) {
	opts := []nats.Option{
		nats.Name("pet-shop-api order events"),
		nats.Timeout(10 * time.Second),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
	}

	conn, err := nats.Connect(cfg.NATSURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", cfg.NATSURL, err)
	}
	logger.Info("NATS publisher connected", zap.String("url", conn.ConnectedUrl()))

	return &Publisher{conn: conn, topic: cfg.Topic}, nil
}

func (p *Publisher) Publish(ctx context.Context, event order.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := nats.NewMsg(Subject(p.topic, event.Name))
	msg.Data = data
	msg.Header = make(nats.Header)
	msg.Header.Set("Content-Type", "application/json")
	msg.Header.Set("Nats-Msg-Id", event.OrderUUID.String()+":"+event.Name+":"+event.OccurredAt.Format(time.RFC3339Nano))

	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", msg.Subject, err)
	}

	logger.Debug("Order event published",
		zap.String("broker", "nats"),
		zap.String("subject", msg.Subject),
		zap.String("order_uuid", event.OrderUUID.String()),
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.conn.Drain()
}

func Subject(base, event string) string {
	return base + "." + event
}
