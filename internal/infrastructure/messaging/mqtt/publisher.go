package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"pet-shop-api/internal/config"
	"pet-shop-api/internal/domain/order"
	"pet-shop-api/internal/logger"
	mqttclient "pet-shop-api/pkg/mqtt"
)

const (
	qosAtLeastOnce = 1
	publishTimeout = 5 * time.Second
)

// Publisher sends order events to <topic>/<event name>.
type Publisher struct {
	client *mqttclient.Client
	topic  string
}

func NewPublisher(cfg config.EventsConfig) (*Publisher, error) {
	clientCfg := mqttclient.DefaultConfig(cfg.MQTTBroker, cfg.MQTTClientID)
	clientCfg.Username = cfg.MQTTUsername
	clientCfg.Password = cfg.MQTTPassword

	client := mqttclient.NewClient(clientCfg)
	if err := client.Connect(); err != nil {
		return nil, err
	}

	return &Publisher{client: client, topic: cfg.Topic}, nil
}

func (p *Publisher) Publish(ctx context.Context, event order.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	timeout := publishTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}

	topic := Topic(p.topic, event.Name)
	if err := p.client.Publish(topic, qosAtLeastOnce, false, payload, timeout); err != nil {
		return err
	}

	logger.Debug("Order event published",
		zap.String("broker", "mqtt"),
		zap.String("topic", topic),
		zap.String("order_uuid", event.OrderUUID.String()),
	)
	return nil
}

// Connected reports whether the client currently holds a broker session.
func (p *Publisher) Connected() bool {
	return p.client.IsConnected()
}

func (p *Publisher) Close() error {
	p.client.Disconnect()
	return nil
}

// Topic maps "petshop.orders" and "order.created" to "petshop/orders/order/created".
func Topic(base, event string) string {
	return strings.ReplaceAll(base, ".", "/") + "/" + strings.ReplaceAll(event, ".", "/")
}
