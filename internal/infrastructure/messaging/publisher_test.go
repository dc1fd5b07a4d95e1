package messaging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-shop-api/internal/config"
	"pet-shop-api/internal/domain/order"
	"pet-shop-api/internal/infrastructure/messaging/mqtt"
	"pet-shop-api/internal/infrastructure/messaging/nats"
)

func TestNewPublisherNone(t *testing.T) {
	pub, err := NewPublisher(config.EventsConfig{Driver: "none"})
	require.NoError(t, err)

	assert.IsType(t, NoopPublisher{}, pub)
	assert.NoError(t, pub.Publish(context.Background(), order.Event{Name: order.EventCreated}))
	assert.NoError(t, pub.Close())
}

func TestNewPublisherUnknownDriver(t *testing.T) {
	_, err := NewPublisher(config.EventsConfig{Driver: "carrier-pigeon"})
	assert.Error(t, err)
}

func TestSubjectsAndTopics(t *testing.T) {
	assert.Equal(t, "petshop.orders.order.created", nats.Subject("petshop.orders", order.EventCreated))
	assert.Equal(t, "petshop/orders/order/deleted", mqtt.Topic("petshop.orders", order.EventDeleted))
}
