package redis

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"pet-shop-api/internal/config"
)

func TestKey(t *testing.T) {
	id := uuid.MustParse("3b241101-e2bb-4255-8caf-4136c566a962")
	assert.Equal(t, "petshop:product:3b241101-e2bb-4255-8caf-4136c566a962", Key(id))
}

func TestNewProductCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	_, err := NewProductCache(ctx, config.RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
