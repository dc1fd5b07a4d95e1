package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"pet-shop-api/internal/config"
	"pet-shop-api/internal/domain/catalog"
)

const keyPrefix = "petshop:product:"

type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProductCache(ctx context.Context, cfg config.RedisConfig) (*ProductCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.Addr, err)
	}

	return &ProductCache{client: client, ttl: cfg.ProductTTL}, nil
}

// Get returns nil, nil on a cache miss.
func (c *ProductCache) Get(ctx context.Context, productUUID uuid.UUID) (*catalog.Product, error) {
	data, err := c.client.Get(ctx, Key(productUUID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var product catalog.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *ProductCache) Set(ctx context.Context, product *catalog.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, Key(product.UUID), data, c.ttl).Err()
}

func (c *ProductCache) Delete(ctx context.Context, productUUID uuid.UUID) error {
	return c.client.Del(ctx, Key(productUUID)).Err()
}

func (c *ProductCache) Close() error {
	return c.client.Close()
}

func Key(productUUID uuid.UUID) string {
	return keyPrefix + productUUID.String()
}
