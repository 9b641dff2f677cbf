package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/velora/storefront/internal/core/domain"
	"github.com/velora/storefront/internal/core/service"
)

// featuredKey is the single cache key for the featured-products snapshot.
// Both the cache-aside read path and the cache-through write path go through
// this constant; it must never be spelled twice.
const featuredKey = "featured_products"

// FeaturedCache stores a JSON snapshot of all featured products under one
// fixed key with no expiry; the snapshot is stale until the next
// ToggleFeatured rewrites it.
type FeaturedCache struct {
	client *redis.Client
}

// NewFeaturedCache creates a FeaturedCache wrapping the given Redis client.
func NewFeaturedCache(client *redis.Client) *FeaturedCache {
	return &FeaturedCache{client: client}
}

func (c *FeaturedCache) Get(ctx context.Context) ([]domain.Product, error) {
	raw, err := c.client.Get(ctx, featuredKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrCacheMiss
		}
		return nil, fmt.Errorf("read featured cache: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("decode featured cache: %w", err)
	}
	return products, nil
}

func (c *FeaturedCache) Set(ctx context.Context, products []domain.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encode featured cache: %w", err)
	}
	if err := c.client.Set(ctx, featuredKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("write featured cache: %w", err)
	}
	return nil
}
