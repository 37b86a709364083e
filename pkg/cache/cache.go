// Package cache holds the Redis connection used by infrastructure
// concerns (currently the rate limiter).
//
// Domain reads are deliberately not cached: the catalog is fetched
// fresh on every listing and the sales aggregator rebuilds its product
// lookup per call, trading performance for freshness.
package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/moyashi0060/kittchen-POS-app/config"
)

var rdb *redis.Client

// Connect initialises the Redis client and verifies it with a ping.
// A failed connection is not fatal; consumers fall back to in-process
// behaviour when Client returns nil.
func Connect(ctx context.Context) error {
	c := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	if err := c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache: redis ping: %w", err)
	}

	rdb = c
	return nil
}

// Client returns the connected Redis client, or nil when Redis is
// unavailable.
func Client() *redis.Client { return rdb }
