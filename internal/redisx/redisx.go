package redisx

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type Client struct{ R *redis.Client }

func NewClient(addr string) *Client {
	return &Client{R: redis.NewClient(&redis.Options{Addr: addr, DB: 0})}
}

// Get/Set/Delete satisfy cache.Cache for reference data.

func (c *Client) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := c.R.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (c *Client) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.R.Set(ctx, key, value, ttl).Err()
}

func (c *Client) Delete(ctx context.Context, key string) error {
	return c.R.Del(ctx, key).Err()
}
