package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/cafelumiere/cafe-api/cmd/config"
	"github.com/redis/go-redis/v9"
)

const defaultPingTimeout = 5 * time.Second

var client *redis.Client

// New connects to the Redis instance named in cfg and verifies it answers a
// ping within cfg.Redis.PingTimeout before handing the client out.
func New(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config provided")
	}

	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	timeout := cfg.Redis.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("unable to ping redis at %s: %w", addr, err)
	}

	client = c
	return nil
}

func Get() *redis.Client {
	return client
}

func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}
