package rdx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps the Redis client. A nil Cache is a no-op so the API keeps
// working when Redis is unreachable; the cache is best-effort only.
type Cache struct {
	Conn *redis.Client
}

// New connects to Redis. The connection is verified once; callers decide
// whether a failure is fatal.
func New(ctx context.Context, addr string) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Cache{Conn: client}, nil
}

func (c *Cache) Set(ctx context.Context, key, value string) error {
	if c == nil {
		return nil
	}
	return c.Conn.Set(ctx, key, value, 0).Err()
}

func (c *Cache) SetWithExpiry(ctx context.Context, key, value string, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	return c.Conn.Set(ctx, key, value, ttl).Err()
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	if c == nil {
		return "", redis.Nil
	}
	return c.Conn.Get(ctx, key).Result()
}

func (c *Cache) Del(ctx context.Context, keys ...string) error {
	if c == nil {
		return nil
	}
	return c.Conn.Del(ctx, keys...).Err()
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.Conn.Close()
}
