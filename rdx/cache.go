// Package rdx is an optional Redis-backed cache for vendor responses. It
// exists to absorb repeat page views without spending the OwnerRez request
// allowance; entry TTLs mirror the Cache-Control hints the handlers emit so
// the freshness contract is the same with or without the cache.
package rdx

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	conn *redis.Client
}

// Connect opens the cache from a Redis URL. An empty or invalid URL returns a
// disabled cache; a vendor proxy must keep serving when Redis is down, so
// every cache error degrades to a miss.
func Connect(redisURL string) *Cache {
	if redisURL == "" {
		return &Cache{}
	}
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Println("rdx: invalid REDIS_URL, response cache disabled:", err)
		return &Cache{}
	}
	return &Cache{conn: redis.NewClient(opt)}
}

// Disabled returns a cache where every lookup misses.
func Disabled() *Cache {
	return &Cache{}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c.conn == nil {
		return nil, false
	}
	body, err := c.conn.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("rdx: get error:", err)
		}
		return nil, false
	}
	return body, true
}

func (c *Cache) Set(ctx context.Context, key string, body []byte, ttl time.Duration) {
	if c.conn == nil {
		return
	}
	if err := c.conn.Set(ctx, key, body, ttl).Err(); err != nil {
		log.Println("rdx: set error:", err)
	}
}

// Close releases the connection; safe on a disabled cache.
func (c *Cache) Close() {
	if c.conn != nil {
		_ = c.conn.Close()
	}
}
