package infrastructure

import (
	"context"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	listingKey = "alljobs"
	listingTTL = 3600 * time.Second
)

func NewRedisConnection() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.Fatalf("failed to connect redis: %v", err)
	}

	logrus.Info("🧠 Connected to Redis")
	return client
}

// RedisListingCache implements domain.ListingCache on a shared Redis client.
type RedisListingCache struct {
	client *redis.Client
}

func NewListingCache(client *redis.Client) *RedisListingCache {
	if client == nil {
		panic("listing cache: redis client not initialized")
	}
	return &RedisListingCache{client: client}
}

func (c *RedisListingCache) GetListing(ctx context.Context) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, listingKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (c *RedisListingCache) PutListing(ctx context.Context, payload []byte) error {
	return c.client.Set(ctx, listingKey, payload, listingTTL).Err()
}
