package availability

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrFailedToParseRedisURL = errors.New("failed to parse redis connection string")
	ErrRedisNotReady         = errors.New("redis did not answer ping")
)

const redisKeyPrefix = "holidaze:booked:"

// RedisCache stores booked sets in Redis as JSON arrays of YYYY-MM-DD strings.
// Entries expire after ttl; a zero ttl keeps them until evicted by Redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache wraps an existing client.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// ConnectRedis parses connURL, builds a client and pings it within timeout.
func ConnectRedis(ctx context.Context, connURL string, timeout time.Duration) (*redis.Client, error) {
	opts, err := redis.ParseURL(connURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisURL, err)
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Join(ErrRedisNotReady, err)
	}
	return client, nil
}

// Get loads the set stored under key. A missing key is not an error.
func (c *RedisCache) Get(ctx context.Context, key string) (DaySet, bool, error) {
	raw, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var days []Day
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, false, err
	}
	return NewDaySet(days...), true, nil
}

// Put stores set under key.
func (c *RedisCache) Put(ctx context.Context, key string, set DaySet) error {
	raw, err := json.Marshal(set.Sorted())
	if err != nil {
		return err
	}
	return c.client.Set(ctx, redisKeyPrefix+key, raw, c.ttl).Err()
}

var _ Cache = (*RedisCache)(nil)
