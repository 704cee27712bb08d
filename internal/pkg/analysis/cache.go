package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/ticket"
	"github.com/redis/go-redis/v9"
)

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// ResultCache stores analysis results in redis keyed by input file identity and route.
type ResultCache struct {
	redis RedisClient
}

func NewResultCache(redis RedisClient) *ResultCache {
	return &ResultCache{
		redis: redis,
	}
}

// GetCacheKey fingerprints the file (absolute path, size, modification time) together
// with every setting that changes the outcome. A rewritten file gets a new key.
func (c *ResultCache) GetCacheKey(path string, settings ticket.Settings) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat ticket file: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	fingerprint := xxhash.Sum64String(fmt.Sprintf("%s|%d|%d|%s|%s|%s",
		abs, info.Size(), info.ModTime().UnixNano(),
		settings.StartField, settings.DateLayout, settings.TimeLayout))

	return fmt.Sprintf("ticket:analysis:cache:%s:%s:%016x",
		settings.Origin, settings.Destination, fingerprint), nil
}

func (c *ResultCache) GetLockKey(cacheKey string) string {
	return strings.Replace(cacheKey, ":cache:", ":lock:", 1)
}

func (c *ResultCache) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	return c.redis.SetNX(ctx, key, "1", timeout).Result()
}

func (c *ResultCache) ReleaseLock(ctx context.Context, key string) error {
	return c.redis.Del(ctx, key).Err()
}

func (c *ResultCache) SetResult(ctx context.Context, key string, result Result, expiration time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := c.redis.Set(ctx, key, data, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set result: %w", err)
	}

	return nil
}

func (c *ResultCache) GetResult(ctx context.Context, key string) (Result, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return Result{}, err
	}

	return DecodeResult(data)
}
