package redis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// CodeCache is a TTL cache for active bio verification markers. The
// database row stays the record of truth; the cache only saves a round
// trip on the hot re-check path, so misses and faults are not errors.
type CodeCache struct{}

var (
	setCacheValue = Set
	getCacheValue = Get
	delCacheValue = Del
)

// NewCodeCache creates a bio code cache over the shared client
func NewCodeCache() *CodeCache {
	return &CodeCache{}
}

func codeKey(userID uuid.UUID, platform string) string {
	return "biocode:" + userID.String() + ":" + platform
}

// Get returns the cached marker, or "" on a miss
func (c *CodeCache) Get(ctx context.Context, userID uuid.UUID, platform string) (string, error) {
	val, err := getCacheValue(ctx, codeKey(userID, platform))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

// Set stores the marker under the code's TTL
func (c *CodeCache) Set(ctx context.Context, userID uuid.UUID, platform, code string, ttl time.Duration) error {
	return setCacheValue(ctx, codeKey(userID, platform), code, ttl)
}

// Del drops the cached marker, typically after the code is consumed
func (c *CodeCache) Del(ctx context.Context, userID uuid.UUID, platform string) error {
	return delCacheValue(ctx, codeKey(userID, platform))
}
