package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avoronova/balance-ledger/internal/domain/entity"
	coreport "github.com/avoronova/balance-ledger/internal/domain/port/core"
	"github.com/redis/go-redis/v9"
)

// userSnapshot is the JSON shape stored in Redis for a cached user
type userSnapshot struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCache is a read-through cache for user lookups. All cache failures are
// treated as misses so a Redis outage never blocks a request.
type UserCache struct {
	client *redis.Client
	ttl    time.Duration
	logger coreport.Logger
}

// NewUserCache creates a UserCache backed by the provided Redis client.
// A zero TTL stores keys without expiry.
func NewUserCache(client *redis.Client, ttl time.Duration, logger coreport.Logger) *UserCache {
	return &UserCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func userKey(id uint64) string {
	return fmt.Sprintf("user:%d", id)
}

// Get retrieves a cached user. Returns (nil, false) on any miss or
// deserialisation error.
func (c *UserCache) Get(ctx context.Context, id uint64) (*entity.User, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, userKey(id)).Result()
	if err != nil {
		return nil, false
	}

	var snap userSnapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		c.logger.Warn("Discarding malformed cache entry", map[string]any{
			"key":   userKey(id),
			"error": err.Error(),
		})
		return nil, false
	}

	user := &entity.User{
		ID:        snap.ID,
		Name:      snap.Name,
		CreatedAt: snap.CreatedAt,
	}
	user.SetBalance(snap.Balance)
	return user, true
}

// Set stores a user snapshot. Write errors are logged rather than returned.
func (c *UserCache) Set(ctx context.Context, user *entity.User) {
	if c == nil || c.client == nil || user == nil {
		return
	}

	snap := userSnapshot{
		ID:        user.ID,
		Name:      user.Name,
		Balance:   user.Balance(),
		CreatedAt: user.CreatedAt,
	}

	data, err := json.Marshal(snap)
	if err != nil {
		c.logger.Warn("Failed to marshal cache entry", map[string]any{
			"key":   userKey(user.ID),
			"error": err.Error(),
		})
		return
	}

	if err := c.client.Set(ctx, userKey(user.ID), data, c.ttl).Err(); err != nil {
		c.logger.Warn("Failed to write cache entry", map[string]any{
			"key":   userKey(user.ID),
			"error": err.Error(),
		})
	}
}

// Invalidate removes a cached user after a balance mutation
func (c *UserCache) Invalidate(ctx context.Context, id uint64) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Del(ctx, userKey(id)).Err(); err != nil {
		c.logger.Warn("Failed to invalidate cache entry", map[string]any{
			"key":   userKey(id),
			"error": err.Error(),
		})
	}
}
