package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/polkiloo/userhub/internal/domain/model"
)

const userKeyPrefix = "user:"

// ErrCacheMiss is returned when the requested entry is not cached.
var ErrCacheMiss = errors.New("cache miss")

// GetUser retrieves a user from cache by id.
// Returns ErrCacheMiss if not found.
func (c *Cache) GetUser(ctx context.Context, id int64) (*model.User, error) {
	result, err := c.client.HGetAll(ctx, userKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall: %w", err)
	}
	if len(result) == 0 {
		return nil, ErrCacheMiss
	}
	return decodeUser(result)
}

// SetUser stores a user for ttl.
func (c *Cache) SetUser(ctx context.Context, user *model.User, ttl time.Duration) error {
	key := userKey(user.ID)

	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, encodeUser(user))
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache user: %w", err)
	}
	return nil
}

// DeleteUser removes a cached user.
func (c *Cache) DeleteUser(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, userKey(id)).Err(); err != nil {
		return fmt.Errorf("evict user: %w", err)
	}
	return nil
}

func userKey(id int64) string {
	return userKeyPrefix + strconv.FormatInt(id, 10)
}

func encodeUser(user *model.User) map[string]any {
	return map[string]any{
		"id":    strconv.FormatInt(user.ID, 10),
		"name":  user.Name,
		"email": user.Email,
	}
}

func decodeUser(fields map[string]string) (*model.User, error) {
	id, err := strconv.ParseInt(fields["id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("decode cached user id: %w", err)
	}
	return &model.User{ID: id, Name: fields["name"], Email: fields["email"]}, nil
}
