// Package cache provides an optional redis read-through cache for book
// lookups. Every method is a no-op when the client is nil, so the cache
// can be switched off by leaving REDIS_URL unset.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"bookshelf/internal/models"
)

type Books struct {
	client *redis.Client
	ttl    time.Duration
}

func NewBooks(client *redis.Client, ttl time.Duration) *Books {
	return &Books{client: client, ttl: ttl}
}

func bookKey(id int64) string {
	return fmt.Sprintf("book:%d", id)
}

// Get returns the cached book and whether it was present. Redis failures
// count as a miss; the database remains the source of truth.
func (c *Books) Get(ctx context.Context, id int64) (*models.Book, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, bookKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var book models.Book
	if err := json.Unmarshal(raw, &book); err != nil {
		return nil, false
	}
	return &book, true
}

func (c *Books) Set(ctx context.Context, book *models.Book) {
	if c == nil || c.client == nil || book == nil {
		return
	}
	raw, err := json.Marshal(book)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, bookKey(book.ID), raw, c.ttl).Err()
}

func (c *Books) Invalidate(ctx context.Context, id int64) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, bookKey(id)).Err()
}
