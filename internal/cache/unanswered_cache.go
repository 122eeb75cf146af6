package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/campusassist/campus-assist/internal/model"
)

// UnansweredCache ranks queries that ended in the fallback tier so the
// knowledge base can be extended where it is missing answers.
type UnansweredCache interface {
	Increment(ctx context.Context, language, query string) error
	Top(ctx context.Context, language string, limit int) ([]model.UnansweredQuery, error)
}

type unansweredCache struct {
	client *redis.Client
}

// NewUnansweredCache creates a new unanswered-query ranking
func NewUnansweredCache(client *redis.Client) UnansweredCache {
	return &unansweredCache{
		client: client,
	}
}

func (c *unansweredCache) key(language string) string {
	return fmt.Sprintf("unanswered:%s", language)
}

func (c *unansweredCache) Increment(ctx context.Context, language, query string) error {
	return c.client.ZIncrBy(ctx, c.key(language), 1, query).Err()
}

func (c *unansweredCache) Top(ctx context.Context, language string, limit int) ([]model.UnansweredQuery, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, c.key(language), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]model.UnansweredQuery, len(results))
	for i, z := range results {
		entries[i] = model.UnansweredQuery{
			Query: z.Member.(string),
			Count: int(z.Score),
			Rank:  i + 1,
		}
	}
	return entries, nil
}
