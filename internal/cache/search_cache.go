package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campusassist/campus-assist/internal/model"
)

// SearchCache memoizes retrieval tier results in Redis.
type SearchCache interface {
	Get(ctx context.Context, key string) (*model.SearchResult, error)
	Set(ctx context.Context, key string, result *model.SearchResult, ttl time.Duration) error
}

type searchCache struct {
	client *redis.Client
}

// NewSearchCache creates a new search cache
func NewSearchCache(client *redis.Client) SearchCache {
	return &searchCache{
		client: client,
	}
}

// SearchKey derives the cache key of a tier lookup for query in lang.
func SearchKey(tier, query, lang string) string {
	sum := md5.Sum([]byte(tier + ":" + query + ":" + lang))
	return "query:" + hex.EncodeToString(sum[:])
}

func (c *searchCache) Get(ctx context.Context, key string) (*model.SearchResult, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var result model.SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *searchCache) Set(ctx context.Context, key string, result *model.SearchResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}
