package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campusassist/campus-assist/internal/model"
)

const statsKey = "stats:chat"

// StatsCache holds the last computed chat statistics for a short time so
// dashboards polling /stats do not re-run the aggregations.
type StatsCache interface {
	Get(ctx context.Context) (*model.ChatStats, error)
	Set(ctx context.Context, stats *model.ChatStats) error
}

type statsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a new stats cache
func NewStatsCache(client *redis.Client) StatsCache {
	return &statsCache{
		client: client,
		ttl:    time.Minute,
	}
}

func (c *statsCache) Get(ctx context.Context) (*model.ChatStats, error) {
	data, err := c.client.Get(ctx, statsKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stats model.ChatStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *statsCache) Set(ctx context.Context, stats *model.ChatStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsKey, data, c.ttl).Err()
}
