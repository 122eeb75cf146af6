package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campusassist/campus-assist/internal/model"
)

// ContextCache stores per-conversation context with a sliding expiration.
type ContextCache interface {
	Get(ctx context.Context, conversationID string) (*model.ConversationContext, error)
	Set(ctx context.Context, c *model.ConversationContext, ttl time.Duration) error
	Delete(ctx context.Context, conversationID string) error
}

type contextCache struct {
	client *redis.Client
}

func NewContextCache(client *redis.Client) ContextCache {
	return &contextCache{
		client: client,
	}
}

func contextKey(conversationID string) string {
	return "context:" + conversationID
}

func (c *contextCache) Get(ctx context.Context, conversationID string) (*model.ConversationContext, error) {
	data, err := c.client.Get(ctx, contextKey(conversationID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cc model.ConversationContext
	if err := json.Unmarshal(data, &cc); err != nil {
		return nil, err
	}
	return &cc, nil
}

func (c *contextCache) Set(ctx context.Context, cc *model.ConversationContext, ttl time.Duration) error {
	data, err := json.Marshal(cc)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, contextKey(cc.ConversationID), data, ttl).Err()
}

func (c *contextCache) Delete(ctx context.Context, conversationID string) error {
	return c.client.Del(ctx, contextKey(conversationID)).Err()
}
