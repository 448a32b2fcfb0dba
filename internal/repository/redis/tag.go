package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skinnydoo/conduit/domain"
	"github.com/skinnydoo/conduit/internal/repository/cache"
)

const (
	KeyTags = "tags:all"

	tagLogicalTTL = 30 * time.Second
)

type tagCache struct {
	client *redis.Client
}

var _ domain.TagCache = (*tagCache)(nil)

func NewTagCache(client *redis.Client) *tagCache {
	return &tagCache{
		client,
	}
}

// GetTags returns the cached tag list. A logically expired list is still
// returned, with expired=true, so callers can serve it and rebuild in
// the background.
func (c *tagCache) GetTags(ctx context.Context) ([]domain.Tag, bool, error) {
	data, err := c.client.Get(ctx, KeyTags).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, domain.ErrCacheMiss
	} else if err != nil {
		return nil, false, err
	}

	var wrapper struct {
		Data      []string  `json:"data"`
		ExpireAt  time.Time `json:"expire_at"`
		CreatedAt time.Time `json:"created_at"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, false, err
	}

	tags := make([]domain.Tag, len(wrapper.Data))
	for i := range wrapper.Data {
		tags[i] = domain.Tag(wrapper.Data[i])
	}
	expired := (&cache.DataWithLogicalExpire{ExpireAt: wrapper.ExpireAt}).IsLogicalExpired()
	return tags, expired, nil
}

func (c *tagCache) SetTags(ctx context.Context, tags []domain.Tag) error {
	raw := make([]string, len(tags))
	for i := range tags {
		raw[i] = tags[i].String()
	}

	data, err := json.Marshal(cache.NewDataWithLogicalExpire(raw, tagLogicalTTL))
	if err != nil {
		return err
	}
	// no physical TTL, staleness is handled by the logical expiry
	return c.client.Set(ctx, KeyTags, data, 0).Err()
}
