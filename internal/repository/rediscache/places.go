// Package rediscache fronts the place catalog with a read-through
// redis cache. Cache failures degrade silently to the database; the
// cache is never authoritative.
package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/repository"
)

type PlaceCache struct {
	client *redis.Client
	next   repository.PlaceRepository
	ttl    time.Duration
}

func New(client *redis.Client, next repository.PlaceRepository, ttl time.Duration) *PlaceCache {
	return &PlaceCache{
		client: client,
		next:   next,
		ttl:    ttl,
	}
}

// GetByID is not cached; single-row lookups are cheap and stale place
// detail pages are more visible than stale candidate lists.
func (c *PlaceCache) GetByID(id string) (*entity.Place, error) {
	return c.next.GetByID(id)
}

func (c *PlaceCache) FindByFilter(filter entity.PlaceFilter) ([]entity.Place, error) {
	ctx := context.Background()
	key := cacheKey(filter)

	if cached, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var places []entity.Place
		if err := json.Unmarshal(cached, &places); err == nil {
			return places, nil
		}
	}

	places, err := c.next.FindByFilter(filter)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(places); err == nil {
		c.client.Set(ctx, key, payload, c.ttl)
	}
	return places, nil
}

func cacheKey(filter entity.PlaceFilter) string {
	return fmt.Sprintf("places:%s:%s", filter.Area, filter.Category)
}
