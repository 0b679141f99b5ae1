// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"taskmaster/internal/feature/tasks/domain/entity"
	"taskmaster/internal/feature/tasks/usecase"
)

// CachingTaskRepository decorates a TaskRepository with Redis caching of
// owner-scoped listings. Reads check the cache first; every mutation
// invalidates the owner's cached listings so the next read is fresh.
type CachingTaskRepository struct {
	inner     usecase.TaskRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingTaskRepository decorates a TaskRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses
// "tasks". A nil client disables caching and every call passes through.
func NewCachingTaskRepository(rdb *redis.Client, ttl time.Duration, inner usecase.TaskRepository, namespace string) *CachingTaskRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "tasks"
	}
	return &CachingTaskRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

var _ usecase.TaskRepository = (*CachingTaskRepository)(nil)

// Create inserts the task and invalidates the owner's cached listings.
func (c *CachingTaskRepository) Create(ctx context.Context, t *entity.Task) error {
	if err := c.inner.Create(ctx, t); err != nil {
		return err
	}
	c.invalidateOwner(ctx, t.OwnerID)
	return nil
}

// FindByID always hits the underlying repository. Single-row lookups feed
// ownership checks, so they must never see a stale row.
func (c *CachingTaskRepository) FindByID(ctx context.Context, id uint) (*entity.Task, error) {
	return c.inner.FindByID(ctx, id)
}

// FindByOwner retrieves the owner's tasks, checking cache first then falling
// back to the database.
func (c *CachingTaskRepository) FindByOwner(ctx context.Context, ownerID uint, filter usecase.Filter) ([]entity.Task, error) {
	if c.rdb == nil {
		return c.inner.FindByOwner(ctx, ownerID, filter)
	}

	key := c.listKey(ownerID, filter)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Task
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	// Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindOverdueByOwner always hits the underlying repository. Overdue-ness
// depends on the clock, so a cached answer goes stale on its own.
func (c *CachingTaskRepository) FindOverdueByOwner(ctx context.Context, ownerID uint, now time.Time) ([]entity.Task, error) {
	return c.inner.FindOverdueByOwner(ctx, ownerID, now)
}

// Update saves the task and invalidates the owner's cached listings.
func (c *CachingTaskRepository) Update(ctx context.Context, t *entity.Task) error {
	if err := c.inner.Update(ctx, t); err != nil {
		return err
	}
	c.invalidateOwner(ctx, t.OwnerID)
	return nil
}

// Delete removes the task and invalidates the owner's cached listings. The
// owner is looked up first because the id alone does not name a cache key.
func (c *CachingTaskRepository) Delete(ctx context.Context, id uint) error {
	var ownerID uint
	if c.rdb != nil {
		if t, err := c.inner.FindByID(ctx, id); err == nil {
			ownerID = t.OwnerID
		}
	}
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	if ownerID != 0 {
		c.invalidateOwner(ctx, ownerID)
	}
	return nil
}

// listKey generates a cache key for a specific owner-scoped listing.
func (c *CachingTaskRepository) listKey(ownerID uint, filter usecase.Filter) string {
	status := "any"
	if filter.Status != nil {
		status = string(*filter.Status)
	}
	priority := "any"
	if filter.Priority != nil {
		priority = string(*filter.Priority)
	}
	return fmt.Sprintf("%s:%d:%s:%s", c.namespace, ownerID, status, priority)
}

// ownerKeyPrefix generates a prefix covering all of the owner's listings.
func (c *CachingTaskRepository) ownerKeyPrefix(ownerID uint) string {
	return fmt.Sprintf("%s:%d:", c.namespace, ownerID)
}

// invalidateOwner drops every cached listing for the owner. Best effort:
// a failed invalidation only means one TTL's worth of staleness.
func (c *CachingTaskRepository) invalidateOwner(ctx context.Context, ownerID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.ownerKeyPrefix(ownerID)+"*")
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingTaskRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
