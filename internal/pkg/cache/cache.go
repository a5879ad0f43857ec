package cache

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Policy describes how long a cached read stays fresh and when it must be
// thrown away. Between Stale and Expire the old value is served while a
// background load refreshes it.
type Policy struct {
	Stale  time.Duration
	Expire time.Duration
}

// CacheControl renders the matching header for shared caches.
func (p Policy) CacheControl() string {
	swr := p.Expire - p.Stale
	if swr < 0 {
		swr = 0
	}
	return fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate=%d",
		int64(p.Stale/time.Second), int64(swr/time.Second))
}

type entry struct {
	value      any
	storedAt   time.Time
	policy     Policy
	tags       []string
	refreshing bool
}

// Cache is an in-process read-through cache with tag based invalidation.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]*entry
	byTag    map[string]map[string]struct{}
	versions map[string]uint64

	group singleflight.Group
	wg    sync.WaitGroup
	now   func() time.Time
	log   *zap.Logger
}

func New(log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{
		entries:  make(map[string]*entry),
		byTag:    make(map[string]map[string]struct{}),
		versions: make(map[string]uint64),
		now:      time.Now,
		log:      log,
	}
}

type loader func(ctx context.Context) (any, error)

// Fetch returns the cached value for key, loading it with load on a miss.
// Concurrent loads of the same key share one call.
func Fetch[T any](ctx context.Context, c *Cache, key string, p Policy, tags []string, load func(context.Context) (T, error)) (T, error) {
	v, err := c.fetch(ctx, key, p, tags, func(ctx context.Context) (any, error) {
		return load(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	t, _ := v.(T)
	return t, nil
}

func (c *Cache) fetch(ctx context.Context, key string, p Policy, tags []string, load loader) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		age := c.now().Sub(e.storedAt)
		switch {
		case age < e.policy.Stale:
			c.mu.Unlock()
			return e.value, nil
		case age < e.policy.Expire:
			if !e.refreshing {
				e.refreshing = true
				c.revalidate(ctx, key, p, tags, load)
			}
			c.mu.Unlock()
			return e.value, nil
		default:
			c.removeLocked(key)
		}
	}
	versions := c.snapshotLocked(tags)
	c.mu.Unlock()

	v, err, _ := c.group.Do(flightKey(key, versions), func() (any, error) {
		return c.load(ctx, key, p, tags, versions, load)
	})
	return v, err
}

// revalidate must be called with c.mu held.
func (c *Cache) revalidate(ctx context.Context, key string, p Policy, tags []string, load loader) {
	versions := c.snapshotLocked(tags)
	bg := context.WithoutCancel(ctx)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		_, err, _ := c.group.Do(flightKey(key, versions), func() (any, error) {
			return c.load(bg, key, p, tags, versions, load)
		})
		if err != nil {
			c.log.Warn("cache revalidation failed", zap.String("key", key), zap.Error(err))
			c.mu.Lock()
			if e, ok := c.entries[key]; ok {
				e.refreshing = false
			}
			c.mu.Unlock()
		}
	}()
}

func (c *Cache) load(ctx context.Context, key string, p Policy, tags []string, versions map[string]uint64, load loader) (any, error) {
	v, err := load(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for tag, ver := range versions {
		if c.versions[tag] != ver {
			// invalidated while loading; hand the value out but do not keep it
			return v, nil
		}
	}

	c.removeLocked(key)
	c.entries[key] = &entry{
		value:    v,
		storedAt: c.now(),
		policy:   p,
		tags:     append([]string(nil), tags...),
	}
	for _, tag := range tags {
		keys, ok := c.byTag[tag]
		if !ok {
			keys = make(map[string]struct{})
			c.byTag[tag] = keys
		}
		keys[key] = struct{}{}
	}
	return v, nil
}

// Invalidate drops every entry carrying any of tags. Related tags are not
// touched; callers name exactly what went stale.
func (c *Cache) Invalidate(tags ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dropped := 0
	for _, tag := range tags {
		c.versions[tag]++
		for key := range c.byTag[tag] {
			c.removeLocked(key)
			dropped++
		}
		delete(c.byTag, tag)
	}
	c.log.Debug("cache invalidated", zap.Strings("tags", tags), zap.Int("entries", dropped))
}

// Len reports the number of stored entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Wait blocks until background revalidations have finished.
func (c *Cache) Wait() {
	c.wg.Wait()
}

func (c *Cache) removeLocked(key string) {
	e, ok := c.entries[key]
	if !ok {
		return
	}
	for _, tag := range e.tags {
		if keys, ok := c.byTag[tag]; ok {
			delete(keys, key)
			if len(keys) == 0 {
				delete(c.byTag, tag)
			}
		}
	}
	delete(c.entries, key)
}

func (c *Cache) snapshotLocked(tags []string) map[string]uint64 {
	out := make(map[string]uint64, len(tags))
	for _, tag := range tags {
		out[tag] = c.versions[tag]
	}
	return out
}

// flightKey separates loads that straddle an invalidation so a caller that
// arrives after Invalidate never joins a load that started before it.
func flightKey(key string, versions map[string]uint64) string {
	if len(versions) == 0 {
		return key
	}
	parts := make([]string, 0, len(versions))
	for tag, ver := range versions {
		parts = append(parts, fmt.Sprintf("%s=%d", tag, ver))
	}
	sort.Strings(parts)
	return key + "|" + strings.Join(parts, ",")
}
