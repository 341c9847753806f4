package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitstats/internal/telemetry/metrics"
	"github.com/2beens/fitstats/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	megabyte = 1024 * 1024

	DefaultCacheSize = 32 * megabyte
	DefaultCacheTTL  = 10 * time.Minute

	versionKeyPrefix = "fitstats::dashboard-version::"
)

const (
	cacheHit      = "hit"
	cacheMiss     = "miss"
	cacheBypassed = "bypassed"
)

// noVersion marks a lookup whose user version could not be read; nothing is
// cached under it.
const noVersion int64 = -1

// Cache keeps marshalled dashboard views in process memory. Every key embeds
// a per-user version counter kept in redis, and every write bumps that
// counter, so a view is never served once a newer write exists, on any
// instance sharing the redis.
type Cache struct {
	local   *freecache.Cache
	redis   *redis.Client
	ttl     time.Duration
	metrics *metrics.Manager
}

func NewCache(redisClient *redis.Client, sizeBytes int, ttl time.Duration, metricsManager *metrics.Manager) *Cache {
	if sizeBytes <= 0 {
		sizeBytes = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		local:   freecache.NewCache(sizeBytes),
		redis:   redisClient,
		ttl:     ttl,
		metrics: metricsManager,
	}
}

func versionKey(userID int) string {
	return fmt.Sprintf("%s%d", versionKeyPrefix, userID)
}

func viewKey(userID int, version int64, view string) []byte {
	return []byte(fmt.Sprintf("%d::%d::%s", userID, version, view))
}

func (c *Cache) version(ctx context.Context, userID int) (int64, error) {
	v, err := c.redis.Get(ctx, versionKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return noVersion, err
	}
	return v, nil
}

// Lookup returns the cached view and the version it must be stored under
// after a miss.
func (c *Cache) Lookup(ctx context.Context, userID int, view string) ([]byte, int64, bool) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.cache.lookup")
	defer span.End()
	span.SetAttributes(attribute.String("view", view))

	version, err := c.version(ctx, userID)
	if err != nil {
		log.Errorf("dashboard cache, get version [%d]: %s", userID, err)
		c.metrics.CounterDashboardCache.WithLabelValues(cacheBypassed).Inc()
		return nil, noVersion, false
	}

	payload, err := c.local.Get(viewKey(userID, version, view))
	if err != nil {
		c.metrics.CounterDashboardCache.WithLabelValues(cacheMiss).Inc()
		span.SetAttributes(attribute.Bool("cache.hit", false))
		return nil, version, false
	}

	c.metrics.CounterDashboardCache.WithLabelValues(cacheHit).Inc()
	span.SetAttributes(attribute.Bool("cache.hit", true))
	return payload, version, true
}

// Store saves a computed view under the version returned by Lookup.
func (c *Cache) Store(userID int, version int64, view string, payload []byte) {
	if version == noVersion {
		return
	}
	if err := c.local.Set(viewKey(userID, version, view), payload, int(c.ttl.Seconds())); err != nil {
		log.Errorf("dashboard cache, store [%d] [%s]: %s", userID, view, err)
	}
}

// Invalidate bumps the user's version. When redis cannot be reached the local
// cache is dropped entirely.
func (c *Cache) Invalidate(ctx context.Context, userID int) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.cache.invalidate")
	defer span.End()
	span.SetAttributes(attribute.Int("user.id", userID))

	if err := c.redis.Incr(ctx, versionKey(userID)).Err(); err != nil {
		log.Errorf("dashboard cache, bump version [%d]: %s", userID, err)
		c.local.Clear()
	}
}
