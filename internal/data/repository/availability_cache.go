package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const availabilityTTL = 5 * time.Minute

// AvailabilityCache keeps a short-lived remaining-capacity figure per
// retreat and window. It is strictly an optimization: every failure path
// degrades to a recompute, and admission never reads from it.
type AvailabilityCache struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewAvailabilityCache(rdb *redis.Client, log *zap.Logger) *AvailabilityCache {
	return &AvailabilityCache{
		rdb: rdb,
		log: log.With(zap.String("cache", "availability")),
	}
}

func availabilityKey(retreatID uuid.UUID, checkIn, checkOut time.Time) string {
	return fmt.Sprintf("availability:%s:%s:%s", retreatID.String(), checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"))
}

// Get returns (remaining, true) on a hit, (0, false) on a miss or when the
// cache is disabled.
func (c *AvailabilityCache) Get(ctx context.Context, retreatID uuid.UUID, checkIn, checkOut time.Time) (int, bool) {
	if c.rdb == nil {
		return 0, false
	}

	val, err := c.rdb.Get(ctx, availabilityKey(retreatID, checkIn, checkOut)).Result()
	if err == redis.Nil {
		return 0, false
	}
	if err != nil {
		c.log.Warn("Availability cache read failed", zap.Error(err))
		return 0, false
	}

	remaining, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}

	return remaining, true
}

func (c *AvailabilityCache) Set(ctx context.Context, retreatID uuid.UUID, checkIn, checkOut time.Time, remaining int) {
	if c.rdb == nil {
		return
	}

	if err := c.rdb.Set(ctx, availabilityKey(retreatID, checkIn, checkOut), strconv.Itoa(remaining), availabilityTTL).Err(); err != nil {
		c.log.Warn("Availability cache write failed", zap.Error(err))
	}
}

// Invalidate drops every cached window of a retreat. Called after any
// reservation write that can change committed capacity.
func (c *AvailabilityCache) Invalidate(ctx context.Context, retreatID uuid.UUID) {
	if c.rdb == nil {
		return
	}

	pattern := fmt.Sprintf("availability:%s:*", retreatID.String())
	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Warn("Availability cache invalidation failed",
				zap.Error(err),
				zap.String("key", iter.Val()),
			)
		}
	}
	if err := iter.Err(); err != nil {
		c.log.Warn("Availability cache scan failed",
			zap.Error(err),
			zap.String("retreat_id", retreatID.String()),
		)
	}
}
