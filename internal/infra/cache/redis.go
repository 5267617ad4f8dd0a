package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"room-booking/internal/domain/availability"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const scanBatch = 100

// NewRedisClient returns nil when REDIS_ADDR is unset or the server does not answer,
// in which case callers fall back to Noop.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redisに接続できないためキャッシュを無効化します", "addr", cfg.Addr, "error", err.Error())
		_ = client.Close()
		return nil
	}
	return client
}

// AvailabilityCache stores computed availability per room. Failures are logged and treated as misses.
type AvailabilityCache struct {
	rdb    redis.UniversalClient
	ttl    time.Duration
	prefix string
}

func NewAvailabilityCache(rdb redis.UniversalClient, cfg config.RedisConfig) *AvailabilityCache {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &AvailabilityCache{rdb: rdb, ttl: ttl, prefix: cfg.Prefix}
}

func (c *AvailabilityCache) Dates(ctx context.Context, roomID int64, w availability.Window) ([]string, bool) {
	var dates []string
	return dates, c.get(ctx, c.datesKey(roomID, w), &dates)
}

func (c *AvailabilityCache) StoreDates(ctx context.Context, roomID int64, w availability.Window, dates []string) {
	c.set(ctx, c.datesKey(roomID, w), dates)
}

func (c *AvailabilityCache) Timeslots(ctx context.Context, roomID int64, date time.Time) ([]queries.TimeslotView, bool) {
	var slots []queries.TimeslotView
	return slots, c.get(ctx, c.timeslotsKey(roomID, date), &slots)
}

func (c *AvailabilityCache) StoreTimeslots(ctx context.Context, roomID int64, date time.Time, slots []queries.TimeslotView) {
	c.set(ctx, c.timeslotsKey(roomID, date), slots)
}

// InvalidateRoom drops every cached entry of the room.
func (c *AvailabilityCache) InvalidateRoom(ctx context.Context, roomID int64) {
	pattern := c.roomPrefix(roomID) + "*"
	iter := c.rdb.Scan(ctx, 0, pattern, scanBatch).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		slog.Warn("availability cache scan failed", "room_id", roomID, "error", err.Error())
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("availability cache invalidation failed", "room_id", roomID, "error", err.Error())
	}
}

func (c *AvailabilityCache) get(ctx context.Context, key string, dest any) bool {
	bs, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("availability cache read failed", "key", key, "error", err.Error())
		}
		return false
	}
	if err := json.Unmarshal(bs, dest); err != nil {
		slog.Warn("availability cache entry is corrupt", "key", key, "error", err.Error())
		return false
	}
	return true
}

func (c *AvailabilityCache) set(ctx context.Context, key string, value any) {
	bs, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.rdb.SetEx(ctx, key, bs, c.ttl).Err(); err != nil {
		slog.Warn("availability cache write failed", "key", key, "error", err.Error())
	}
}

func (c *AvailabilityCache) roomPrefix(roomID int64) string {
	return fmt.Sprintf("%s:availability:%d:", c.prefix, roomID)
}

func (c *AvailabilityCache) datesKey(roomID int64, w availability.Window) string {
	return c.roomPrefix(roomID) + "dates:" + w.From.Format(availability.DateLayout) + ":" + w.To.Format(availability.DateLayout)
}

func (c *AvailabilityCache) timeslotsKey(roomID int64, date time.Time) string {
	return c.roomPrefix(roomID) + "slots:" + date.Format(availability.DateLayout)
}
