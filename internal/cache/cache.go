package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/lanavaja/barber-platform/internal/config"
	domain "github.com/lanavaja/barber-platform/internal/domain/appointment"
)

const slotTTL = 60 * time.Second

func NewClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// SlotCache keeps computed availability slot lists in redis for a short
// TTL. Misses and redis failures both fall through to the calculator.
type SlotCache struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewSlotCache(rdb *redis.Client, log *zap.Logger) *SlotCache {
	return &SlotCache{rdb: rdb, log: log}
}

func slotKey(barberID uint, date string) string {
	return fmt.Sprintf("slots:%d:%s", barberID, date)
}

func (c *SlotCache) Get(ctx context.Context, barberID uint, date string) ([]string, bool) {
	raw, err := c.rdb.Get(ctx, slotKey(barberID, date)).Result()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *SlotCache) Set(ctx context.Context, barberID uint, date string, slots []string) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, slotKey(barberID, date), raw, slotTTL).Err(); err != nil {
		c.log.Warn("slot cache set failed", zap.Error(err))
	}
}

func (c *SlotCache) Invalidate(ctx context.Context, barberID uint, date string) {
	if err := c.rdb.Del(ctx, slotKey(barberID, date)).Err(); err != nil {
		c.log.Warn("slot cache invalidate failed", zap.Error(err))
	}
}

var _ domain.SlotCache = (*SlotCache)(nil)
