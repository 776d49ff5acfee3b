package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bencom-ar/storefront-backend/pkg/logger"
	"github.com/bencom-ar/storefront-backend/pkg/redis"
)

// SlotClient is the narrow Redis surface the adapter needs. *redis.Client
// satisfies it.
type SlotClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CartKey(token string) string
}

// RedisAdapter stores one JSON cart snapshot per visitor token under a
// namespaced key, refreshed with the configured TTL on every write.
type RedisAdapter struct {
	client SlotClient
	ttl    time.Duration
	logg   *logger.Logger
}

func NewRedisAdapter(client SlotClient, ttl time.Duration, logg *logger.Logger) *RedisAdapter {
	return &RedisAdapter{client: client, ttl: ttl, logg: logg}
}

func (a *RedisAdapter) Load(ctx context.Context, key string) Cart {
	if a.client == nil {
		return Cart{}
	}
	raw, err := a.client.Get(ctx, a.client.CartKey(key))
	if err != nil {
		if err != redis.Nil && a.logg != nil {
			a.logg.Warn(a.logg.WithField(ctx, "error", err.Error()), "cart.slot.read_failed")
		}
		return Cart{}
	}
	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		if a.logg != nil {
			a.logg.Warn(a.logg.WithField(ctx, "error", err.Error()), "cart.slot.malformed")
		}
		return Cart{}
	}
	return cart
}

func (a *RedisAdapter) Save(ctx context.Context, key string, cart Cart) {
	if a.client == nil {
		return
	}
	raw, err := json.Marshal(cart)
	if err != nil {
		if a.logg != nil {
			a.logg.Warn(a.logg.WithField(ctx, "error", err.Error()), "cart.slot.encode_failed")
		}
		return
	}
	if err := a.client.Set(ctx, a.client.CartKey(key), string(raw), a.ttl); err != nil {
		if a.logg != nil {
			a.logg.Warn(a.logg.WithField(ctx, "error", err.Error()), "cart.slot.write_failed")
		}
	}
}
