package cart

import (
	"context"
	"encoding/json"
	"sync"
)

// Adapter reads and writes serialized cart snapshots in a durable slot.
//
// Load always yields a usable cart: a missing slot, an unreachable backend,
// or a malformed payload all come back as an empty cart. Save is best-effort;
// implementations swallow write failures so a mutation is never blocked by
// persistence.
type Adapter interface {
	Load(ctx context.Context, key string) Cart
	Save(ctx context.Context, key string, cart Cart)
}

// MemoryAdapter keeps snapshots in process memory. It round-trips through
// JSON so tests exercise the same serialization path as the Redis slot.
type MemoryAdapter struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{slots: map[string][]byte{}}
}

func (a *MemoryAdapter) Load(_ context.Context, key string) Cart {
	a.mu.Lock()
	raw, ok := a.slots[key]
	a.mu.Unlock()
	if !ok {
		return Cart{}
	}
	var cart Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return Cart{}
	}
	return cart
}

func (a *MemoryAdapter) Save(_ context.Context, key string, cart Cart) {
	raw, err := json.Marshal(cart)
	if err != nil {
		return
	}
	a.mu.Lock()
	a.slots[key] = raw
	a.mu.Unlock()
}
