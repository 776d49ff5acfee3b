package cart

import (
	"context"

	"github.com/shopspring/decimal"
)

// Store owns the in-memory cart state for one visitor and mirrors every
// mutation into its adapter. All mutations funnel through these operations;
// no caller touches the item collection directly.
type Store struct {
	key     string
	adapter Adapter
	cart    Cart
}

// NewStore hydrates a store from the adapter's slot. Absent or corrupt
// snapshots come back as an empty cart.
func NewStore(ctx context.Context, key string, adapter Adapter) *Store {
	return &Store{
		key:     key,
		adapter: adapter,
		cart:    adapter.Load(ctx, key),
	}
}

// AddItem inserts the item or, when an item with the same id already exists,
// increments its quantity. A non-positive quantity on the incoming item
// counts as one.
func (s *Store) AddItem(ctx context.Context, item LineItem) {
	item = normalizeLineItem(item)
	for i := range s.cart.Items {
		if s.cart.Items[i].ID == item.ID {
			s.cart.Items[i].Quantity += item.Quantity
			s.persist(ctx)
			return
		}
	}
	s.cart.Items = append(s.cart.Items, item)
	s.persist(ctx)
}

// UpdateQty clamps the quantity to a minimum of zero and applies it; zero
// removes the line entirely. An unknown id leaves the items untouched but
// still persists.
func (s *Store) UpdateQty(ctx context.Context, id string, qty int) {
	if qty < 0 {
		qty = 0
	}
	items := s.cart.Items[:0]
	for _, item := range s.cart.Items {
		if item.ID == id {
			if qty == 0 {
				continue
			}
			item.Quantity = qty
		}
		items = append(items, item)
	}
	s.cart.Items = items
	s.persist(ctx)
}

// RemoveItem deletes the line with the given id; no-op when absent.
func (s *Store) RemoveItem(ctx context.Context, id string) {
	items := s.cart.Items[:0]
	for _, item := range s.cart.Items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	s.cart.Items = items
	s.persist(ctx)
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) {
	s.cart.Items = nil
	s.persist(ctx)
}

// Cart returns a snapshot copy of the current state.
func (s *Store) Cart() Cart {
	items := make([]LineItem, len(s.cart.Items))
	copy(items, s.cart.Items)
	return Cart{Items: items}
}

func (s *Store) Total() decimal.Decimal {
	return s.cart.Total()
}

func (s *Store) Count() int {
	return s.cart.Count()
}

func (s *Store) persist(ctx context.Context) {
	s.adapter.Save(ctx, s.key, s.cart)
}
