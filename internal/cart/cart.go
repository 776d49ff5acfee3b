package cart

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LineItem is one distinct product entry in the cart. Title, price and image
// are captured when the item is added and never re-fetched from the catalog.
type LineItem struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image,omitempty"`
	Quantity int             `json:"quantity"`
}

// Cart is the serialized snapshot shape of the durable slot. Items keep
// insertion order.
type Cart struct {
	Items []LineItem `json:"items"`
}

// Customer carries the optional fields collected at hand-off time. It is
// never persisted.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Empty reports whether the cart holds no items.
func (c Cart) Empty() bool {
	return len(c.Items) == 0
}

// Total sums price times quantity across all items. Malformed lines (negative
// price or quantity) contribute zero instead of failing.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Count sums the quantities across all items with the same coercion as Total.
func (c Cart) Count() int {
	var count int
	for _, item := range c.Items {
		if item.Quantity > 0 {
			count += item.Quantity
		}
	}
	return count
}

// LineTotal is price times quantity with the same coercion as Total.
func (i LineItem) LineTotal() decimal.Decimal {
	price := i.Price
	if price.IsNegative() {
		price = decimal.Zero
	}
	qty := i.Quantity
	if qty < 0 {
		qty = 0
	}
	return price.Mul(decimal.NewFromInt(int64(qty)))
}

// normalizeLineItem is the single seam where loosely shaped input becomes a
// well-typed line item: trimmed id/title, non-negative price, and the
// quantity-or-one add rule.
func normalizeLineItem(item LineItem) LineItem {
	item.ID = strings.TrimSpace(item.ID)
	item.Title = strings.TrimSpace(item.Title)
	if item.Price.IsNegative() {
		item.Price = decimal.Zero
	}
	item.Quantity = normalizeAddQuantity(item.Quantity)
	return item
}

// normalizeAddQuantity implements the documented add contract: a zero,
// negative, or unset quantity collapses to one.
func normalizeAddQuantity(qty int) int {
	if qty <= 0 {
		return 1
	}
	return qty
}
