package cart

import (
	cartsvc "github.com/bencom-ar/storefront-backend/internal/cart"
)

// LineItemView is the wire shape of one cart line.
type LineItemView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	Image     string `json:"image,omitempty"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

// CartView is the wire shape of the whole cart.
type CartView struct {
	Items []LineItemView `json:"items"`
	Total string         `json:"total"`
	Count int            `json:"count"`
}

func newCartView(cart cartsvc.Cart) CartView {
	items := make([]LineItemView, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, LineItemView{
			ID:        item.ID,
			Title:     item.Title,
			Price:     item.Price.StringFixed(2),
			Image:     item.Image,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal().StringFixed(2),
		})
	}
	return CartView{
		Items: items,
		Total: cart.Total().StringFixed(2),
		Count: cart.Count(),
	}
}
