package cart

// AddItemRequest adds a catalog product to the visitor's cart. Quantity is
// optional; non-positive values fall back to one line.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateQtyRequest sets the quantity of an existing line. Zero removes it.
type UpdateQtyRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}
