package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is one catalog entry. Prices are display prices; the cart captures
// its own snapshot at add time, so later edits here never rewrite carts.
type Product struct {
	ID          string          `gorm:"primaryKey" json:"id"`
	Title       string          `gorm:"not null" json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
	Image       string          `json:"image,omitempty"`
	IsActive    bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName keeps the table name stable across drivers.
func (Product) TableName() string {
	return "products"
}
