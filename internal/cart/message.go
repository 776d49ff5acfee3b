package cart

import (
	"fmt"
	"strings"
)

// MessageMeta carries optional site metadata appended to the order summary.
type MessageMeta struct {
	Website string
}

// FormatOrderMessage renders the cart into the human-readable order summary
// handed off to the business over the messaging channel. Pure function, no
// I/O; the output is customer-facing and stays in the site's language.
func FormatOrderMessage(cart Cart, customer Customer, meta MessageMeta) string {
	lines := []string{"Nuevo pedido desde la web:"}
	if customer.Name != "" {
		lines = append(lines, fmt.Sprintf("Cliente: %s", customer.Name))
	}
	if customer.Email != "" {
		lines = append(lines, fmt.Sprintf("Email: %s", customer.Email))
	}
	lines = append(lines, "", "Productos:")
	for _, item := range cart.Items {
		lines = append(lines, fmt.Sprintf("- %s x%d — $%s", item.Title, item.Quantity, item.LineTotal().StringFixed(2)))
	}
	lines = append(lines, "", fmt.Sprintf("Total: $%s", cart.Total().StringFixed(2)))
	if meta.Website != "" {
		lines = append(lines, "", fmt.Sprintf("Pedido generado desde: %s", meta.Website))
	}
	return strings.Join(lines, "\n")
}
