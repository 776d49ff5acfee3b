package checkout

import (
	"context"
	"fmt"

	cartsvc "github.com/bencom-ar/storefront-backend/internal/cart"
	"github.com/bencom-ar/storefront-backend/pkg/config"
	pkgerrors "github.com/bencom-ar/storefront-backend/pkg/errors"
	"github.com/bencom-ar/storefront-backend/pkg/whatsapp"
)

type cartReader interface {
	Get(ctx context.Context, token string) (cartsvc.Cart, error)
}

// HandoffResult is what the UI needs to finish the order: the message that
// was rendered and the deep link it should open. Opening the link is the
// caller's explicit side effect.
type HandoffResult struct {
	Link    string `json:"link"`
	Message string `json:"message"`
}

// Service turns a cart into a WhatsApp hand-off.
type Service interface {
	Handoff(ctx context.Context, token string, customer cartsvc.Customer) (*HandoffResult, error)
}

type service struct {
	carts cartReader
	cfg   config.WhatsAppConfig
}

// NewService builds the hand-off service.
func NewService(carts cartReader, cfg config.WhatsAppConfig) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart reader required")
	}
	return &service{carts: carts, cfg: cfg}, nil
}

// Handoff renders the order summary and builds the deep link. Both guards
// leave the cart untouched: no destination configured and an empty cart each
// abort with a user-visible error.
func (s *service) Handoff(ctx context.Context, token string, customer cartsvc.Customer) (*HandoffResult, error) {
	if s.cfg.Number == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "whatsapp number is not configured")
	}

	cart, err := s.carts.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if cart.Empty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	message := cartsvc.FormatOrderMessage(cart, customer, cartsvc.MessageMeta{Website: s.cfg.Website})
	return &HandoffResult{
		Link:    whatsapp.Link(s.cfg.Number, message),
		Message: message,
	}, nil
}
