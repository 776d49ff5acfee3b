package cart

import (
	"context"
	"fmt"
	"strings"

	"github.com/bencom-ar/storefront-backend/internal/catalog"
	pkgerrors "github.com/bencom-ar/storefront-backend/pkg/errors"
)

type productLoader interface {
	Get(ctx context.Context, id string) (*catalog.Product, error)
}

// Service exposes the cart operations keyed by the visitor's cart token.
// Mutations never fail on persistence problems; errors come only from input
// validation and catalog lookups.
type Service interface {
	Get(ctx context.Context, token string) (Cart, error)
	AddItem(ctx context.Context, token, productID string, quantity int) (Cart, error)
	UpdateQty(ctx context.Context, token, itemID string, quantity int) (Cart, error)
	RemoveItem(ctx context.Context, token, itemID string) (Cart, error)
	Clear(ctx context.Context, token string) (Cart, error)
}

type service struct {
	adapter  Adapter
	products productLoader
}

// NewService builds a cart service backed by the provided slot adapter and
// catalog.
func NewService(adapter Adapter, products productLoader) (Service, error) {
	if adapter == nil {
		return nil, fmt.Errorf("cart adapter required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	return &service{adapter: adapter, products: products}, nil
}

func (s *service) Get(ctx context.Context, token string) (Cart, error) {
	store, err := s.store(ctx, token)
	if err != nil {
		return Cart{}, err
	}
	return store.Cart(), nil
}

// AddItem resolves the product and captures its title, price, and image into
// the line item at add time.
func (s *service) AddItem(ctx context.Context, token, productID string, quantity int) (Cart, error) {
	store, err := s.store(ctx, token)
	if err != nil {
		return Cart{}, err
	}

	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return Cart{}, err
	}

	store.AddItem(ctx, LineItem{
		ID:       product.ID,
		Title:    product.Title,
		Price:    product.Price,
		Image:    product.Image,
		Quantity: quantity,
	})
	return store.Cart(), nil
}

func (s *service) UpdateQty(ctx context.Context, token, itemID string, quantity int) (Cart, error) {
	store, err := s.store(ctx, token)
	if err != nil {
		return Cart{}, err
	}
	store.UpdateQty(ctx, itemID, quantity)
	return store.Cart(), nil
}

func (s *service) RemoveItem(ctx context.Context, token, itemID string) (Cart, error) {
	store, err := s.store(ctx, token)
	if err != nil {
		return Cart{}, err
	}
	store.RemoveItem(ctx, itemID)
	return store.Cart(), nil
}

func (s *service) Clear(ctx context.Context, token string) (Cart, error) {
	store, err := s.store(ctx, token)
	if err != nil {
		return Cart{}, err
	}
	store.Clear(ctx)
	return store.Cart(), nil
}

func (s *service) store(ctx context.Context, token string) (*Store, error) {
	if strings.TrimSpace(token) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart token is required")
	}
	return NewStore(ctx, token, s.adapter), nil
}
