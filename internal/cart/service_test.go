package cart

import (
	"context"
	"testing"

	"github.com/bencom-ar/storefront-backend/internal/catalog"
	pkgerrors "github.com/bencom-ar/storefront-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

type stubProductLoader struct {
	products map[string]*catalog.Product
}

func (s *stubProductLoader) Get(_ context.Context, id string) (*catalog.Product, error) {
	if product, ok := s.products[id]; ok {
		return product, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func newTestService(t *testing.T) (Service, *MemoryAdapter) {
	t.Helper()
	adapter := NewMemoryAdapter()
	svc, err := NewService(adapter, &stubProductLoader{products: map[string]*catalog.Product{
		"p-3": {ID: "p-3", Title: "Kit C", Price: decimal.NewFromInt(780), Image: "kit-c.jpg"},
	}})
	if err != nil {
		t.Fatalf("building service: %v", err)
	}
	return svc, adapter
}

func TestServiceRequiresDependencies(t *testing.T) {
	t.Parallel()

	if _, err := NewService(nil, &stubProductLoader{}); err == nil {
		t.Fatal("expected error without adapter")
	}
	if _, err := NewService(NewMemoryAdapter(), nil); err == nil {
		t.Fatal("expected error without product loader")
	}
}

func TestServiceAddItemCapturesSnapshot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	cart, err := svc.AddItem(ctx, "tok", "p-3", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected one item, got %d", len(cart.Items))
	}
	it := cart.Items[0]
	if it.Title != "Kit C" || it.Image != "kit-c.jpg" || !it.Price.Equal(decimal.NewFromInt(780)) {
		t.Fatalf("snapshot not captured from catalog: %+v", it)
	}
	if it.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", it.Quantity)
	}
}

func TestServiceAddItemUnknownProduct(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, err := svc.AddItem(context.Background(), "tok", "ghost", 1)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestServiceRequiresToken(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), "  ")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestServiceStateSurvivesAcrossCalls(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	if _, err := svc.AddItem(ctx, "tok", "p-3", 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.UpdateQty(ctx, "tok", "p-3", 5); err != nil {
		t.Fatalf("update: %v", err)
	}

	cart, err := svc.Get(ctx, "tok")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 5 {
		t.Fatalf("state not persisted between calls: %+v", cart.Items)
	}

	if _, err := svc.Clear(ctx, "tok"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	cart, err = svc.Get(ctx, "tok")
	if err != nil {
		t.Fatalf("get after clear: %v", err)
	}
	if !cart.Empty() {
		t.Fatalf("expected empty cart, got %+v", cart.Items)
	}
}

func TestServiceTokensAreIsolated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	if _, err := svc.AddItem(ctx, "alice", "p-3", 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := svc.Get(ctx, "bob")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !cart.Empty() {
		t.Fatalf("tokens must not share slots, got %+v", cart.Items)
	}
}
