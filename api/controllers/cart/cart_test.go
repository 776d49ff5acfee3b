package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/bencom-ar/storefront-backend/api/middleware"
	cartsvc "github.com/bencom-ar/storefront-backend/internal/cart"
	pkgerrors "github.com/bencom-ar/storefront-backend/pkg/errors"
)

type stubCartService struct {
	record cartsvc.Cart
	err    error

	lastToken    string
	lastProduct  string
	lastItemID   string
	lastQuantity int
}

func (s *stubCartService) Get(_ context.Context, token string) (cartsvc.Cart, error) {
	s.lastToken = token
	return s.record, s.err
}

func (s *stubCartService) AddItem(_ context.Context, token, productID string, quantity int) (cartsvc.Cart, error) {
	s.lastToken = token
	s.lastProduct = productID
	s.lastQuantity = quantity
	return s.record, s.err
}

func (s *stubCartService) UpdateQty(_ context.Context, token, itemID string, quantity int) (cartsvc.Cart, error) {
	s.lastToken = token
	s.lastItemID = itemID
	s.lastQuantity = quantity
	return s.record, s.err
}

func (s *stubCartService) RemoveItem(_ context.Context, token, itemID string) (cartsvc.Cart, error) {
	s.lastToken = token
	s.lastItemID = itemID
	return s.record, s.err
}

func (s *stubCartService) Clear(_ context.Context, token string) (cartsvc.Cart, error) {
	s.lastToken = token
	return s.record, s.err
}

func sampleCart() cartsvc.Cart {
	return cartsvc.Cart{Items: []cartsvc.LineItem{
		{ID: "p-3", Title: "Kit C", Price: decimal.NewFromInt(780), Quantity: 2},
	}}
}

func withToken(req *http.Request, token string) *http.Request {
	return req.WithContext(middleware.WithCartToken(req.Context(), token))
}

func decodeCartView(t *testing.T, resp *httptest.ResponseRecorder) CartView {
	t.Helper()
	var envelope struct {
		Data CartView `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

func TestFetchSuccess(t *testing.T) {
	service := &stubCartService{record: sampleCart()}
	handler := Fetch(service, nil)

	req := withToken(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil), "tok")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if service.lastToken != "tok" {
		t.Fatalf("token not forwarded, got %q", service.lastToken)
	}

	view := decodeCartView(t, resp)
	if view.Total != "1560.00" || view.Count != 2 {
		t.Fatalf("unexpected totals: %+v", view)
	}
	if len(view.Items) != 1 || view.Items[0].LineTotal != "1560.00" || view.Items[0].Price != "780.00" {
		t.Fatalf("unexpected items: %+v", view.Items)
	}
}

func TestAddItemSuccess(t *testing.T) {
	service := &stubCartService{record: sampleCart()}
	handler := AddItem(service, nil)

	body := `{"product_id": "p-3", "quantity": 2}`
	req := withToken(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body)), "tok")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if service.lastProduct != "p-3" || service.lastQuantity != 2 {
		t.Fatalf("payload not forwarded: product=%q quantity=%d", service.lastProduct, service.lastQuantity)
	}
}

func TestAddItemMissingProductID(t *testing.T) {
	handler := AddItem(&stubCartService{}, nil)

	req := withToken(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"quantity": 2}`)), "tok")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	handler := AddItem(&stubCartService{err: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}, nil)

	body := `{"product_id": "ghost"}`
	req := withToken(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body)), "tok")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestUpdateQtyForwardsZero(t *testing.T) {
	service := &stubCartService{record: cartsvc.Cart{}}
	handler := UpdateQty(service, nil)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("itemId", "p-3")

	req := withToken(httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/p-3", strings.NewReader(`{"quantity": 0}`)), "tok")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if service.lastItemID != "p-3" || service.lastQuantity != 0 {
		t.Fatalf("zero quantity must reach the service, got item=%q quantity=%d", service.lastItemID, service.lastQuantity)
	}
}

func TestUpdateQtyRequiresQuantity(t *testing.T) {
	handler := UpdateQty(&stubCartService{}, nil)

	req := withToken(httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/p-3", strings.NewReader(`{}`)), "tok")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestRemoveItemSuccess(t *testing.T) {
	service := &stubCartService{record: cartsvc.Cart{}}
	handler := RemoveItem(service, nil)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("itemId", "p-3")

	req := withToken(httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/p-3", nil), "tok")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if service.lastItemID != "p-3" {
		t.Fatalf("item id not forwarded, got %q", service.lastItemID)
	}
}

func TestClearReturnsEmptyView(t *testing.T) {
	handler := Clear(&stubCartService{record: cartsvc.Cart{}}, nil)

	req := withToken(httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil), "tok")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	view := decodeCartView(t, resp)
	if len(view.Items) != 0 || view.Total != "0.00" || view.Count != 0 {
		t.Fatalf("expected empty view, got %+v", view)
	}
}

func TestFetchMissingTokenIsValidationError(t *testing.T) {
	handler := Fetch(&stubCartService{err: pkgerrors.New(pkgerrors.CodeValidation, "cart token is required")}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
