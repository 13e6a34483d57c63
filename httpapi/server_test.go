package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
	"go.uber.org/zap"

	shop "github.com/cherryprincess/shopping-cart-APP"
	"github.com/cherryprincess/shopping-cart-APP/cart"
	"github.com/cherryprincess/shopping-cart-APP/catalog"
	"github.com/cherryprincess/shopping-cart-APP/event"
	"github.com/cherryprincess/shopping-cart-APP/models"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	repo, err := catalog.NewStaticRepository(catalog.DefaultProducts())
	if err != nil {
		t.Fatal(err)
	}
	svc, err := shop.NewService(repo, cart.NewManager(stripe.CurrencyUSD, zap.NewNop()), event.NewMemoryRepository(time.Hour), nil, shop.Options{}, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = svc.Close() })
	return NewServer(svc, zap.NewNop())
}

func do(t *testing.T, s *Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) models.CartView {
	t.Helper()
	var view models.CartView
	if err := json.NewDecoder(w.Body).Decode(&view); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	return view
}

func TestServer_Routes(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name     string
		method   string
		path     string
		wantCode int
	}{
		{"list products", http.MethodGet, "/api/products", http.StatusOK},
		{"get product", http.MethodGet, "/api/products/2", http.StatusOK},
		{"missing product", http.MethodGet, "/api/products/99", http.StatusNotFound},
		{"get cart", http.MethodGet, "/api/cart", http.StatusOK},
		{"bad id", http.MethodPost, "/api/cart/items/abc", http.StatusBadRequest},
		{"wrong method", http.MethodPut, "/api/cart/items/1", http.StatusMethodNotAllowed},
		{"health", http.MethodGet, "/healthz", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := do(t, s, tt.method, tt.path); w.Code != tt.wantCode {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.path, w.Code, tt.wantCode)
			}
		})
	}
}

func TestServer_ListProductsKeepsOrder(t *testing.T) {
	w := do(t, newTestServer(t), http.MethodGet, "/api/products")

	var products []models.Product
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatal(err)
	}
	if len(products) != 4 || products[0].ID != 1 || products[3].ID != 4 {
		t.Errorf("products = %+v", products)
	}
}

func TestServer_CartFlow(t *testing.T) {
	s := newTestServer(t)

	do(t, s, http.MethodPost, "/api/cart/items/1")
	do(t, s, http.MethodPost, "/api/cart/items/3")
	view := decodeCart(t, do(t, s, http.MethodPost, "/api/cart/items/1"))

	if len(view.Lines) != 2 || view.Lines[0].ProductID != 1 || view.Lines[0].Quantity != 2 {
		t.Fatalf("cart = %+v", view.Lines)
	}
	if !view.Total.Equal(decimal.NewFromInt(2100)) || view.ItemCount != 3 {
		t.Errorf("total = %s, items = %d", view.Total, view.ItemCount)
	}

	// unknown product: unchanged cart, not an error
	w := do(t, s, http.MethodPost, "/api/cart/items/42")
	if w.Code != http.StatusOK || len(decodeCart(t, w).Lines) != 2 {
		t.Errorf("add unknown = %d", w.Code)
	}

	do(t, s, http.MethodDelete, "/api/cart/items/3")
	view = decodeCart(t, do(t, s, http.MethodGet, "/api/cart"))
	if len(view.Lines) != 1 || !view.Total.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("after delete: %+v", view)
	}

	do(t, s, http.MethodDelete, "/api/cart/items/1")
	view = decodeCart(t, do(t, s, http.MethodDelete, "/api/cart/items/1"))
	if !view.Empty || view.TotalMinor != 0 {
		t.Errorf("after emptying: %+v", view)
	}
}
