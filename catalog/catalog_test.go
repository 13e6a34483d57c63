package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/cherryprincess/shopping-cart-APP/models"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		products []models.Product
		wantErr  error
	}{
		{name: "default catalog", products: DefaultProducts()},
		{name: "empty catalog", products: nil},
		{
			name: "duplicate id",
			products: []models.Product{
				{ID: 1, Name: "A", Price: decimal.NewFromInt(1)},
				{ID: 1, Name: "B", Price: decimal.NewFromInt(2)},
			},
			wantErr: ErrDuplicateProduct,
		},
		{
			name:     "negative price",
			products: []models.Product{{ID: 1, Name: "A", Price: decimal.NewFromInt(-1)}},
			wantErr:  ErrInvalidProduct,
		},
		{
			name:     "missing name",
			products: []models.Product{{ID: 1, Price: decimal.NewFromInt(1)}},
			wantErr:  ErrInvalidProduct,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.products)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestStaticRepository(t *testing.T) {
	ctx := context.Background()
	products := DefaultProducts()
	repo, err := NewStaticRepository(products)
	if err != nil {
		t.Fatalf("NewStaticRepository() error = %v", err)
	}

	products[0].Name = "changed"

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 4 || list[0].Name != "Laptop" || list[3].Name != "Keyboard" {
		t.Fatalf("List() = %+v", list)
	}

	list[1].Name = "changed"
	p, err := repo.GetByID(ctx, 2)
	if err != nil {
		t.Fatalf("GetByID(2) error = %v", err)
	}
	if p.Name != "Phone" || !p.Price.Equal(decimal.NewFromInt(500)) {
		t.Errorf("GetByID(2) = %+v", p)
	}

	if _, err = repo.GetByID(ctx, 99); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("GetByID(99) error = %v, want ErrProductNotFound", err)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
products:
  - id: 10
    name: Mug
    price: 7.5
  - id: 11
    name: Poster
    price: "12.00"
  - id: 12
    name: Sticker
    price: 0
`)

	products, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []struct {
		id    uint64
		name  string
		price string
	}{
		{10, "Mug", "7.5"},
		{11, "Poster", "12"},
		{12, "Sticker", "0"},
	}
	if len(products) != len(want) {
		t.Fatalf("len(products) = %d, want %d", len(products), len(want))
	}
	for i, w := range want {
		p := products[i]
		if p.ID != w.id || p.Name != w.name || !p.Price.Equal(decimal.RequireFromString(w.price)) {
			t.Errorf("products[%d] = %+v, want %+v", i, p, w)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "bad price", data: "products:\n  - id: 1\n    name: A\n    price: ten\n"},
		{name: "duplicate", data: "products:\n  - {id: 1, name: A, price: 1}\n  - {id: 1, name: B, price: 2}\n", wantErr: ErrDuplicateProduct},
		{name: "negative", data: "products:\n  - {id: 1, name: A, price: -3}\n", wantErr: ErrInvalidProduct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() error = nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewFileRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("products:\n  - {id: 3, name: Lamp, price: 25}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	repo, err := NewFileRepository(path)
	if err != nil {
		t.Fatalf("NewFileRepository() error = %v", err)
	}
	p, err := repo.GetByID(context.Background(), 3)
	if err != nil || p.Name != "Lamp" {
		t.Fatalf("GetByID(3) = %+v, %v", p, err)
	}

	if _, err = NewFileRepository(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("NewFileRepository(missing) error = nil")
	}
}
