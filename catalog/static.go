package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/cherryprincess/shopping-cart-APP/models"
)

var _ Repository = (*staticRepository)(nil)

type staticRepository struct {
	products []models.Product
	index    map[uint64]int
}

// NewStaticRepository serves a fixed, in-memory product list. The slice is
// copied, so later changes by the caller are not visible.
func NewStaticRepository(products []models.Product) (Repository, error) {
	if err := Validate(products); err != nil {
		return nil, err
	}

	r := &staticRepository{
		products: make([]models.Product, len(products)),
		index:    make(map[uint64]int, len(products)),
	}
	copy(r.products, products)
	for i, p := range r.products {
		r.index[p.ID] = i
	}
	return r, nil
}

// DefaultProducts is the built-in catalog used when no other source is configured.
func DefaultProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Laptop", Price: decimal.NewFromInt(1000)},
		{ID: 2, Name: "Phone", Price: decimal.NewFromInt(500)},
		{ID: 3, Name: "Headphones", Price: decimal.NewFromInt(100)},
		{ID: 4, Name: "Keyboard", Price: decimal.NewFromInt(50)},
	}
}

func (r *staticRepository) List(_ context.Context) ([]models.Product, error) {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

func (r *staticRepository) GetByID(_ context.Context, id uint64) (*models.Product, error) {
	i, ok := r.index[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := r.products[i]
	return &p, nil
}
