// Package catalog provides the read-only product catalog the cart adds from.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/cherryprincess/shopping-cart-APP/models"
)

var (
	// ErrProductNotFound is returned when a requested product does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateProduct is returned when two catalog entries share an ID.
	ErrDuplicateProduct = errors.New("duplicate product id")
	// ErrInvalidProduct is returned for entries with an empty name or negative price.
	ErrInvalidProduct = errors.New("invalid product")
)

// Repository defines read operations for the product catalog. List returns
// products in catalog order.
type Repository interface {
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id uint64) (*models.Product, error)
}

// Validate checks that every product has a name, a non-negative price and
// an ID no other product uses.
func Validate(products []models.Product) error {
	seen := make(map[uint64]struct{}, len(products))
	for _, p := range products {
		if p.Name == "" {
			return fmt.Errorf("%w: product %d has no name", ErrInvalidProduct, p.ID)
		}
		if p.Price.IsNegative() {
			return fmt.Errorf("%w: product %d has negative price %s", ErrInvalidProduct, p.ID, p.Price)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateProduct, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
