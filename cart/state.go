// Package cart holds the cart state transitions and the manager that owns
// the current cart value.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/cherryprincess/shopping-cart-APP/models"
)

// AddToCart returns a new cart in which product's line has one more unit.
// A product not yet in the cart is appended with quantity 1. The input
// cart is never modified.
func AddToCart(c models.Cart, product models.Product) models.Cart {
	lines := make([]models.CartLine, 0, len(c.Lines)+1)
	found := false
	for _, line := range c.Lines {
		if line.ProductID == product.ID {
			line.Quantity++
			found = true
		}
		lines = append(lines, line)
	}
	if !found {
		lines = append(lines, models.NewCartLine(product))
	}

	return models.Cart{Currency: c.Currency, Lines: lines}
}

// RemoveFromCart returns a new cart in which productID's line has one unit
// less; a line that drops to zero is left out. A productID with no line
// returns c unchanged.
func RemoveFromCart(c models.Cart, productID uint64) models.Cart {
	if _, ok := c.Line(productID); !ok {
		return c
	}

	lines := make([]models.CartLine, 0, len(c.Lines))
	for _, line := range c.Lines {
		if line.ProductID == productID {
			if line.Quantity <= 1 {
				continue
			}
			line.Quantity--
		}
		lines = append(lines, line)
	}

	return models.Cart{Currency: c.Currency, Lines: lines}
}

// ComputeTotal sums price * quantity over every line. An empty cart totals 0.
func ComputeTotal(c models.Cart) decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

func cloneCart(c models.Cart) models.Cart {
	lines := make([]models.CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return models.Cart{Currency: c.Currency, Lines: lines}
}
