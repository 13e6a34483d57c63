package cart

import (
	"sync"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
	"go.uber.org/zap"

	"github.com/cherryprincess/shopping-cart-APP/models"
	"github.com/cherryprincess/shopping-cart-APP/models/enum"
)

// Change describes the outcome of one manager operation.
type Change struct {
	Type      enum.CartEventType
	ProductID uint64
	Cart      models.Cart
}

// Changed reports whether the operation replaced the cart with a different value.
func (c Change) Changed() bool {
	return c.Type != enum.CartEventTypeNone
}

// Manager owns the current cart. Every operation computes a new cart from
// the current one and swaps it in whole.
type Manager struct {
	mu     sync.Mutex
	cart   models.Cart
	logger *zap.Logger
}

func NewManager(currency stripe.Currency, logger *zap.Logger) *Manager {
	return &Manager{
		cart:   models.NewCart(currency),
		logger: logger,
	}
}

// Cart returns a copy of the current cart.
func (m *Manager) Cart() models.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneCart(m.cart)
}

func (m *Manager) Total() decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return ComputeTotal(m.cart)
}

// Update replaces the current cart with fn(current) and returns a copy of
// the result. fn must not modify its argument.
func (m *Manager) Update(fn func(models.Cart) models.Cart) models.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cart = fn(m.cart)
	return cloneCart(m.cart)
}

func (m *Manager) AddToCart(product models.Product) Change {
	change := Change{ProductID: product.ID}
	change.Cart = m.Update(func(current models.Cart) models.Cart {
		change.Type = enum.CartEventTypeLineAdded
		if _, ok := current.Line(product.ID); ok {
			change.Type = enum.CartEventTypeQuantityIncreased
		}
		return AddToCart(current, product)
	})

	m.logger.Debug("Cart line added",
		zap.Uint64("product_id", product.ID),
		zap.String("event_type", string(change.Type)))

	return change
}

func (m *Manager) RemoveFromCart(productID uint64) Change {
	change := Change{ProductID: productID}
	change.Cart = m.Update(func(current models.Cart) models.Cart {
		line, ok := current.Line(productID)
		switch {
		case !ok:
			change.Type = enum.CartEventTypeNone
		case line.Quantity > 1:
			change.Type = enum.CartEventTypeQuantityDecreased
		default:
			change.Type = enum.CartEventTypeLineRemoved
		}
		return RemoveFromCart(current, productID)
	})

	if !change.Changed() {
		m.logger.Debug("Product not in cart, nothing to remove", zap.Uint64("product_id", productID))
	}

	return change
}
