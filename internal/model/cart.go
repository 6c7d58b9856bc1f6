package model

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Vladislav970/weblarek/internal/events"
)

// ErrMissingID reports a caller bug: a product without an id can never be
// carted because the cart is keyed by id.
var ErrMissingID = errors.New("cart: product has no id")

// Cart holds the products picked for purchase, insertion order preserved.
// Ids are unique and priceless products are rejected at insertion, so the
// total is always an exact sum.
type Cart struct {
	mu     sync.Mutex
	events *events.Bus
	items  []Product
}

// NewCart creates an empty cart publishing change events on bus.
func NewCart(bus *events.Bus) *Cart {
	return &Cart{events: bus}
}

// Add stores a copy of p and emits CartChanged. Adding a product that is
// not for sale or is already present is a silent no-op, not an error: a
// double-click on "buy" must be idempotent. A product without an id
// returns ErrMissingID.
func (c *Cart) Add(p Product) error {
	if p.ID == "" {
		return ErrMissingID
	}

	c.mu.Lock()
	if !p.Purchasable() || c.containsLocked(p.ID) {
		c.mu.Unlock()
		return nil
	}
	c.items = append(c.items, p.Clone())
	c.mu.Unlock()

	c.events.Publish(events.CartChanged, nil)
	return nil
}

// Remove deletes the item with the given id and emits CartChanged.
// Removing an absent id is a silent no-op.
func (c *Cart) Remove(id string) {
	c.mu.Lock()
	removed := false
	for i, p := range c.items {
		if p.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			removed = true
			break
		}
	}
	c.mu.Unlock()

	if removed {
		c.events.Publish(events.CartChanged, nil)
	}
}

// Clear empties the cart and emits CartChanged. Clearing an empty cart
// does nothing and emits nothing.
func (c *Cart) Clear() {
	c.mu.Lock()
	empty := len(c.items) == 0
	c.items = nil
	c.mu.Unlock()

	if !empty {
		c.events.Publish(events.CartChanged, nil)
	}
}

// Contains reports whether an item with the given id is in the cart.
func (c *Cart) Contains(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.containsLocked(id)
}

func (c *Cart) containsLocked(id string) bool {
	for _, p := range c.items {
		if p.ID == id {
			return true
		}
	}
	return false
}

// TotalCount returns the number of items in the cart.
func (c *Cart) TotalCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// TotalPrice returns the sum of item prices.
func (c *Cart) TotalPrice() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, p := range c.items {
		total = total.Add(p.PriceOrZero())
	}
	return total
}

// Items returns defensive copies of the cart contents in insertion order.
func (c *Cart) Items() []Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneProducts(c.items)
}
