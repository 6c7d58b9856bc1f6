package model

import (
	"sync"

	"github.com/Vladislav970/weblarek/internal/events"
)

// Catalog owns the list of available products and the current preview
// selection. The selection is stored by id and resolved lazily, so a
// catalog refresh can legitimately orphan it; Selected then reports
// not-found instead of returning stale data.
type Catalog struct {
	mu         sync.Mutex
	events     *events.Bus
	items      []Product
	selectedID string
}

// NewCatalog creates an empty catalog publishing change events on bus.
func NewCatalog(bus *events.Bus) *Catalog {
	return &Catalog{events: bus}
}

// SetItems replaces the whole catalog with copies of items, preserving
// their order, and clears any previous selection. Emits CatalogChanged.
func (c *Catalog) SetItems(items []Product) {
	c.mu.Lock()
	c.items = cloneProducts(items)
	c.selectedID = ""
	c.mu.Unlock()

	c.events.Publish(events.CatalogChanged, nil)
}

// Items returns a defensive copy of the catalog in server order.
func (c *Catalog) Items() []Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneProducts(c.items)
}

// ProductByID looks a product up by id. The second return value is false
// when the id is empty or absent; absence is not an error.
func (c *Catalog) ProductByID(id string) (Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.findLocked(id)
}

func (c *Catalog) findLocked(id string) (Product, bool) {
	if id == "" {
		return Product{}, false
	}
	for _, p := range c.items {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return Product{}, false
}

// Select stores p as the current selection, or clears it when p is nil.
// Emits ProductSelected either way.
func (c *Catalog) Select(p *Product) {
	c.mu.Lock()
	if p == nil {
		c.selectedID = ""
	} else {
		c.selectedID = p.ID
	}
	c.mu.Unlock()

	c.events.Publish(events.ProductSelected, nil)
}

// Selected resolves the stored selection against the current catalog.
// Returns false when nothing is selected or the selection no longer
// exists after a refresh.
func (c *Catalog) Selected() (Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.findLocked(c.selectedID)
}
