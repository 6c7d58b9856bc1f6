package model

import (
	"github.com/shopspring/decimal"
)

// Product is a catalog item as the storefront API serves it. A nil Price
// marks the product as not for sale; it can be previewed but never added
// to the cart.
type Product struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Category    string           `json:"category"`
	Price       *decimal.Decimal `json:"price"`
}

// Purchasable reports whether the product can be bought.
func (p Product) Purchasable() bool {
	return p.Price != nil
}

// PriceOrZero returns the price, or zero for priceless products.
func (p Product) PriceOrZero() decimal.Decimal {
	if p.Price == nil {
		return decimal.Zero
	}
	return *p.Price
}

// Clone returns an independent copy; mutating the copy's price cannot
// reach the original.
func (p Product) Clone() Product {
	out := p
	if p.Price != nil {
		v := *p.Price
		out.Price = &v
	}
	return out
}

func cloneProducts(items []Product) []Product {
	if len(items) == 0 {
		return nil
	}
	out := make([]Product, len(items))
	for i, p := range items {
		out[i] = p.Clone()
	}
	return out
}
