// Package model holds the storefront's domain state: the product
// catalog, the cart, and the buyer's checkout details.
//
// # Overview
//
// Each model is a mutex-guarded struct bound to the event bus at
// construction. Mutations publish a change event (catalog:changed,
// cart:changed, buyer:changed) after the lock is released, so a change
// handler may safely call back into the model that notified it.
//
// # Defensive Copies
//
// Accessors never leak internal state: Items() returns cloned slices,
// product prices are deep-copied, and Data() returns the buyer record
// by value. Callers may mutate whatever they get back without
// corrupting the model.
//
// # Money
//
// Prices are shopspring/decimal values. A nil price marks a product
// that is displayed but cannot be bought; Cart.Add silently refuses it.
//
// # Validation
//
// Buyer validation runs through go-playground/validator with a custom
// notblank tag and returns a map of field name to a fixed user-facing
// message. The messages are part of the product contract, not debug
// text.
package model
