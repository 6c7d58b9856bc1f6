// Package shop contains the storefront's presenter: the controller
// that turns intent events into model mutations and screen changes.
//
// # Screen Machine
//
// Exactly one modal screen is open at a time:
//
//	none → preview | basket
//	basket → order → contacts → success → none
//
// The order and contacts transitions are gated on validation of the
// fields the respective form shows; closing any modal returns to none
// without losing cart or buyer state. Success is reached only through a
// confirmed submission, and reaching it clears both.
//
// # Concurrency
//
// Controller state sits behind a mutex, but the mutex is never held
// across a model call: models publish change events synchronously, and
// those handlers re-enter the controller on the same goroutine.
//
// Order submission is split in two. The contacts:submit handler only
// validates and flips a pending flag; the UI observes the flag and
// calls PlaceOrder from a command goroutine, keeping the synchronous
// handler chain off the network.
package shop
