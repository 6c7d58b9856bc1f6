// Package events implements the in-process event bus the storefront is
// built around.
//
// # Overview
//
// Every user intent and every model change travels through one Bus.
// Views publish intents, the controller subscribes to them, models
// publish change notifications, and the controller and tests subscribe
// to those. Components never hold references to each other; the bus is
// the only coupling point.
//
// # Subscription Keys
//
// A subscription key comes in three kinds:
//
//   - Exact(name): matches exactly one event name
//   - Pattern(re): matches every event name the regexp accepts
//   - All(): matches every event
//
// Wildcard subscribers cannot know which event fired from the payload
// alone, so they receive an Envelope{Name, Data} instead of the raw
// payload. Exact and pattern subscribers receive the payload as
// published.
//
// # Dispatch Semantics
//
// Publish runs handlers synchronously on the caller's goroutine, in
// FIFO order within each key. The handler list is snapshotted under the
// bus mutex before any handler runs, so handlers may publish, subscribe
// and unsubscribe re-entrantly; a subscription made during a dispatch
// does not see the event being dispatched.
//
// Unsubscribe removes a single handler, identified by function pointer.
// A key whose last handler is removed is discarded entirely.
//
// # Event Vocabulary
//
// names.go fixes the closed set of event names and the payload struct
// each one carries. Publishers and subscribers must agree on that
// pairing; there is no runtime schema.
package events
