package events

import (
	"reflect"
	"regexp"
	"sync"
)

// Handler consumes event payloads. Exact and pattern subscribers receive
// the payload that was published; wildcard subscribers receive an Envelope.
type Handler func(payload any)

// Envelope wraps a published event for wildcard subscribers, which would
// otherwise have no way to tell event names apart.
type Envelope struct {
	Name string
	Data any
}

type keyKind int

const (
	keyExact keyKind = iota
	keyPattern
	keyWildcard
)

// Key selects which published event names a handler receives.
type Key struct {
	kind    keyKind
	name    string
	pattern *regexp.Regexp
}

// Exact matches a single event name.
func Exact(name string) Key {
	return Key{kind: keyExact, name: name}
}

// Pattern matches every event name the regular expression accepts.
func Pattern(re *regexp.Regexp) Key {
	return Key{kind: keyPattern, pattern: re, name: re.String()}
}

// All matches every published event. Handlers subscribed with All receive
// an Envelope instead of the raw payload.
func All() Key {
	return Key{kind: keyWildcard}
}

func (k Key) matches(event string) bool {
	switch k.kind {
	case keyWildcard:
		return true
	case keyPattern:
		return k.pattern.MatchString(event)
	default:
		return k.name == event
	}
}

func (k Key) equal(other Key) bool {
	return k.kind == other.kind && k.name == other.name
}

type bucket struct {
	key      Key
	handlers []Handler
}

// Bus is an in-process publish/subscribe hub. Handlers run synchronously
// on the publishing goroutine, FIFO by subscription within one key.
// Dispatch is fail-fast: a handler that panics aborts the rest of the
// publish call.
type Bus struct {
	mu      sync.Mutex
	buckets []*bucket
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for every event the key matches.
func (b *Bus) Subscribe(key Key, handler Handler) {
	if handler == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, bk := range b.buckets {
		if bk.key.equal(key) {
			bk.handlers = append(bk.handlers, handler)
			return
		}
	}
	b.buckets = append(b.buckets, &bucket{key: key, handlers: []Handler{handler}})
}

// Unsubscribe removes a single previously subscribed handler from a key.
// Handlers are identified by function identity; a key whose last handler
// is removed is discarded.
func (b *Bus) Unsubscribe(key Key, handler Handler) {
	if handler == nil {
		return
	}
	target := reflect.ValueOf(handler).Pointer()

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, bk := range b.buckets {
		if !bk.key.equal(key) {
			continue
		}
		for j, h := range bk.handlers {
			if reflect.ValueOf(h).Pointer() == target {
				bk.handlers = append(bk.handlers[:j], bk.handlers[j+1:]...)
				break
			}
		}
		if len(bk.handlers) == 0 {
			b.buckets = append(b.buckets[:i], b.buckets[i+1:]...)
		}
		return
	}
}

// Publish delivers the payload to every subscriber whose key matches name.
// Handlers registered while a publish is in flight do not see that event.
func (b *Bus) Publish(name string, payload any) {
	type delivery struct {
		handler  Handler
		envelope bool
	}

	b.mu.Lock()
	var queue []delivery
	for _, bk := range b.buckets {
		if !bk.key.matches(name) {
			continue
		}
		for _, h := range bk.handlers {
			queue = append(queue, delivery{handler: h, envelope: bk.key.kind == keyWildcard})
		}
	}
	b.mu.Unlock()

	for _, d := range queue {
		if d.envelope {
			d.handler(Envelope{Name: name, Data: payload})
			continue
		}
		d.handler(payload)
	}
}

// Trigger returns a closure that publishes the event with a fixed payload.
// Useful for wiring callbacks that cannot carry the bus themselves.
func (b *Bus) Trigger(name string, payload any) func() {
	return func() {
		b.Publish(name, payload)
	}
}
