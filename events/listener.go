package events

import (
	"sync/atomic"
	"unsafe"
)

// ListenerFunc is a plain-function listener. Returning false suppresses
// the event's default action, like a DOM on-handler returning false.
type ListenerFunc func(*BrowserEvent) bool

// Handler is the object form of a listener. Objects implementing
// HandleEvent may be registered directly; the variant is resolved once
// at registration time so repeated registration and removal compare the
// same identity.
type Handler interface {
	HandleEvent(*BrowserEvent) bool
}

// callback is the resolved listener variant: exactly one of fn or
// handler is set. Go functions are not comparable, so fn identity is
// the address of the function value's underlying function object:
// two func values are the same listener iff they are the same
// instance — the same closure allocation, or the same declared
// function. Closures that capture nothing compile to one shared
// instance, so every evaluation of such a literal compares equal.
// Handler identity is plain interface equality.
type callback struct {
	fn      ListenerFunc
	fnPtr   uintptr
	handler Handler
}

// funcInstanceID returns the address of fn's underlying function
// object. A func value is represented as a single pointer to that
// object, and converting between func types of identical signature
// preserves it.
func funcInstanceID(fn ListenerFunc) uintptr {
	return uintptr(*(*unsafe.Pointer)(unsafe.Pointer(&fn)))
}

func resolveCallback(cb any) (callback, error) {
	switch v := cb.(type) {
	case ListenerFunc:
		return callback{fn: v, fnPtr: funcInstanceID(v)}, nil
	case func(*BrowserEvent) bool:
		return callback{fn: v, fnPtr: funcInstanceID(v)}, nil
	case Handler:
		return callback{handler: v}, nil
	default:
		return callback{}, ErrBadCallback
	}
}

func (c callback) equal(o callback) bool {
	if c.handler != nil || o.handler != nil {
		return c.handler == o.handler
	}
	return c.fnPtr != 0 && c.fnPtr == o.fnPtr
}

func (c callback) invoke(e *BrowserEvent) bool {
	if c.handler != nil {
		return c.handler.HandleEvent(e)
	}
	return c.fn(e)
}

// nextKey issues process-unique listener keys.
var nextKey atomic.Int64

func reserveKey() int {
	return int(nextKey.Add(1))
}

// Listener describes one registered listener. Instances are created by
// ListenerMap.Add and must not be constructed directly.
type Listener struct {
	// Key uniquely identifies the listener for the process lifetime.
	Key int

	Type    string
	Capture bool
	Once    bool

	// Scope is the handler-scope object the registration was made with.
	// It participates in listener identity and defaults to the source.
	Scope any

	// Source is the object the listener was registered on.
	Source any

	cb      callback
	removed bool
}

// Removed reports whether the listener has been detached. A removed
// listener is never invoked again and is excluded from all lookups.
func (l *Listener) Removed() bool {
	return l.removed
}

// markRemoved flags the listener and drops its callback reference so
// the callee can be collected. Source is kept for registry teardown.
func (l *Listener) markRemoved() {
	l.removed = true
	l.cb = callback{}
}
