// Package events provides the page runtime's event-listener subsystem:
// a per-source listener registry, normalization of raw host events into
// a stable BrowserEvent shape, and a dispatcher that installs a single
// trampoline per (source, type, capture) bucket and simulates the
// capture/bubble walk on hosts without native capture support.
package events

import "sync"

// ListenOptions configures a registration. The zero value registers a
// bubble-phase, repeat-delivery, non-passive listener scoped to the
// source.
type ListenOptions struct {
	Capture bool
	Once    bool

	// Passive hints that the listener will not suppress the default
	// action. Forwarded to the host only when it supports the option.
	Passive bool

	// Scope is the handler-scope object. It participates in listener
	// identity; nil means the source itself.
	Scope any
}

// Propagator is implemented by sources that take part in capture and
// bubble propagation. The dispatcher walks ParentEventTarget links to
// build the ancestor chain; a nil parent ends the chain.
type Propagator interface {
	ParentEventTarget() any
}

// Listenable is implemented by sources that manage their own listeners.
// Registration on such a source delegates to the source instead of the
// shared registry. Target is the canonical implementation.
type Listenable interface {
	Listen(typ string, callback any, opts *ListenOptions) (*Listener, error)
	ListenOnce(typ string, callback any, opts *ListenOptions) (*Listener, error)
	Unlisten(typ string, callback any, opts *ListenOptions) bool
	UnlistenByKey(l *Listener) bool
}

// bucket identifies one trampoline: a (type, capture) pair on a source.
type bucket struct {
	typ     string
	capture bool
}

// sourceState holds everything the registry tracks for one source.
type sourceState struct {
	m       *ListenerMap
	proxies map[bucket]any
}

// Registry owns the listener maps for every source and binds them to
// the host platform. All listener state lives here, never on the
// sources themselves.
//
// Dispatch is synchronous and single-threaded: callbacks run to
// completion on the delivering goroutine before control returns to the
// host.
type Registry struct {
	platform Platform

	// mu guards the source table. It is never held while a callback
	// runs, so callbacks may re-enter the registry freely.
	mu      sync.Mutex
	sources map[any]*sourceState

	// live counts successful platform registrations. Diagnostics only;
	// it never goes negative.
	live int
}

// NewRegistry creates a registry bound to the given platform.
func NewRegistry(p Platform) *Registry {
	return &Registry{
		platform: p,
		sources:  make(map[any]*sourceState),
	}
}

// Listen registers callback for events of type typ on source. Callback
// must be a ListenerFunc (or a bare func(*BrowserEvent) bool) or a
// Handler. Registering an identical (callback, capture, scope) tuple
// twice returns the existing listener.
func (r *Registry) Listen(source any, typ string, callback any, opts *ListenOptions) (*Listener, error) {
	if lt, ok := source.(Listenable); ok {
		return lt.Listen(typ, callback, opts)
	}
	return r.listen(source, typ, callback, opts, false)
}

// ListenOnce is Listen with single-use delivery: the listener is
// detached before its first invocation runs.
func (r *Registry) ListenOnce(source any, typ string, callback any, opts *ListenOptions) (*Listener, error) {
	if lt, ok := source.(Listenable); ok {
		return lt.ListenOnce(typ, callback, opts)
	}
	return r.listen(source, typ, callback, opts, true)
}

// ListenTypes registers callback for each of the given types, returning
// one listener per type.
func (r *Registry) ListenTypes(source any, types []string, callback any, opts *ListenOptions) ([]*Listener, error) {
	out := make([]*Listener, 0, len(types))
	for _, typ := range types {
		l, err := r.Listen(source, typ, callback, opts)
		if err != nil {
			return out, err
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *Registry) listen(source any, typ string, callback any, opts *ListenOptions, once bool) (*Listener, error) {
	if typ == "" {
		return nil, ErrEmptyType
	}
	cb, err := resolveCallback(callback)
	if err != nil {
		return nil, err
	}
	var o ListenOptions
	if opts != nil {
		o = *opts
	}
	if once {
		o.Once = true
	}
	scope := o.Scope
	if scope == nil {
		scope = source
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	st := r.sources[source]
	if st == nil {
		st = &sourceState{
			m:       NewListenerMap(source),
			proxies: make(map[bucket]any),
		}
		r.sources[source] = st
	}

	l, created := st.m.Add(typ, cb, o.Capture, scope, o.Once)

	b := bucket{typ, o.Capture}
	if _, installed := st.proxies[b]; !installed {
		passive := o.Passive && r.platform.SupportsPassive()
		proxy := func(raw *RawEvent) bool {
			return r.dispatch(source, typ, o.Capture, raw)
		}
		handle, err := r.platform.Register(source, typ, o.Capture, passive, proxy)
		if err != nil {
			if created {
				st.m.RemoveByKey(l)
				r.dropIfEmpty(source, st)
			}
			return nil, err
		}
		st.proxies[b] = handle
		r.live++
	}
	return l, nil
}

// Unlisten removes the listener matching (typ, callback, capture,
// scope). It reports whether a listener was found; removing a listener
// that was never registered is a silent no-op.
func (r *Registry) Unlisten(source any, typ string, callback any, opts *ListenOptions) bool {
	if lt, ok := source.(Listenable); ok {
		return lt.Unlisten(typ, callback, opts)
	}
	cb, err := resolveCallback(callback)
	if err != nil {
		return false
	}
	var o ListenOptions
	if opts != nil {
		o = *opts
	}
	scope := o.Scope
	if scope == nil {
		scope = source
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.sources[source]
	if st == nil {
		return false
	}
	l := st.m.Remove(typ, cb, o.Capture, scope)
	if l == nil {
		return false
	}
	r.teardownBucket(source, st, bucket{typ, o.Capture})
	return true
}

// UnlistenByKey removes a listener by its record, regardless of how the
// callback compares. Returns false for nil or already-removed records.
func (r *Registry) UnlistenByKey(l *Listener) bool {
	if l == nil || l.Removed() {
		return false
	}
	if lt, ok := l.Source.(Listenable); ok {
		return lt.UnlistenByKey(l)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.sources[l.Source]
	if st == nil {
		return false
	}
	if !st.m.RemoveByKey(l) {
		return false
	}
	r.teardownBucket(l.Source, st, bucket{l.Type, l.Capture})
	return true
}

// UnlistenAll removes every listener registered on source, returning
// how many were removed.
func (r *Registry) UnlistenAll(source any) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.sources[source]
	if st == nil {
		return 0
	}
	n := 0
	for _, typ := range st.m.Types() {
		n += st.m.RemoveAllType(typ)
	}
	for b, handle := range st.proxies {
		r.platform.Unregister(source, b.typ, b.capture, handle)
		delete(st.proxies, b)
		if r.live > 0 {
			r.live--
		}
	}
	delete(r.sources, source)
	return n
}

// GetListener returns the live listener matching the identity tuple, or
// nil when none is registered.
func (r *Registry) GetListener(source any, typ string, callback any, opts *ListenOptions) *Listener {
	cb, err := resolveCallback(callback)
	if err != nil {
		return nil
	}
	var o ListenOptions
	if opts != nil {
		o = *opts
	}
	scope := o.Scope
	if scope == nil {
		scope = source
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.sources[source]
	if st == nil {
		return nil
	}
	return st.m.Get(typ, cb, o.Capture, scope)
}

// LiveCount returns the number of live platform registrations.
func (r *Registry) LiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live
}

// teardownBucket removes the trampoline for a bucket that has run out
// of listeners and detaches the source's map when it is empty.
func (r *Registry) teardownBucket(source any, st *sourceState, b bucket) {
	if st.m.BucketCount(b.typ, b.capture) > 0 {
		return
	}
	if handle, ok := st.proxies[b]; ok {
		r.platform.Unregister(source, b.typ, b.capture, handle)
		delete(st.proxies, b)
		if r.live > 0 {
			r.live--
		}
	}
	r.dropIfEmpty(source, st)
}

func (r *Registry) dropIfEmpty(source any, st *sourceState) {
	if st.m.Empty() && len(st.proxies) == 0 {
		delete(r.sources, source)
	}
}
