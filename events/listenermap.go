package events

// ListenerMap is the per-source listener registry: an ordered list of
// listeners for each event type. It never owns its source.
type ListenerMap struct {
	source    any
	listeners map[string][]*Listener
	count     int
}

// NewListenerMap creates an empty map for the given source.
func NewListenerMap(source any) *ListenerMap {
	return &ListenerMap{
		source:    source,
		listeners: make(map[string][]*Listener),
	}
}

// Add returns the live listener for (typ, cb, capture, scope), creating
// one if none exists. Registering the same identity twice yields the
// existing record: an existing on-every-call record is never promoted
// to single-use, but a single-use record is downgraded when the new
// registration is not single-use. The second return reports whether a
// new record was created.
func (m *ListenerMap) Add(typ string, cb callback, capture bool, scope any, once bool) (*Listener, bool) {
	if l := m.find(typ, cb, capture, scope); l != nil {
		if !once {
			l.Once = false
		}
		return l, false
	}
	l := &Listener{
		Key:     reserveKey(),
		Type:    typ,
		Capture: capture,
		Once:    once,
		Scope:   scope,
		Source:  m.source,
		cb:      cb,
	}
	m.listeners[typ] = append(m.listeners[typ], l)
	m.count++
	return l, true
}

// Remove detaches the live listener matching (typ, cb, capture, scope)
// and returns it, or nil when no such listener exists.
func (m *ListenerMap) Remove(typ string, cb callback, capture bool, scope any) *Listener {
	list := m.listeners[typ]
	for i, l := range list {
		if !l.removed && l.Capture == capture && l.Scope == scope && l.cb.equal(cb) {
			m.detach(typ, i)
			return l
		}
	}
	return nil
}

// RemoveByKey detaches the listener with the given key. Returns false
// when the listener is not in this map or already removed.
func (m *ListenerMap) RemoveByKey(target *Listener) bool {
	if target == nil || target.removed {
		return false
	}
	list := m.listeners[target.Type]
	for i, l := range list {
		if l == target {
			m.detach(target.Type, i)
			return true
		}
	}
	return false
}

func (m *ListenerMap) detach(typ string, i int) {
	list := m.listeners[typ]
	list[i].markRemoved()
	m.listeners[typ] = append(list[:i], list[i+1:]...)
	if len(m.listeners[typ]) == 0 {
		delete(m.listeners, typ)
	}
	m.count--
}

// Listeners returns a snapshot of the live listeners for (typ, capture)
// in registration order. Mutating the map during iteration of the
// snapshot does not affect the snapshot.
func (m *ListenerMap) Listeners(typ string, capture bool) []*Listener {
	var out []*Listener
	for _, l := range m.listeners[typ] {
		if !l.removed && l.Capture == capture {
			out = append(out, l)
		}
	}
	return out
}

// Get returns the live listener matching the identity tuple, or nil.
func (m *ListenerMap) Get(typ string, cb callback, capture bool, scope any) *Listener {
	return m.find(typ, cb, capture, scope)
}

func (m *ListenerMap) find(typ string, cb callback, capture bool, scope any) *Listener {
	for _, l := range m.listeners[typ] {
		if !l.removed && l.Capture == capture && l.Scope == scope && l.cb.equal(cb) {
			return l
		}
	}
	return nil
}

// BucketCount returns the number of live listeners for (typ, capture).
func (m *ListenerMap) BucketCount(typ string, capture bool) int {
	n := 0
	for _, l := range m.listeners[typ] {
		if !l.removed && l.Capture == capture {
			n++
		}
	}
	return n
}

// Count returns the number of live listeners across all types.
func (m *ListenerMap) Count() int {
	return m.count
}

// Empty reports whether the map holds no live listeners. An empty map
// is eligible for removal from its source.
func (m *ListenerMap) Empty() bool {
	return m.count == 0
}

// RemoveAllType detaches every live listener for typ, returning how
// many were removed.
func (m *ListenerMap) RemoveAllType(typ string) int {
	list := m.listeners[typ]
	for _, l := range list {
		l.markRemoved()
	}
	delete(m.listeners, typ)
	m.count -= len(list)
	return len(list)
}

// Types returns the event types that currently have live listeners.
func (m *ListenerMap) Types() []string {
	out := make([]string, 0, len(m.listeners))
	for typ := range m.listeners {
		out = append(out, typ)
	}
	return out
}
