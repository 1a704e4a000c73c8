package events

import "sync"

// Target is an in-process event source that manages its own listeners
// instead of going through a shared registry: it implements Listenable,
// so Registry calls on a Target delegate here. Targets form their own
// parent chains for propagation, independent of any host platform, and
// their listeners are never platform registrations.
type Target struct {
	mu     sync.Mutex
	m      *ListenerMap
	parent *Target
}

// NewTarget creates a target with no parent and no listeners.
func NewTarget() *Target {
	t := &Target{}
	t.m = NewListenerMap(t)
	return t
}

// SetParent sets the target this one propagates to.
func (t *Target) SetParent(p *Target) {
	t.parent = p
}

// Parent returns the propagation parent, or nil.
func (t *Target) Parent() *Target {
	return t.parent
}

// ParentEventTarget implements Propagator.
func (t *Target) ParentEventTarget() any {
	if t.parent == nil {
		return nil
	}
	return t.parent
}

// Listen implements Listenable.
func (t *Target) Listen(typ string, callback any, opts *ListenOptions) (*Listener, error) {
	return t.listen(typ, callback, opts, false)
}

// ListenOnce implements Listenable.
func (t *Target) ListenOnce(typ string, callback any, opts *ListenOptions) (*Listener, error) {
	return t.listen(typ, callback, opts, true)
}

func (t *Target) listen(typ string, callback any, opts *ListenOptions, once bool) (*Listener, error) {
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
		scope = any(t)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	l, _ := t.m.Add(typ, cb, o.Capture, scope, o.Once)
	return l, nil
}

// Unlisten implements Listenable.
func (t *Target) Unlisten(typ string, callback any, opts *ListenOptions) bool {
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
		scope = any(t)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.m.Remove(typ, cb, o.Capture, scope) != nil
}

// UnlistenByKey implements Listenable.
func (t *Target) UnlistenByKey(l *Listener) bool {
	if l == nil || l.Removed() {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.m.RemoveByKey(l)
}

// ListenerCount returns the number of live listeners on this target.
func (t *Target) ListenerCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.m.Count()
}

// Dispatch constructs a synthetic event of the given type targeted at
// this target and runs the full capture/bubble walk over the parent
// chain. It returns the aggregate not-cancelled signal.
func (t *Target) Dispatch(typ string) bool {
	e := &BrowserEvent{Event: Event{Type: typ, Target: t, Bubbles: true}}
	return t.DispatchEvent(e)
}

// DispatchEvent propagates e through this target's parent chain:
// capture listeners from the outermost parent down to the target, then
// bubble listeners back up. e.Target is set to this target.
func (t *Target) DispatchEvent(e *BrowserEvent) bool {
	e.Target = t
	chain := ancestorChain(t)
	ret := true

	for i := len(chain) - 1; i >= 0 && !e.propagationStopped; i-- {
		e.CurrentTarget = chain[i]
		if i == 0 {
			e.Phase = EventPhaseAtTarget
		} else {
			e.Phase = EventPhaseCapturing
		}
		ret = fireTarget(chain[i], e, true) && ret
	}
	for i := 0; i < len(chain) && !e.propagationStopped; i++ {
		e.CurrentTarget = chain[i]
		if i == 0 {
			e.Phase = EventPhaseAtTarget
		} else {
			e.Phase = EventPhaseBubbling
		}
		ret = fireTarget(chain[i], e, false) && ret
	}
	return ret
}

// fireTarget fires one target's bucket for the event's type.
func fireTarget(node any, e *BrowserEvent, capture bool) bool {
	t, ok := node.(*Target)
	if !ok {
		return true
	}
	t.mu.Lock()
	snapshot := t.m.Listeners(e.Type, capture)
	t.mu.Unlock()
	return fireListeners(snapshot, e, t.UnlistenByKey)
}
