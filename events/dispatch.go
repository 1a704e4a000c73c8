package events

// dispatch is the trampoline body for one (source, typ, capture)
// bucket. It normalizes the raw event once, then either fires the
// bucket directly (the host already ran the propagation walk) or
// simulates the full capture/bubble walk from the target's ancestor
// chain.
//
// The return value is the aggregate "was not cancelled" signal: the
// logical AND of every callback's result and the event's non-prevented
// state.
func (r *Registry) dispatch(source any, typ string, capture bool, raw *RawEvent) bool {
	if raw == nil {
		return true
	}
	if raw.Target == nil {
		raw.Target = source
	}

	if r.platform.SupportsNativeCapture() {
		e := Normalize(raw)
		e.CurrentTarget = source
		if source == e.Target {
			e.Phase = EventPhaseAtTarget
		} else if capture {
			e.Phase = EventPhaseCapturing
		} else {
			e.Phase = EventPhaseBubbling
		}
		return r.fireBucket(source, typ, capture, e)
	}

	return r.simulate(typ, raw)
}

// Dispatch runs the full capture/bubble walk for raw at target without
// involving the host. It is the entry point for synthetic events; the
// return value follows the same aggregate rule as host dispatch.
func (r *Registry) Dispatch(target any, raw *RawEvent) bool {
	if raw == nil || raw.Type == "" {
		return true
	}
	if raw.Target == nil {
		raw.Target = target
	}
	return r.simulate(raw.Type, raw)
}

// simulate walks the target's ancestor chain through both phases.
func (r *Registry) simulate(typ string, raw *RawEvent) bool {
	// Legacy hosts re-deliver the same raw event at every ancestor
	// while bubbling; the walk below already covered them all.
	if raw.dispatched {
		return raw.ReturnValue
	}
	raw.dispatched = true

	e := Normalize(raw)
	chain := ancestorChain(e.Target)
	ret := true

	// Capture phase: outermost ancestor down to the target.
	for i := len(chain) - 1; i >= 0 && !e.propagationStopped; i-- {
		e.CurrentTarget = chain[i]
		if i == 0 {
			e.Phase = EventPhaseAtTarget
		} else {
			e.Phase = EventPhaseCapturing
		}
		ret = r.fireBucket(chain[i], typ, true, e) && ret
	}

	// Bubble phase: target back up to the outermost ancestor.
	for i := 0; i < len(chain) && !e.propagationStopped; i++ {
		e.CurrentTarget = chain[i]
		if i == 0 {
			e.Phase = EventPhaseAtTarget
		} else {
			e.Phase = EventPhaseBubbling
		}
		ret = r.fireBucket(chain[i], typ, false, e) && ret
	}
	return ret
}

// ancestorChain returns target followed by its propagation ancestors,
// innermost first.
func ancestorChain(target any) []any {
	var chain []any
	for node := target; node != nil; {
		chain = append(chain, node)
		p, ok := node.(Propagator)
		if !ok {
			break
		}
		node = p.ParentEventTarget()
	}
	return chain
}

// fireBucket invokes the live listeners for (source, typ, capture) in
// registration order against e.
func (r *Registry) fireBucket(source any, typ string, capture bool, e *BrowserEvent) bool {
	r.mu.Lock()
	var snapshot []*Listener
	if st := r.sources[source]; st != nil {
		snapshot = st.m.Listeners(typ, capture)
	}
	r.mu.Unlock()
	return fireListeners(snapshot, e, r.UnlistenByKey)
}

// fireListeners runs a snapshot of listeners against e. Single-use
// listeners are consumed through remove before their callback runs, so
// a re-registration from inside the callback creates a fresh record
// that does not fire during this dispatch. Listeners removed earlier in
// the same dispatch are skipped.
func fireListeners(snapshot []*Listener, e *BrowserEvent, remove func(*Listener) bool) bool {
	ret := true
	for _, l := range snapshot {
		if e.propagationStopped {
			break
		}
		if l.Removed() {
			continue
		}
		cb := l.cb
		if l.Once {
			remove(l)
		}
		ok := cb.invoke(e)
		if !ok {
			e.PreventDefault()
		}
		ret = ret && ok && !e.DefaultPrevented
	}
	return ret
}
