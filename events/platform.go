package events

import "sync"

// Platform is the capability interface isolating the dispatch core from
// the host. A fake Platform makes the core fully testable.
type Platform interface {
	// SupportsNativeCapture reports whether the host runs the
	// capture/bubble walk itself. When false the dispatcher simulates
	// both phases from the trampoline.
	SupportsNativeCapture() bool

	// SupportsPassive reports whether the host honors the passive
	// registration hint.
	SupportsPassive() bool

	// Register installs proxy as the single low-level registration for
	// (source, typ, capture) and returns an opaque handle for removal.
	Register(source any, typ string, capture, passive bool, proxy func(*RawEvent) bool) (any, error)

	// Unregister removes a registration installed by Register.
	Unregister(source any, typ string, capture bool, handle any) error
}

// legacyNames maps event types whose legacy attach name is not simply
// "on" + type. Legacy hosts deliver focus and blur only through their
// in/out variants.
var legacyNames = map[string]string{
	"focus": "onfocusin",
	"blur":  "onfocusout",
}

// LegacyEventName returns the attach-style name for an event type.
func LegacyEventName(typ string) string {
	if n, ok := legacyNames[typ]; ok {
		return n
	}
	return "on" + typ
}

// HostPlatform adapts a host's registration hooks to the Platform
// interface. Hosts set whichever hooks they have: NativeAdd/NativeRemove
// for the modern mechanism, LegacyAttach/LegacyDetach for the legacy
// one. Registration prefers the native mechanism and falls back to the
// legacy one using the translated event name; with neither hook set,
// Register fails with ErrNoRegistrar.
type HostPlatform struct {
	NativeAdd    func(source any, typ string, capture, passive bool, proxy func(*RawEvent) bool) any
	NativeRemove func(source any, typ string, capture bool, handle any)

	LegacyAttach func(source any, legacyName string, proxy func(*RawEvent) bool) any
	LegacyDetach func(source any, legacyName string, handle any)

	// NativeCapture reports whether the native mechanism performs the
	// capture/bubble walk itself.
	NativeCapture bool

	// PassiveProbe performs the host's one-time passive-option feature
	// detection. Nil means the host has no passive support.
	PassiveProbe func() bool

	passiveOnce sync.Once
	passive     bool
}

// SupportsNativeCapture implements Platform.
func (p *HostPlatform) SupportsNativeCapture() bool {
	return p.NativeAdd != nil && p.NativeCapture
}

// SupportsPassive implements Platform. The probe runs at most once per
// process; its result is cached.
func (p *HostPlatform) SupportsPassive() bool {
	p.passiveOnce.Do(func() {
		if p.NativeAdd != nil && p.PassiveProbe != nil {
			p.passive = p.PassiveProbe()
		}
	})
	return p.passive
}

// Register implements Platform.
func (p *HostPlatform) Register(source any, typ string, capture, passive bool, proxy func(*RawEvent) bool) (any, error) {
	if p.NativeAdd != nil {
		return p.NativeAdd(source, typ, capture, passive, proxy), nil
	}
	if p.LegacyAttach != nil {
		// Legacy attach has no capture or passive notion; the capture
		// flag is honored by the simulated walk instead.
		return p.LegacyAttach(source, LegacyEventName(typ), proxy), nil
	}
	return nil, ErrNoRegistrar
}

// Unregister implements Platform. It mirrors whichever mechanism
// Register used.
func (p *HostPlatform) Unregister(source any, typ string, capture bool, handle any) error {
	if p.NativeAdd != nil {
		if p.NativeRemove != nil {
			p.NativeRemove(source, typ, capture, handle)
		}
		return nil
	}
	if p.LegacyAttach != nil {
		if p.LegacyDetach != nil {
			p.LegacyDetach(source, LegacyEventName(typ), handle)
		}
		return nil
	}
	return ErrNoRegistrar
}
