package events

// Touch holds the coordinates of one touch point.
type Touch struct {
	ClientX, ClientY int
	ScreenX, ScreenY int
}

// RawEvent is the event shape delivered by the host platform before
// normalization. Hosts populate whichever fields they have; pointer
// fields are nil when the host does not supply them, in which case
// Normalize falls back to the legacy equivalents (PageX/PageY for
// client coordinates, LayerX/LayerY for offset coordinates).
type RawEvent struct {
	Type   string
	Target any

	// RelatedTarget is the native related target. When nil, Normalize
	// infers it from FromElement/ToElement for mouseover/mouseout.
	RelatedTarget any
	FromElement   any
	ToElement     any

	ClientX, ClientY *int
	PageX, PageY     int
	OffsetX, OffsetY *int
	LayerX, LayerY   int
	ScreenX, ScreenY int

	Button   int
	Key      string
	KeyCode  int
	CharCode int

	CtrlKey, AltKey, ShiftKey, MetaKey bool

	// ChangedTouches, when non-empty, supplies the coordinates for
	// touch-originated events. Only the first entry is consulted.
	ChangedTouches []Touch

	// State carries host-specific payload (e.g. history state).
	State any

	// ReturnValue is the legacy suppression field. Normalize primes it
	// to true; a legacy PreventDefault clears it.
	ReturnValue bool

	// PreventDefault is the native suppression hook. Nil on hosts
	// without native suppression.
	PreventDefault func()

	// StopPropagation is the native propagation-stop hook, if any.
	StopPropagation func()

	// Probe verifies that a related target may be inspected. A non-nil
	// error (a cross-document access fault on some hosts) means the
	// related target is treated as unknown.
	Probe func(target any) error

	// dispatched marks a raw event whose simulated propagation has
	// already run, so bubble re-delivery at ancestors is ignored.
	dispatched bool
}

// intOr returns *v when present, otherwise the legacy fallback.
func intOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}

// Int is a convenience for building RawEvent pointer fields.
func Int(v int) *int {
	return &v
}
