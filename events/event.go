package events

// EventPhase represents the phase of event dispatch.
type EventPhase int

const (
	EventPhaseNone      EventPhase = 0
	EventPhaseCapturing EventPhase = 1
	EventPhaseAtTarget  EventPhase = 2
	EventPhaseBubbling  EventPhase = 3
)

// String returns the string representation of the phase.
func (p EventPhase) String() string {
	switch p {
	case EventPhaseCapturing:
		return "CAPTURING_PHASE"
	case EventPhaseAtTarget:
		return "AT_TARGET"
	case EventPhaseBubbling:
		return "BUBBLING_PHASE"
	default:
		return "NONE"
	}
}

// Event is the base event delivered to listeners. Target and Type are
// fixed at construction; CurrentTarget and Phase are updated by the
// dispatch loop as propagation proceeds.
type Event struct {
	Type          string
	Target        any
	CurrentTarget any
	Phase         EventPhase
	Bubbles       bool
	Cancelable    bool

	// DefaultPrevented reports whether PreventDefault has been called.
	DefaultPrevented bool

	propagationStopped bool
}

// StopPropagation stops further propagation of the current dispatch.
// Listeners later in the current bucket and in later phases do not run.
// Future dispatches of the same type are unaffected.
func (e *Event) StopPropagation() {
	e.propagationStopped = true
}

// PropagationStopped reports whether StopPropagation has been called.
func (e *Event) PropagationStopped() bool {
	return e.propagationStopped
}

// PreventDefault marks the event's default action as suppressed. It
// does not stop propagation.
func (e *Event) PreventDefault() {
	e.DefaultPrevented = true
}

// BrowserEvent is the normalized form of a raw host event. Input-specific
// fields are populated by Normalize for pointer, key, and touch events.
type BrowserEvent struct {
	Event

	ClientX, ClientY int
	ScreenX, ScreenY int
	OffsetX, OffsetY int

	Button   int
	Key      string
	KeyCode  int
	CharCode int

	CtrlKey, AltKey, ShiftKey, MetaKey bool

	RelatedTarget any
	State         any

	raw *RawEvent
}

// Raw returns the underlying raw host event, or nil for synthetic
// events that did not originate from the host.
func (e *BrowserEvent) Raw() *RawEvent {
	return e.raw
}

// PreventDefault marks the event as suppressed and forwards the
// suppression to the host. On hosts without native suppression the
// legacy return-value field is cleared instead, and control/function
// key codes are neutralized so the host does not fault on them.
func (e *BrowserEvent) PreventDefault() {
	e.Event.PreventDefault()
	raw := e.raw
	if raw == nil {
		return
	}
	if raw.PreventDefault != nil {
		raw.PreventDefault()
		return
	}
	raw.ReturnValue = false
	if raw.CtrlKey || (raw.KeyCode >= 112 && raw.KeyCode <= 123) {
		raw.KeyCode = -1
	}
}

// StopPropagation stops the current dispatch and forwards the stop to
// the host when it supports one natively.
func (e *BrowserEvent) StopPropagation() {
	e.Event.StopPropagation()
	if e.raw != nil && e.raw.StopPropagation != nil {
		e.raw.StopPropagation()
	}
}
