package events

import "errors"

// Registration errors. These indicate caller or host misconfiguration
// and are returned, never recovered from internally.
var (
	// ErrEmptyType is returned when a listener is registered with an
	// empty event type.
	ErrEmptyType = errors.New("events: empty event type")

	// ErrBadCallback is returned when the callback argument is neither a
	// ListenerFunc nor a Handler.
	ErrBadCallback = errors.New("events: callback must be a ListenerFunc or a Handler")

	// ErrNoRegistrar is returned when the host platform exposes neither
	// a native nor a legacy registration mechanism.
	ErrNoRegistrar = errors.New("events: host platform exposes no registration mechanism")
)
