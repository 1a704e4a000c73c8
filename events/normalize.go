package events

// Mouse event types with related-target inference.
const (
	typeMouseOver = "mouseover"
	typeMouseOut  = "mouseout"
)

// Normalize wraps a raw host event in a BrowserEvent, resolving every
// field defensively so downstream code never sees host differences.
// It is called once per dispatch.
func Normalize(raw *RawEvent) *BrowserEvent {
	e := &BrowserEvent{
		Event: Event{
			Type:    raw.Type,
			Target:  raw.Target,
			Bubbles: true,
		},
		raw: raw,
	}

	if len(raw.ChangedTouches) > 0 {
		// Touch-originated events carry their coordinates on the first
		// changed touch, not the top-level event.
		t := raw.ChangedTouches[0]
		e.ClientX, e.ClientY = t.ClientX, t.ClientY
		e.ScreenX, e.ScreenY = t.ScreenX, t.ScreenY
	} else {
		e.ClientX = intOr(raw.ClientX, raw.PageX)
		e.ClientY = intOr(raw.ClientY, raw.PageY)
		e.ScreenX, e.ScreenY = raw.ScreenX, raw.ScreenY
	}
	e.OffsetX = intOr(raw.OffsetX, raw.LayerX)
	e.OffsetY = intOr(raw.OffsetY, raw.LayerY)

	e.Button = raw.Button
	e.Key = raw.Key
	e.KeyCode = raw.KeyCode
	e.CharCode = raw.CharCode
	e.CtrlKey, e.AltKey = raw.CtrlKey, raw.AltKey
	e.ShiftKey, e.MetaKey = raw.ShiftKey, raw.MetaKey
	e.State = raw.State

	e.RelatedTarget = resolveRelatedTarget(raw)

	raw.ReturnValue = true
	return e
}

// resolveRelatedTarget picks the related target, falling back to the
// legacy from/to element pair, and drops targets the host refuses to
// let us inspect.
func resolveRelatedTarget(raw *RawEvent) any {
	related := raw.RelatedTarget
	if related == nil {
		switch raw.Type {
		case typeMouseOver:
			related = raw.FromElement
		case typeMouseOut:
			related = raw.ToElement
		}
	}
	if related != nil && raw.Probe != nil {
		if err := raw.Probe(related); err != nil {
			return nil
		}
	}
	return related
}
