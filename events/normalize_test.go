package events

import (
	"errors"
	"testing"
)

func TestNormalizeClientFallsBackToPage(t *testing.T) {
	raw := &RawEvent{Type: "mousedown", PageX: 40, PageY: 50}
	e := Normalize(raw)
	if e.ClientX != 40 || e.ClientY != 50 {
		t.Errorf("Expected client (40, 50), got (%d, %d)", e.ClientX, e.ClientY)
	}
}

func TestNormalizeClientPreferred(t *testing.T) {
	raw := &RawEvent{Type: "mousedown", ClientX: Int(7), ClientY: Int(8), PageX: 40, PageY: 50}
	e := Normalize(raw)
	if e.ClientX != 7 || e.ClientY != 8 {
		t.Errorf("Expected client (7, 8), got (%d, %d)", e.ClientX, e.ClientY)
	}
}

func TestNormalizeOffsetFallsBackToLayer(t *testing.T) {
	raw := &RawEvent{Type: "mousedown", LayerX: 3, LayerY: 4}
	e := Normalize(raw)
	if e.OffsetX != 3 || e.OffsetY != 4 {
		t.Errorf("Expected offset (3, 4), got (%d, %d)", e.OffsetX, e.OffsetY)
	}
}

func TestNormalizeTouchCoordinates(t *testing.T) {
	raw := &RawEvent{
		Type:           "touchstart",
		ClientX:        Int(99),
		ClientY:        Int(99),
		ChangedTouches: []Touch{{ClientX: 10, ClientY: 20, ScreenX: 1, ScreenY: 2}},
	}
	e := Normalize(raw)
	if e.ClientX != 10 || e.ClientY != 20 {
		t.Errorf("Expected client (10, 20) from first changed touch, got (%d, %d)", e.ClientX, e.ClientY)
	}
	if e.ScreenX != 1 || e.ScreenY != 2 {
		t.Errorf("Expected screen (1, 2) from first changed touch, got (%d, %d)", e.ScreenX, e.ScreenY)
	}
}

func TestNormalizeRelatedTargetInference(t *testing.T) {
	from, to := "from-el", "to-el"

	e := Normalize(&RawEvent{Type: "mouseover", FromElement: from, ToElement: to})
	if e.RelatedTarget != from {
		t.Errorf("mouseover: expected related target %q, got %v", from, e.RelatedTarget)
	}

	e = Normalize(&RawEvent{Type: "mouseout", FromElement: from, ToElement: to})
	if e.RelatedTarget != to {
		t.Errorf("mouseout: expected related target %q, got %v", to, e.RelatedTarget)
	}

	// A native related target wins over the legacy pair.
	e = Normalize(&RawEvent{Type: "mouseover", RelatedTarget: "native", FromElement: from})
	if e.RelatedTarget != "native" {
		t.Errorf("Expected native related target, got %v", e.RelatedTarget)
	}
}

func TestNormalizeRelatedTargetProbeFault(t *testing.T) {
	raw := &RawEvent{
		Type:          "mouseover",
		RelatedTarget: "cross-document",
		Probe: func(any) error {
			return errors.New("access denied")
		},
	}
	e := Normalize(raw)
	if e.RelatedTarget != nil {
		t.Errorf("Expected related target to be treated as unknown, got %v", e.RelatedTarget)
	}
}

func TestPreventDefaultNative(t *testing.T) {
	called := false
	raw := &RawEvent{Type: "click", PreventDefault: func() { called = true }}
	e := Normalize(raw)
	e.PreventDefault()
	if !e.DefaultPrevented {
		t.Error("Expected DefaultPrevented to be set")
	}
	if !called {
		t.Error("Expected native suppression hook to be called")
	}
	if !raw.ReturnValue {
		t.Error("Native path must not clear the legacy return value")
	}
}

func TestPreventDefaultLegacy(t *testing.T) {
	raw := &RawEvent{Type: "keydown", KeyCode: 13}
	e := Normalize(raw)
	if !raw.ReturnValue {
		t.Fatal("Normalize should prime the legacy return value to true")
	}
	e.PreventDefault()
	if !e.DefaultPrevented {
		t.Error("Expected DefaultPrevented to be set")
	}
	if raw.ReturnValue {
		t.Error("Expected legacy return value to become false")
	}
	if raw.KeyCode != 13 {
		t.Errorf("Plain key code must not be neutralized, got %d", raw.KeyCode)
	}
}

func TestPreventDefaultLegacyNeutralizesQuirkKeys(t *testing.T) {
	tests := []struct {
		name string
		raw  *RawEvent
	}{
		{"ctrl key", &RawEvent{Type: "keydown", KeyCode: 67, CtrlKey: true}},
		{"function key", &RawEvent{Type: "keydown", KeyCode: 115}},
	}
	for _, tt := range tests {
		e := Normalize(tt.raw)
		e.PreventDefault()
		if tt.raw.KeyCode != -1 {
			t.Errorf("%s: expected key code -1, got %d", tt.name, tt.raw.KeyCode)
		}
	}
}

func TestStopPropagationForwardsToHost(t *testing.T) {
	called := false
	raw := &RawEvent{Type: "click", StopPropagation: func() { called = true }}
	e := Normalize(raw)
	e.StopPropagation()
	if !e.PropagationStopped() {
		t.Error("Expected propagation to be stopped")
	}
	if !called {
		t.Error("Expected host stop hook to be called")
	}
}
