package events

import "testing"

func TestRegistryDelegatesToListenable(t *testing.T) {
	p := newFakePlatform(true)
	r := NewRegistry(p)
	target := NewTarget()

	calls := 0
	l, err := r.Listen(target, "change", func(*BrowserEvent) bool {
		calls++
		return true
	}, nil)
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}
	if target.ListenerCount() != 1 {
		t.Errorf("Expected the record to live on the target, count=%d", target.ListenerCount())
	}
	if r.LiveCount() != 0 || p.added != 0 {
		t.Error("Listenable registration must not touch the platform")
	}

	target.Dispatch("change")
	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}

	if !r.UnlistenByKey(l) {
		t.Fatal("UnlistenByKey should delegate to the target")
	}
	if target.ListenerCount() != 0 {
		t.Error("Record should be gone from the target")
	}
}

func TestTargetParentChainDispatch(t *testing.T) {
	grandparent := NewTarget()
	parent := NewTarget()
	child := NewTarget()
	parent.SetParent(grandparent)
	child.SetParent(parent)

	var got []string
	record := func(label string) ListenerFunc {
		return func(e *BrowserEvent) bool {
			got = append(got, label)
			return true
		}
	}
	grandparent.Listen("change", record("gp-capture"), &ListenOptions{Capture: true})
	grandparent.Listen("change", record("gp-bubble"), nil)
	parent.Listen("change", record("parent-bubble"), nil)
	child.Listen("change", record("child"), nil)

	child.Dispatch("change")
	want := []string{"gp-capture", "child", "parent-bubble", "gp-bubble"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestTargetListenOnce(t *testing.T) {
	target := NewTarget()
	calls := 0
	target.ListenOnce("load", func(*BrowserEvent) bool {
		calls++
		return true
	}, nil)

	target.Dispatch("load")
	target.Dispatch("load")
	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
	if target.ListenerCount() != 0 {
		t.Errorf("Expected 0 listeners after consumption, got %d", target.ListenerCount())
	}
}

func TestTargetDispatchAggregation(t *testing.T) {
	target := NewTarget()
	target.Listen("submit", func(e *BrowserEvent) bool {
		e.PreventDefault()
		return true
	}, nil)
	if target.Dispatch("submit") {
		t.Error("preventDefault should make Dispatch return false")
	}
}

func TestTargetStopPropagation(t *testing.T) {
	parent := NewTarget()
	child := NewTarget()
	child.SetParent(parent)

	parentCalls := 0
	parent.Listen("change", func(*BrowserEvent) bool {
		parentCalls++
		return true
	}, nil)
	child.Listen("change", func(e *BrowserEvent) bool {
		e.StopPropagation()
		return true
	}, nil)

	child.Dispatch("change")
	if parentCalls != 0 {
		t.Errorf("Stop at the child must prevent bubbling to the parent, got %d calls", parentCalls)
	}
}

func TestTargetEmptyType(t *testing.T) {
	target := NewTarget()
	if _, err := target.Listen("", func(*BrowserEvent) bool { return true }, nil); err != ErrEmptyType {
		t.Errorf("Expected ErrEmptyType, got %v", err)
	}
}
