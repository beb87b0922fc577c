package interaction

import "testing"

func TestBusOrderAndConsume(t *testing.T) {
	bus := NewBus()
	var calls []string

	bus.Subscribe(func(e Event) bool {
		calls = append(calls, "first")
		return e.Kind == EventKeyDown
	})
	bus.Subscribe(func(e Event) bool {
		calls = append(calls, "second")
		return false
	})

	if bus.Publish(Event{Kind: EventPointerMove}) {
		t.Error("pointer move should not be consumed")
	}
	if !bus.Publish(Event{Kind: EventKeyDown}) {
		t.Error("key down should be consumed")
	}

	want := []string{"first", "second", "first"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls[%d] = %s, want %s", i, calls[i], want[i])
		}
	}
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()
	count := 0
	unsub := bus.Subscribe(func(Event) bool {
		count++
		return false
	})
	other := bus.Subscribe(func(Event) bool { return false })

	bus.Publish(Event{Kind: EventPointerDown})
	unsub()
	unsub()
	bus.Publish(Event{Kind: EventPointerDown})

	if count != 1 {
		t.Errorf("handler called %d times, want 1", count)
	}
	if bus.Len() != 1 {
		t.Errorf("Len() = %d, want 1", bus.Len())
	}
	other()
	if bus.Len() != 0 {
		t.Errorf("Len() = %d, want 0", bus.Len())
	}
}

func TestBusUnsubscribeDuringDispatch(t *testing.T) {
	bus := NewBus()
	var unsub func()
	secondCalled := false
	unsub = bus.Subscribe(func(Event) bool {
		unsub()
		return false
	})
	bus.Subscribe(func(Event) bool {
		secondCalled = true
		return false
	})

	bus.Publish(Event{Kind: EventPointerUp})
	if !secondCalled {
		t.Error("second handler skipped after first unsubscribed itself")
	}
	if bus.Len() != 1 {
		t.Errorf("Len() = %d, want 1", bus.Len())
	}
}

func TestParseModifier(t *testing.T) {
	tests := map[string]Key{"shift": KeyShift, "alt": KeyAlt, "option": KeyAlt, "ctrl": KeyCtrl}
	for in, want := range tests {
		got, ok := ParseModifier(in)
		if !ok || got != want {
			t.Errorf("ParseModifier(%q) = %v, %v", in, got, ok)
		}
	}
	if _, ok := ParseModifier("meta"); ok {
		t.Error("ParseModifier(meta) should fail")
	}
	if !KeyAlt.IsModifier() || KeyEscape.IsModifier() {
		t.Error("IsModifier() wrong")
	}
}
