// Package interaction implements the angle selection model: the input event
// bus, the shared selected angle, the drag gesture controller and the text
// angle editor.
//
// Everything here runs on the UI thread. Handlers are invoked synchronously,
// one event at a time, in the order the events were published.
package interaction

// EventKind identifies an input event.
type EventKind int

const (
	EventPointerDown EventKind = iota + 1
	EventPointerMove
	EventPointerUp
	EventPointerLeave
	EventKeyDown
	EventKeyUp
	EventTextInput
)

var eventKindNames = map[EventKind]string{
	EventPointerDown:  "pointer-down",
	EventPointerMove:  "pointer-move",
	EventPointerUp:    "pointer-up",
	EventPointerLeave: "pointer-leave",
	EventKeyDown:      "key-down",
	EventKeyUp:        "key-up",
	EventTextInput:    "text-input",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Key is a platform independent key code.
type Key int

const (
	KeyOther Key = iota
	KeyShift
	KeyAlt
	KeyCtrl
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyTab
	KeyF12
)

// IsModifier reports whether the key is Shift, Alt or Ctrl.
func (k Key) IsModifier() bool {
	return k == KeyShift || k == KeyAlt || k == KeyCtrl
}

// ParseModifier maps a config name to a modifier key.
func ParseModifier(name string) (Key, bool) {
	switch name {
	case "shift":
		return KeyShift, true
	case "alt", "option":
		return KeyAlt, true
	case "ctrl", "control":
		return KeyCtrl, true
	}
	return KeyOther, false
}

// Event is a pointer, keyboard or text input event in surface coordinates.
type Event struct {
	Kind EventKind
	X, Y float64 // pointer position, pointer events only
	Key  Key     // key events only
	Name string  // lower-case key name for KeyOther, e.g. "m"
	Text string  // text input events only
}

// Handler processes an event and reports whether it consumed it. A consumed
// event is not passed to later handlers.
type Handler func(Event) bool

// Source delivers input events to subscribers until they unsubscribe.
type Source interface {
	Subscribe(h Handler) (unsubscribe func())
}

type subscription struct {
	id int
	h  Handler
}

// Bus is a synchronous Source. Handlers run in subscription order.
type Bus struct {
	subs   []subscription
	nextID int
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler. The returned func removes it and is safe to
// call more than once.
func (b *Bus) Subscribe(h Handler) func() {
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, h: h})
	return func() {
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers an event to each handler until one consumes it.
func (b *Bus) Publish(e Event) bool {
	// Handlers may unsubscribe while the event is being dispatched.
	subs := append([]subscription(nil), b.subs...)
	for _, s := range subs {
		if s.h(e) {
			return true
		}
	}
	return false
}

// Len returns the number of subscribed handlers.
func (b *Bus) Len() int {
	return len(b.subs)
}
