package interaction

import (
	"math"

	"github.com/Faultbox/unitcircle/pkg/trig"
)

// Origin tells where a selected angle change came from.
type Origin int

const (
	OriginExternal Origin = iota
	OriginDrag
	OriginEditor
)

func (o Origin) String() string {
	switch o {
	case OriginDrag:
		return "drag"
	case OriginEditor:
		return "editor"
	default:
		return "external"
	}
}

// Change describes a new selected angle.
type Change struct {
	Angle   float64 // degrees in [0, 360)
	Visible bool
	Origin  Origin
}

// FromDrag reports whether the change came from a drag gesture.
func (c Change) FromDrag() bool {
	return c.Origin == OriginDrag
}

// Listener is notified after the selection changed.
type Listener func(Change)

type listenerEntry struct {
	id int
	fn Listener
}

// Selection is the single source of truth for the selected angle and the
// visibility of the angle selector.
type Selection struct {
	angle     float64
	visible   bool
	listeners []listenerEntry
	nextID    int
}

// NewSelection creates a hidden selection at the given angle.
func NewSelection(initial float64) *Selection {
	if math.IsNaN(initial) || math.IsInf(initial, 0) {
		initial = 0
	}
	return &Selection{angle: trig.Normalize(initial)}
}

// Angle returns the selected angle in degrees.
func (s *Selection) Angle() float64 {
	return s.angle
}

// Visible reports whether the selector is shown.
func (s *Selection) Visible() bool {
	return s.visible
}

// Set stores a new angle and notifies listeners if anything changed.
// Visibility is sticky: once shown, Set never hides the selector.
func (s *Selection) Set(angle float64, visible bool, origin Origin) bool {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return false
	}
	angle = trig.Normalize(angle)
	visible = visible || s.visible
	if angle == s.angle && visible == s.visible {
		return false
	}
	s.angle = angle
	s.visible = visible
	s.notify(origin)
	return true
}

// Hide hides the selector, keeping the angle.
func (s *Selection) Hide() {
	if !s.visible {
		return
	}
	s.visible = false
	s.notify(OriginExternal)
}

// Subscribe registers a change listener. The returned func removes it.
func (s *Selection) Subscribe(fn Listener) func() {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Selection) notify(origin Origin) {
	c := Change{Angle: s.angle, Visible: s.visible, Origin: origin}
	for _, l := range append([]listenerEntry(nil), s.listeners...) {
		l.fn(c)
	}
}
