package view

import (
	"github.com/Faultbox/unitcircle/pkg/math"
)

// Layout places the circle and the readout panel on the drawing surface.
// The zero Layout has no circle.
type Layout struct {
	CenterX, CenterY, Radius float64
	Width, Height            int

	Panel Rect // readout panel, empty when not shown
}

// NewLayout centres the largest circle that leaves margin pixels free on
// every side of a width x height surface.
func NewLayout(width, height int, margin float64) Layout {
	l := Layout{Width: width, Height: height}
	if width <= 0 || height <= 0 {
		return l
	}
	l.fit(0, float64(width), margin)
	return l
}

// NewPanelLayout reserves a panel strip on the right of the surface and fits
// the circle into the remaining area.
func NewPanelLayout(width, height int, margin, panelWidth float64) Layout {
	l := Layout{Width: width, Height: height}
	if width <= 0 || height <= 0 {
		return l
	}
	if panelWidth <= 0 || panelWidth >= float64(width) {
		l.fit(0, float64(width), margin)
		return l
	}
	area := float64(width) - panelWidth
	l.Panel = Rect{X: area, Y: 0, W: panelWidth, H: float64(height)}
	l.fit(0, area, margin)
	return l
}

func (l *Layout) fit(x0, w, margin float64) {
	h := float64(l.Height)
	r := min(w, h)/2 - margin
	if r <= 0 {
		return
	}
	l.CenterX = x0 + w/2
	l.CenterY = h / 2
	l.Radius = r
}

// Circle reports the circle geometry for hit testing.
func (l Layout) Circle() (cx, cy, radius float64, ok bool) {
	return l.CenterX, l.CenterY, l.Radius, l.Radius > 0
}

// Point returns the surface position at angle degrees, offset pixels
// outside the circle (negative offsets are inside).
func (l Layout) Point(deg, offset float64) math.Vec2 {
	return math.V2(l.CenterX, l.CenterY).Polar(deg, l.Radius+offset)
}

// Scale is the radius relative to the reference size of 250 pixels. Label
// offsets grow with it.
func (l Layout) Scale() float64 {
	return l.Radius / 250
}

const (
	panelPad   = 18
	lineHeight = 26
	fieldRow   = 9 // row of the editor field inside the panel
)

// EditorField is the rectangle of the angle text field inside the panel.
func (l Layout) EditorField() Rect {
	if l.Panel.Empty() {
		return Rect{}
	}
	return Rect{
		X: l.Panel.X + panelPad,
		Y: l.Panel.Y + panelPad + fieldRow*lineHeight,
		W: l.Panel.W - 2*panelPad,
		H: lineHeight + 6,
	}
}

// AngleReadout is the rectangle of the large angle value; clicking it
// starts editing.
func (l Layout) AngleReadout() Rect {
	if l.Panel.Empty() {
		return Rect{}
	}
	return Rect{
		X: l.Panel.X + panelPad,
		Y: l.Panel.Y + panelPad + lineHeight,
		W: l.Panel.W - 2*panelPad,
		H: lineHeight,
	}
}

// Controls is the area below the readout left for interactive widgets.
func (l Layout) Controls() Rect {
	if l.Panel.Empty() {
		return Rect{}
	}
	top := l.Panel.Y + panelPad + (fieldRow+2)*lineHeight
	return Rect{
		X: l.Panel.X + panelPad,
		Y: top,
		W: l.Panel.W - 2*panelPad,
		H: max(0, l.Panel.Y+l.Panel.H-panelPad-top),
	}
}
