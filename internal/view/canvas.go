// Package view draws the unit circle and the selected angle readout onto an
// abstract canvas. The same painter feeds the OpenGL window and offscreen
// PNG export.
package view

import "image/color"

// Canvas is a 2D drawing surface in pixel coordinates, Y growing downwards.
type Canvas interface {
	Line(x1, y1, x2, y2, width float64, c color.Color)
	Circle(cx, cy, r, width float64, c color.Color) // stroked
	Disc(cx, cy, r float64, c color.Color)          // filled
	Rect(x, y, w, h float64, c color.Color)         // filled

	// Text draws s anchored at (x, y). ax and ay select the anchor inside
	// the text box: 0 is left/top, 0.5 centre, 1 right/bottom.
	Text(s string, x, y, ax, ay float64, c color.Color)
	TextSize(s string) (w, h float64)
}

// Rect is an axis aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

func strokeRect(c Canvas, r Rect, width float64, col color.Color) {
	c.Rect(r.X, r.Y, r.W, width, col)
	c.Rect(r.X, r.Y+r.H-width, r.W, width, col)
	c.Rect(r.X, r.Y+width, width, r.H-2*width, col)
	c.Rect(r.X+r.W-width, r.Y+width, width, r.H-2*width, col)
}
