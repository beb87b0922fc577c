// Package math provides small geometry helpers for screen-space work.
package math

import "math"

// Vec2 is a 2D point or vector in screen coordinates.
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the magnitude.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float64 {
	return v.Sub(other).Length()
}

// Polar returns the point at angle degrees and distance r from v, measured
// counter-clockwise with the Y axis growing downwards.
func (v Vec2) Polar(deg, r float64) Vec2 {
	rad := deg * math.Pi / 180
	return v.Add(Vec2{r * math.Cos(rad), -r * math.Sin(rad)})
}
