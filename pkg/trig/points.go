// Package trig provides the unit circle reference data, angle conversion,
// snapping and angle expression parsing.
package trig

import "strings"

// Undefined is the display value of a tangent at 90° and 270°.
const Undefined = "undefined"

// ReferencePoint is a canonical angle on the unit circle with exact values.
type ReferencePoint struct {
	Angle        int    // degrees in [0, 360)
	X            string // exact cosine
	Y            string // exact sine
	Tan          string // exact tangent or Undefined
	DegreesLabel string
	RadiansLabel string
}

// referencePoints is sorted by angle and never modified.
var referencePoints = []ReferencePoint{
	// First quadrant
	{Angle: 0, X: "1", Y: "0", Tan: "0", DegreesLabel: "0°", RadiansLabel: "0"},
	{Angle: 30, X: "√3/2", Y: "1/2", Tan: "1/√3", DegreesLabel: "30°", RadiansLabel: "π/6"},
	{Angle: 45, X: "√2/2", Y: "√2/2", Tan: "1", DegreesLabel: "45°", RadiansLabel: "π/4"},
	{Angle: 60, X: "1/2", Y: "√3/2", Tan: "√3", DegreesLabel: "60°", RadiansLabel: "π/3"},
	{Angle: 90, X: "0", Y: "1", Tan: Undefined, DegreesLabel: "90°", RadiansLabel: "π/2"},

	// Second quadrant
	{Angle: 120, X: "-1/2", Y: "√3/2", Tan: "-√3", DegreesLabel: "120°", RadiansLabel: "2π/3"},
	{Angle: 135, X: "-√2/2", Y: "√2/2", Tan: "-1", DegreesLabel: "135°", RadiansLabel: "3π/4"},
	{Angle: 150, X: "-√3/2", Y: "1/2", Tan: "-1/√3", DegreesLabel: "150°", RadiansLabel: "5π/6"},
	{Angle: 180, X: "-1", Y: "0", Tan: "0", DegreesLabel: "180°", RadiansLabel: "π"},

	// Third quadrant
	{Angle: 210, X: "-√3/2", Y: "-1/2", Tan: "1/√3", DegreesLabel: "210°", RadiansLabel: "7π/6"},
	{Angle: 225, X: "-√2/2", Y: "-√2/2", Tan: "1", DegreesLabel: "225°", RadiansLabel: "5π/4"},
	{Angle: 240, X: "-1/2", Y: "-√3/2", Tan: "√3", DegreesLabel: "240°", RadiansLabel: "4π/3"},
	{Angle: 270, X: "0", Y: "-1", Tan: Undefined, DegreesLabel: "270°", RadiansLabel: "3π/2"},

	// Fourth quadrant
	{Angle: 300, X: "1/2", Y: "-√3/2", Tan: "-√3", DegreesLabel: "300°", RadiansLabel: "5π/3"},
	{Angle: 315, X: "√2/2", Y: "-√2/2", Tan: "-1", DegreesLabel: "315°", RadiansLabel: "7π/4"},
	{Angle: 330, X: "√3/2", Y: "-1/2", Tan: "-1/√3", DegreesLabel: "330°", RadiansLabel: "11π/6"},
}

// Lookup returns the reference point for an integer angle in degrees.
func Lookup(angle int) (ReferencePoint, bool) {
	for _, p := range referencePoints {
		if p.Angle == angle {
			return p, true
		}
		if p.Angle > angle {
			break
		}
	}
	return ReferencePoint{}, false
}

// Angles returns the canonical angles in ascending order.
func Angles() []int {
	angles := make([]int, len(referencePoints))
	for i, p := range referencePoints {
		angles[i] = p.Angle
	}
	return angles
}

// Points returns a copy of the reference table in ascending angle order.
func Points() []ReferencePoint {
	points := make([]ReferencePoint, len(referencePoints))
	copy(points, referencePoints)
	return points
}

// IsAxis reports whether the angle lies on a coordinate axis.
func IsAxis(angle int) bool {
	return angle%90 == 0
}

// PlainRadians returns the radians label in the ASCII form accepted by
// ParseAngle, e.g. "2pi/3".
func (p ReferencePoint) PlainRadians() string {
	return strings.ReplaceAll(p.RadiansLabel, "π", "pi")
}
