package trig

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit is the angle display mode.
type Unit int

const (
	Degrees Unit = iota
	Radians
)

func (u Unit) String() string {
	if u == Radians {
		return "radians"
	}
	return "degrees"
}

// Toggle returns the other unit.
func (u Unit) Toggle() Unit {
	if u == Radians {
		return Degrees
	}
	return Radians
}

// ParseUnit parses "degrees"/"deg" or "radians"/"rad".
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "degrees", "degree", "deg":
		return Degrees, nil
	case "radians", "radian", "rad":
		return Radians, nil
	}
	return Degrees, fmt.Errorf("unknown angle unit %q", s)
}

// FormatAngle formats an angle given in degrees for display in the unit.
// Reference angles use their exact radian labels.
func FormatAngle(angle float64, u Unit) string {
	rounded := RoundDegrees(angle)
	if u == Degrees {
		return fmt.Sprintf("%d°", rounded)
	}
	if p, ok := Lookup(rounded); ok {
		return p.RadiansLabel
	}
	return fixed(DegToRad(angle))
}

// Coordinates are the display strings of a point on the unit circle.
type Coordinates struct {
	X, Y, Tan string
	Exact     bool // values come from the reference table
}

// CoordinatesFor returns cos, sin and tan of the angle. Reference angles give
// exact symbolic values, any other angle a 3-decimal approximation.
func CoordinatesFor(angle float64) Coordinates {
	rounded := RoundDegrees(angle)
	if p, ok := Lookup(rounded); ok {
		return Coordinates{X: p.X, Y: p.Y, Tan: p.Tan, Exact: true}
	}

	rad := DegToRad(angle)
	c := Coordinates{
		X: fixed(math.Cos(rad)),
		Y: fixed(math.Sin(rad)),
	}
	// math.Tan never fails near π/2, it returns a huge finite value.
	if rounded == 90 || rounded == 270 {
		c.Tan = Undefined
	} else {
		c.Tan = fixed(math.Tan(rad))
	}
	return c
}

// EditorText returns the plain text form of an angle used by the angle
// editor: whole degrees, or "pi/4" style radians.
func EditorText(angle float64, u Unit) string {
	rounded := RoundDegrees(angle)
	if u == Degrees {
		return strconv.Itoa(rounded)
	}
	if p, ok := Lookup(rounded); ok {
		return p.PlainRadians()
	}
	return fixed(DegToRad(angle))
}

func fixed(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	if s == "-0.000" {
		return "0.000"
	}
	return s
}
