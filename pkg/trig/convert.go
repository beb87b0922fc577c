package trig

import "math"

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Normalize folds an angle in degrees of any magnitude into [0, 360).
func Normalize(deg float64) float64 {
	d := math.Mod(math.Mod(deg, 360)+360, 360)
	if d >= 360 {
		// -1e-15 + 360 rounds up to 360.
		return 0
	}
	return d
}

// PointerToAngle returns the angle in degrees of a pointer position relative
// to a centre point on a surface whose Y axis grows downwards.
func PointerToAngle(pointerX, pointerY, centerX, centerY float64) float64 {
	deg := RadToDeg(math.Atan2(centerY-pointerY, pointerX-centerX))
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		return 0
	}
	return deg
}

// RoundDegrees rounds an angle to the nearest whole degree in [0, 360).
func RoundDegrees(deg float64) int {
	r := int(math.Round(deg)) % 360
	if r < 0 {
		r += 360
	}
	return r
}

// CircularDistance returns the shortest distance in degrees between two
// angles, taking the 0/360 wrap into account.
func CircularDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, math.Min(math.Abs(a-b+360), math.Abs(a-b-360)))
}
