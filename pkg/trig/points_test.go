package trig

import (
	"math"
	"sort"
	"testing"
)

func TestReferenceTableOrder(t *testing.T) {
	angles := Angles()
	if len(angles) != 16 {
		t.Fatalf("expected 16 reference angles, got %d", len(angles))
	}
	if !sort.IntsAreSorted(angles) {
		t.Errorf("angles not sorted: %v", angles)
	}
	seen := make(map[int]bool)
	for _, a := range angles {
		if seen[a] {
			t.Errorf("duplicate angle %d", a)
		}
		seen[a] = true
		if a < 0 || a >= 360 {
			t.Errorf("angle %d out of range", a)
		}
		if a%30 != 0 && a%45 != 0 {
			t.Errorf("angle %d is not a multiple of 30 or 45", a)
		}
	}
}

func TestReferenceTableSymmetry(t *testing.T) {
	// Reflections across both axes stay in the table.
	for _, a := range Angles() {
		for _, m := range []int{(360 - a) % 360, (540 - a) % 360, (a + 180) % 360} {
			if _, ok := Lookup(m); !ok {
				t.Errorf("angle %d present but its reflection %d is missing", a, m)
			}
		}
	}
}

func TestReferenceValuesMatchNumeric(t *testing.T) {
	for _, p := range Points() {
		rad := DegToRad(float64(p.Angle))
		checkExpr(t, p.Angle, "x", p.X, math.Cos(rad))
		checkExpr(t, p.Angle, "y", p.Y, math.Sin(rad))
		if p.Tan == Undefined {
			if p.Angle != 90 && p.Angle != 270 {
				t.Errorf("angle %d: unexpected undefined tangent", p.Angle)
			}
			continue
		}
		checkExpr(t, p.Angle, "tan", p.Tan, math.Tan(rad))
	}
}

func checkExpr(t *testing.T, angle int, name, text string, want float64) {
	t.Helper()
	got, err := Evaluate(text)
	if err != nil {
		t.Errorf("angle %d: %s %q does not evaluate: %v", angle, name, text, err)
		return
	}
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("angle %d: %s %q = %v, want %v", angle, name, text, got, want)
	}
}

func TestLookup(t *testing.T) {
	p, ok := Lookup(135)
	if !ok {
		t.Fatal("Lookup(135) not found")
	}
	if p.RadiansLabel != "3π/4" || p.DegreesLabel != "135°" {
		t.Errorf("Lookup(135) labels = %q, %q", p.RadiansLabel, p.DegreesLabel)
	}
	if _, ok := Lookup(15); ok {
		t.Error("Lookup(15) should not be found")
	}
	if _, ok := Lookup(360); ok {
		t.Error("Lookup(360) should not be found")
	}
}

func TestPointsReturnsCopy(t *testing.T) {
	points := Points()
	points[0].X = "changed"
	if p, _ := Lookup(0); p.X != "1" {
		t.Errorf("table was modified through Points(): %q", p.X)
	}
}

func TestPlainRadians(t *testing.T) {
	tests := map[int]string{
		0:   "0",
		90:  "pi/2",
		120: "2pi/3",
		180: "pi",
		330: "11pi/6",
	}
	for angle, want := range tests {
		p, _ := Lookup(angle)
		if got := p.PlainRadians(); got != want {
			t.Errorf("PlainRadians(%d) = %q, want %q", angle, got, want)
		}
	}
}

func TestIsAxis(t *testing.T) {
	for _, a := range []int{0, 90, 180, 270} {
		if !IsAxis(a) {
			t.Errorf("IsAxis(%d) = false", a)
		}
	}
	for _, a := range []int{30, 45, 135, 330} {
		if IsAxis(a) {
			t.Errorf("IsAxis(%d) = true", a)
		}
	}
}
